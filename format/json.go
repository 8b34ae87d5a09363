package format

import (
	"encoding/json"
	"io"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
)

// JSONEncoder writes the full composition tree as indented JSON,
// including the canonical rendering and the atomic-number lookup key of
// each element when the default table resolves it.
type JSONEncoder struct {
	w       io.Writer
	formula chem.Formula
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(f chem.Formula) error {
	e.formula = f
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildFormula(e.formula), "", "  ")
}

type jsonFormula struct {
	Canonical  string          `json:"canonical"`
	Elements   []string        `json:"elements"`
	Components []jsonComponent `json:"components"`
}

type jsonComponent struct {
	Count   float64     `json:"count"`
	Entries []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Element      string      `json:"element,omitempty"`
	AtomicNumber int         `json:"atomicNumber,omitempty"`
	Group        []jsonEntry `json:"group,omitempty"`
	Count        float64     `json:"count"`
}

func buildFormula(f chem.Formula) jsonFormula {
	out := jsonFormula{
		Canonical: f.String(),
		Elements:  f.Elements(),
	}
	for _, comp := range f.Components {
		out.Components = append(out.Components, jsonComponent{
			Count:   comp.Count,
			Entries: buildEntries(comp.Entries),
		})
	}
	return out
}

func buildEntries(entries []chem.Entry) []jsonEntry {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case chem.Element:
			entry := jsonEntry{Element: v.Symbol, Count: v.Count}
			if z, ok := chem.AtomicNumber(v.Symbol); ok {
				entry.AtomicNumber = z
			}
			out = append(out, entry)
		case chem.Group:
			out = append(out, jsonEntry{Group: buildEntries(v.Entries), Count: v.Count})
		}
	}
	return out
}
