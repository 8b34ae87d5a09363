package format

import (
	"encoding/json"
	"io"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/sample"
)

// ProfileJSONEncoder writes a sample profile as indented JSON.
type ProfileJSONEncoder struct {
	w       io.Writer
	flatten bool
}

func NewProfileJSONEncoder(w io.Writer) *ProfileJSONEncoder {
	return &ProfileJSONEncoder{w: w}
}

// Flatten makes the encoder expand multilayers into repeated layers
// before rendering.
func (e *ProfileJSONEncoder) Flatten() *ProfileJSONEncoder {
	e.flatten = true
	return e
}

func (e *ProfileJSONEncoder) Encode(p sample.Profile) error {
	sections := []sample.Section(p)
	if e.flatten {
		sections = p.Flatten()
	}
	out := make([]jsonSection, 0, len(sections))
	for _, s := range sections {
		out = append(out, buildSection(s))
	}
	text, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type jsonSection struct {
	Kind      string        `json:"kind"`
	Material  *jsonMaterial `json:"material,omitempty"`
	Thickness float64       `json:"thickness,omitempty"`
	Repeat    int           `json:"repeat,omitempty"`
	Layers    []jsonSection `json:"layers,omitempty"`
}

type jsonMaterial struct {
	Code            string   `json:"code"`
	Density         float64  `json:"density,omitempty"`
	CompositionType string   `json:"compositionType"`
	Elements        []string `json:"elements"`
}

func buildSection(s sample.Section) jsonSection {
	switch v := s.(type) {
	case sample.Layer:
		return jsonSection{Kind: "layer", Material: buildMaterial(v.Material), Thickness: v.Thickness}
	case sample.Substrate:
		return jsonSection{Kind: "substrate", Material: buildMaterial(v.Material)}
	case sample.MultiLayer:
		out := jsonSection{Kind: "multilayer", Repeat: v.Repeat}
		for _, layer := range v.Layers {
			out.Layers = append(out.Layers, buildSection(layer))
		}
		return out
	}
	return jsonSection{Kind: "unknown"}
}

func buildMaterial(m sample.Material) *jsonMaterial {
	return &jsonMaterial{
		Code:            m.Code,
		Density:         m.Density,
		CompositionType: m.CompositionType().String(),
		Elements:        m.Composition.Elements(),
	}
}
