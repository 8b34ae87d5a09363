package format

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
	"github.com/AG-Mueller-University-Konstanz/GSaPDef/sample"
)

func TestTextEncoderRoundTrip(t *testing.T) {
	inputs := []string{
		"H2O",
		"Ca(CO3)2",
		"CuSO4·5H2O",
		"Mg(OH(ClO3))2",
		"(AlN)0.7(ScN)0.3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			f, err := chem.Parse(input)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := NewTextEncoder(&buf).Encode(f); err != nil {
				t.Fatal(err)
			}
			again, err := chem.Parse(strings.TrimSpace(buf.String()))
			if err != nil {
				t.Fatalf("reparse %q: %v", buf.String(), err)
			}
			if !reflect.DeepEqual(f, again) {
				t.Errorf("round trip through %q changed the tree", buf.String())
			}
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	f, err := chem.Parse("Ca(CO3)2")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(f); err != nil {
		t.Fatal(err)
	}

	var got jsonFormula
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Canonical != "Ca(CO3)2" {
		t.Errorf("canonical = %q, want %q", got.Canonical, "Ca(CO3)2")
	}
	if !reflect.DeepEqual(got.Elements, []string{"C", "Ca", "O"}) {
		t.Errorf("elements = %v", got.Elements)
	}
	if len(got.Components) != 1 || len(got.Components[0].Entries) != 2 {
		t.Fatalf("components = %+v", got.Components)
	}
	entry := got.Components[0].Entries[0]
	if entry.Element != "Ca" || entry.AtomicNumber != 20 {
		t.Errorf("entry 0 = %+v", entry)
	}
	group := got.Components[0].Entries[1]
	if group.Count != 2 || len(group.Group) != 2 {
		t.Errorf("entry 1 = %+v", group)
	}
}

func TestProfileJSONEncoder(t *testing.T) {
	al, err := sample.NewMaterial("Al", 2.699)
	if err != nil {
		t.Fatal(err)
	}
	si, err := sample.NewMaterial("Si", 2.33)
	if err != nil {
		t.Fatal(err)
	}
	profile := sample.Profile{
		sample.MultiLayer{
			Layers: []sample.Layer{{Material: al, Thickness: 2.0}},
			Repeat: 3,
		},
		sample.Substrate{Material: si},
	}

	var buf bytes.Buffer
	if err := NewProfileJSONEncoder(&buf).Encode(profile); err != nil {
		t.Fatal(err)
	}
	var sections []jsonSection
	if err := json.Unmarshal(buf.Bytes(), &sections); err != nil {
		t.Fatal(err)
	}
	if len(sections) != 2 || sections[0].Kind != "multilayer" || sections[1].Kind != "substrate" {
		t.Fatalf("sections = %+v", sections)
	}

	buf.Reset()
	if err := NewProfileJSONEncoder(&buf).Flatten().Encode(profile); err != nil {
		t.Fatal(err)
	}
	sections = nil
	if err := json.Unmarshal(buf.Bytes(), &sections); err != nil {
		t.Fatal(err)
	}
	// 3 repeated layers + substrate
	if len(sections) != 4 {
		t.Errorf("flattened sections = %d, want 4", len(sections))
	}
}
