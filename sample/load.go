package sample

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// profileFile is the on-disk TOML shape of a profile definition. The
// materials table names reusable materials; sections reference them by
// name or give a raw formula code inline.
type profileFile struct {
	Materials map[string]materialDef `toml:"materials"`
	Sections  []sectionDef           `toml:"sections"`
}

type materialDef struct {
	Code    string  `toml:"code"`
	Density float64 `toml:"density"`
}

type sectionDef struct {
	Kind      string     `toml:"kind"`
	Material  string     `toml:"material"`
	Thickness float64    `toml:"thickness"`
	Repeat    int        `toml:"repeat"`
	Layers    []layerDef `toml:"layers"`
}

type layerDef struct {
	Material  string  `toml:"material"`
	Thickness float64 `toml:"thickness"`
}

// LoadProfile reads a TOML profile definition from path.
func LoadProfile(path string) (Profile, error) {
	var file profileFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	return file.build()
}

// DecodeProfile parses a TOML profile definition from a string.
func DecodeProfile(data string) (Profile, error) {
	var file profileFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return file.build()
}

func (f profileFile) build() (Profile, error) {
	var profile Profile
	for i, def := range f.Sections {
		section, err := f.buildSection(def)
		if err != nil {
			return nil, fmt.Errorf("section[%d]: %w", i, err)
		}
		profile = append(profile, section)
	}
	return profile, nil
}

func (f profileFile) buildSection(def sectionDef) (Section, error) {
	switch def.Kind {
	case "layer":
		mat, err := f.resolveMaterial(def.Material)
		if err != nil {
			return nil, err
		}
		return Layer{Material: mat, Thickness: def.Thickness}, nil
	case "substrate":
		mat, err := f.resolveMaterial(def.Material)
		if err != nil {
			return nil, err
		}
		return Substrate{Material: mat}, nil
	case "multilayer":
		ml := MultiLayer{Repeat: def.Repeat}
		for i, ldef := range def.Layers {
			mat, err := f.resolveMaterial(ldef.Material)
			if err != nil {
				return nil, fmt.Errorf("layer[%d]: %w", i, err)
			}
			ml.Layers = append(ml.Layers, Layer{Material: mat, Thickness: ldef.Thickness})
		}
		return ml, nil
	case "":
		return nil, fmt.Errorf("missing section kind")
	}
	return nil, fmt.Errorf("unknown section kind %q", def.Kind)
}

// resolveMaterial looks ref up in the materials table, falling back to
// treating ref as a formula code with no density.
func (f profileFile) resolveMaterial(ref string) (Material, error) {
	if ref == "" {
		return Material{}, fmt.Errorf("missing material reference")
	}
	if def, ok := f.Materials[ref]; ok {
		code := def.Code
		if code == "" {
			code = ref
		}
		return NewMaterial(code, def.Density)
	}
	return NewMaterial(ref, 0)
}
