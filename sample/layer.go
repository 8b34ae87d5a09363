package sample

import (
	"errors"
	"fmt"
)

// Section is one vertical slice of a sample profile: a Layer, a
// MultiLayer or the Substrate.
type Section interface {
	// Validate returns advisory warnings and an error joining every
	// failed condition for this section.
	Validate() (warnings []string, err error)
	section()
}

// Layer is a finite slab of a single material.
type Layer struct {
	Material  Material
	Thickness float64 // nm
}

func (Layer) section() {}

func (l Layer) Validate() (warnings []string, err error) {
	var errs []error
	if l.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("layer thickness must be positive, got %v", l.Thickness))
	}
	w, merr := l.Material.Validate()
	warnings = append(warnings, w...)
	if merr != nil {
		errs = append(errs, merr)
	}
	return warnings, errors.Join(errs...)
}

// Substrate is the semi-infinite medium terminating a profile.
type Substrate struct {
	Material Material
}

func (Substrate) section() {}

func (s Substrate) Validate() (warnings []string, err error) {
	return s.Material.Validate()
}

// MultiLayer is a repeated stack of layers, e.g. a Ni/Cu bilayer
// repeated four times.
type MultiLayer struct {
	Layers []Layer
	Repeat int
}

func (MultiLayer) section() {}

func (m MultiLayer) Validate() (warnings []string, err error) {
	var errs []error
	if m.Repeat < 1 {
		errs = append(errs, fmt.Errorf("multilayer repeat count must be >= 1, got %d", m.Repeat))
	}
	if len(m.Layers) == 0 {
		errs = append(errs, errors.New("multilayer must contain at least one layer"))
	}
	for i, layer := range m.Layers {
		w, lerr := layer.Validate()
		warnings = append(warnings, w...)
		if lerr != nil {
			errs = append(errs, fmt.Errorf("layer[%d]: %w", i, lerr))
		}
	}
	return warnings, errors.Join(errs...)
}
