package sample

import (
	"errors"
	"fmt"
)

// Profile is an ordered sample stack, surface first. A valid profile
// holds at least one layer or multilayer and ends with the substrate.
type Profile []Section

// Validate checks the profile's structure and every section in it.
func (p Profile) Validate() (warnings []string, err error) {
	var errs []error

	if len(p) < 2 {
		errs = append(errs, errors.New("profile must contain at least one layer/multilayer and one substrate"))
	}

	hasSubstrate := false
	for i, section := range p {
		w, serr := section.Validate()
		warnings = append(warnings, w...)
		if serr != nil {
			errs = append(errs, fmt.Errorf("section[%d]: %w", i, serr))
		}
		if _, ok := section.(Substrate); ok {
			hasSubstrate = true
			if i != len(p)-1 {
				errs = append(errs, fmt.Errorf("substrate must be the last section in the profile, found at index %d", i))
			}
		}
	}
	if !hasSubstrate {
		errs = append(errs, errors.New("profile must contain a substrate section"))
	}

	return warnings, errors.Join(errs...)
}

// Flatten expands every MultiLayer into its repeated layers, returning
// the profile as a plain top-to-bottom section list.
func (p Profile) Flatten() []Section {
	var flat []Section
	for _, section := range p {
		if ml, ok := section.(MultiLayer); ok {
			for i := 0; i < ml.Repeat; i++ {
				for _, layer := range ml.Layers {
					flat = append(flat, layer)
				}
			}
			continue
		}
		flat = append(flat, section)
	}
	return flat
}
