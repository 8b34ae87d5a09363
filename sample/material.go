// Package sample models experimental sample stacks: materials with a
// parsed chemical composition, layers, multilayers and full depth
// profiles, together with the validation rules that operate on them.
package sample

import (
	"errors"
	"fmt"
	"math"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
)

// CompositionType classifies how a material's element ratios are
// expressed, judged from the top level of its formula only.
type CompositionType int

const (
	// CompositionUnknown means the ratios fit neither recognized scheme.
	CompositionUnknown CompositionType = iota
	// CompositionStoichiometric means all top-level ratios are whole numbers >= 1.
	CompositionStoichiometric
	// CompositionWeightFraction means all top-level ratios lie strictly
	// between 0 and 1 and describe a mixture of compounds.
	CompositionWeightFraction
)

func (t CompositionType) String() string {
	switch t {
	case CompositionStoichiometric:
		return "stoichiometric"
	case CompositionWeightFraction:
		return "weight-fraction"
	}
	return "unknown"
}

// Material is a named composition with an optional density. Code is the
// formula string the composition was parsed from, e.g. "Al0.35N0.35Sc0.3",
// "AlNSc" or "Al7N7Sc6". Composition is read-only after construction.
type Material struct {
	Code        string
	Density     float64 // g/cm^3
	Composition chem.Formula
}

// NewMaterial parses code into a composition and returns the material.
func NewMaterial(code string, density float64) (Material, error) {
	f, err := chem.Parse(code)
	if err != nil {
		return Material{}, fmt.Errorf("material %q: %w", code, err)
	}
	return Material{Code: code, Density: density, Composition: f}, nil
}

// topLevelCounts returns the multiplicities of all first-level entries
// across the formula's components. Nested group contents are not
// inspected when classifying a composition.
func (m Material) topLevelCounts() []float64 {
	var counts []float64
	for _, comp := range m.Composition.Components {
		for _, e := range comp.Entries {
			counts = append(counts, e.Multiplicity())
		}
	}
	return counts
}

// CompositionType classifies the material's top-level ratios.
func (m Material) CompositionType() CompositionType {
	counts := m.topLevelCounts()
	if len(counts) == 0 {
		return CompositionUnknown
	}
	fractions := true
	whole := true
	for _, c := range counts {
		if !(c > 0 && c < 1) {
			fractions = false
		}
		if c < 1 || c != math.Trunc(c) {
			whole = false
		}
	}
	switch {
	case fractions:
		return CompositionWeightFraction
	case whole:
		return CompositionStoichiometric
	}
	return CompositionUnknown
}

// Validate checks the material's attributes and composition. It returns
// advisory warnings alongside an error joining every failed condition.
func (m Material) Validate() (warnings []string, err error) {
	var errs []error

	if m.Code == "" {
		errs = append(errs, errors.New("material code cannot be empty"))
	}
	if m.Density < 0 {
		errs = append(errs, fmt.Errorf("material density cannot be negative, got %v", m.Density))
	}
	if m.Density == 0 {
		warnings = append(warnings, fmt.Sprintf("material %q has no density; property lookups will fail", m.Code))
	}

	if m.Code != "" {
		switch m.CompositionType() {
		case CompositionUnknown:
			errs = append(errs, fmt.Errorf(
				"material %q: ratios are neither stoichiometric (whole numbers >= 1) nor weight fractions (between 0 and 1)", m.Code))
		case CompositionWeightFraction:
			counts := m.topLevelCounts()
			sum := 0.0
			for _, c := range counts {
				sum += c
			}
			if math.Abs(sum-1) > 1e-6 {
				errs = append(errs, fmt.Errorf(
					"material %q: weight fractions must sum to 1, got %v", m.Code, sum))
			}
		}
	}

	return warnings, errors.Join(errs...)
}
