package sample

import (
	"testing"
)

func mustMaterial(t *testing.T, code string, density float64) Material {
	t.Helper()
	m, err := NewMaterial(code, density)
	if err != nil {
		t.Fatalf("NewMaterial(%q): %v", code, err)
	}
	return m
}

func TestNewMaterial(t *testing.T) {
	if _, err := NewMaterial("AlNSc", 3.5678); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMaterial("Al(N", 0); err == nil {
		t.Error("expected parse error for unbalanced code")
	}
}

func TestCompositionType(t *testing.T) {
	tests := []struct {
		code     string
		expected CompositionType
	}{
		{"Al0.5N0.5", CompositionWeightFraction},
		{"Al0.35N0.35Sc0.3", CompositionWeightFraction},
		{"(AlN)0.7(ScN)0.3", CompositionWeightFraction},
		{"Al7N7Sc6", CompositionStoichiometric},
		{"AlNSc", CompositionStoichiometric},
		{"HfO2", CompositionStoichiometric},
		// Mixed whole and fractional ratios fit neither scheme.
		{"Al0.7Sc0.3N", CompositionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := mustMaterial(t, tt.code, 0).CompositionType()
			if got != tt.expected {
				t.Errorf("CompositionType() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaterialValidate(t *testing.T) {
	valid := []Material{
		mustMaterial(t, "Al0.5N0.5", 3.26),
		mustMaterial(t, "Al7N7Sc6", 3.5678),
		mustMaterial(t, "(AlN)0.7(ScN)0.3", 3.5678),
		mustMaterial(t, "AlNSc", 3.5678),
	}
	for _, m := range valid {
		if _, err := m.Validate(); err != nil {
			t.Errorf("Validate(%q): %v", m.Code, err)
		}
	}

	invalid := []Material{
		// Weight fractions that do not sum to 1.
		mustMaterial(t, "Al0.6N0.6", 3.26),
		// Negative density.
		mustMaterial(t, "AlNSc", -2.0),
		// Mixed ratios, unclassifiable.
		mustMaterial(t, "Al0.7Sc0.3N", 3.26),
		// Empty code.
		{},
	}
	for _, m := range invalid {
		if _, err := m.Validate(); err == nil {
			t.Errorf("Validate(%q): expected error", m.Code)
		}
	}
}

func TestMaterialDensityWarning(t *testing.T) {
	m := mustMaterial(t, "Si", 0)
	warnings, err := m.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for missing density")
	}
}
