package chem

import (
	"math"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, input string) Formula {
	t.Helper()
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return f
}

func TestFormulaElements(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"C6H12O6", []string{"C", "H", "O"}},
		{"Mg(OH)2", []string{"H", "Mg", "O"}},
		{"(AlN)7(ScN)3", []string{"Al", "N", "Sc"}},
		{"Mg(OH(ClO3))2", []string{"Cl", "H", "Mg", "O"}},
		{"CuSO4·5H2O", []string{"Cu", "H", "O", "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input).Elements()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Elements() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormulaTally(t *testing.T) {
	tests := []struct {
		input    string
		expected map[string]float64
	}{
		{"H2O", map[string]float64{"H": 2, "O": 1}},
		{"Ca(CO3)2", map[string]float64{"Ca": 1, "C": 2, "O": 6}},
		{"Mg(OH(ClO3))2", map[string]float64{"Mg": 1, "O": 8, "H": 2, "Cl": 2}},
		{"CuSO4·5H2O", map[string]float64{"Cu": 1, "S": 1, "O": 9, "H": 10}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input).Tally()
			if len(got) != len(tt.expected) {
				t.Fatalf("Tally() = %v, want %v", got, tt.expected)
			}
			for sym, want := range tt.expected {
				if math.Abs(got[sym]-want) > 1e-9 {
					t.Errorf("Tally()[%s] = %v, want %v", sym, got[sym], want)
				}
			}
		})
	}
}

func TestFormulaIsChemValid(t *testing.T) {
	valid := []string{
		"H2O",
		"AlScN",
		"HfO2",
		"C6H12O6",
		"Al2(SO4)3",
		"(AlN)7(ScN)3",
		"Mg(OH(ClO3))2",
	}
	invalid := []string{
		"H2O0.5",
		"Al0.7Sc0.3N",
		"HfO2.5",
		"Mg(O0.5H0.5(Cl0.25O0.75))2",
	}

	for _, input := range valid {
		if !mustParse(t, input).IsChemValid() {
			t.Errorf("IsChemValid(%q) = false, want true", input)
		}
	}
	for _, input := range invalid {
		if mustParse(t, input).IsChemValid() {
			t.Errorf("IsChemValid(%q) = true, want false", input)
		}
	}
}

func TestFormulaString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"H2O", "H2O"},
		{"NaCl", "NaCl"},
		{"Ca(CO3)2", "Ca(CO3)2"},
		{"CuSO4·5H2O", "CuSO4·5H2O"},
		{"CuSO4 + 5H2O", "CuSO4·5H2O"},
		{"Al0.5N0.5", "Al0.5N0.5"},
		// Brackets normalize to parentheses.
		{"Ca[CO3]2", "Ca(CO3)2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input).String()
			if got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse("Ca(CO3")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "unbalanced delimiter at offset 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAtomicNumber(t *testing.T) {
	if z, ok := AtomicNumber("Fe"); !ok || z != 26 {
		t.Errorf("AtomicNumber(Fe) = %d, %v", z, ok)
	}
	if _, ok := AtomicNumber("Xx"); ok {
		t.Error("AtomicNumber(Xx) should not resolve")
	}
	if !KnownSymbol("Og") {
		t.Error("KnownSymbol(Og) = false")
	}
}
