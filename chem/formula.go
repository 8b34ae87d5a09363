// Package chem parses chemical formula strings such as "Ca(CO3)2" or
// "CuSO4·5H2O" into a queryable composition tree. Parsing is pure and
// allocation-local: concurrent parses share nothing but the read-only
// element table, and a returned Formula is treated as immutable.
package chem

import (
	"sort"
	"strconv"
	"strings"
)

// Entry is one occurrence in a composition sequence: either an Element
// or a Group. The interface is sealed to this package.
type Entry interface {
	// Multiplicity returns the subscript attached to this occurrence.
	Multiplicity() float64
	entry()
}

// Element is a leaf composition unit identified by a chemical symbol.
type Element struct {
	Symbol string
	Count  float64
}

func (Element) entry() {}

// Multiplicity returns the element's subscript.
func (e Element) Multiplicity() float64 { return e.Count }

// Group is a parenthesized sub-formula with its own subscript applied
// to the whole group. Groups nest to arbitrary depth.
type Group struct {
	Entries []Entry
	Count   float64
}

func (Group) entry() {}

// Multiplicity returns the group's subscript.
func (g Group) Multiplicity() float64 { return g.Count }

// Component is one additive section of a formula, e.g. the anhydrous
// salt part of a hydrate. Count is the leading section multiplicity
// (the 5 in "CuSO4·5H2O"), 1 when absent.
type Component struct {
	Count   float64
	Entries []Entry
}

// Formula is the parsed representation of a full formula string: an
// ordered, non-empty sequence of additive Components.
type Formula struct {
	Components []Component
}

// Elements returns the unique element symbols appearing anywhere in the
// formula, in sorted order.
func (f Formula) Elements() []string {
	seen := map[string]bool{}
	for _, comp := range f.Components {
		collectSymbols(comp.Entries, seen)
	}
	symbols := make([]string, 0, len(seen))
	for sym := range seen {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

func collectSymbols(entries []Entry, seen map[string]bool) {
	for _, e := range entries {
		switch v := e.(type) {
		case Element:
			seen[v.Symbol] = true
		case Group:
			collectSymbols(v.Entries, seen)
		}
	}
}

// Tally returns the total count of each element with all group and
// section multiplicities applied. For "Ca(CO3)2" the result is
// {Ca: 1, C: 2, O: 6}.
func (f Formula) Tally() map[string]float64 {
	totals := map[string]float64{}
	for _, comp := range f.Components {
		tallyEntries(comp.Entries, comp.Count, totals)
	}
	return totals
}

func tallyEntries(entries []Entry, factor float64, totals map[string]float64) {
	for _, e := range entries {
		switch v := e.(type) {
		case Element:
			totals[v.Symbol] += factor * v.Count
		case Group:
			tallyEntries(v.Entries, factor*v.Count, totals)
		}
	}
}

// IsChemValid reports whether every multiplicity in the formula is a
// positive whole number. Parsing accepts fractional subscripts to
// support mixed compositions like "Al0.5N0.5"; this check separates
// those from strictly stoichiometric formulas.
func (f Formula) IsChemValid() bool {
	for _, comp := range f.Components {
		if !isWhole(comp.Count) || !entriesChemValid(comp.Entries) {
			return false
		}
	}
	return true
}

func entriesChemValid(entries []Entry) bool {
	for _, e := range entries {
		switch v := e.(type) {
		case Element:
			if !isWhole(v.Count) {
				return false
			}
		case Group:
			if !isWhole(v.Count) || !entriesChemValid(v.Entries) {
				return false
			}
		}
	}
	return true
}

func isWhole(n float64) bool {
	return n >= 1 && n == float64(int64(n))
}

// String renders the formula in canonical form: sections joined by "·",
// count-1 subscripts omitted. The result parses back into a
// structurally equal Formula.
func (f Formula) String() string {
	var b strings.Builder
	for i, comp := range f.Components {
		if i > 0 {
			b.WriteRune('·')
		}
		if comp.Count != 1 {
			b.WriteString(formatCount(comp.Count))
		}
		writeEntries(&b, comp.Entries)
	}
	return b.String()
}

func writeEntries(b *strings.Builder, entries []Entry) {
	for _, e := range entries {
		switch v := e.(type) {
		case Element:
			b.WriteString(v.Symbol)
			if v.Count != 1 {
				b.WriteString(formatCount(v.Count))
			}
		case Group:
			b.WriteByte('(')
			writeEntries(b, v.Entries)
			b.WriteByte(')')
			if v.Count != 1 {
				b.WriteString(formatCount(v.Count))
			}
		}
	}
}

func formatCount(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
