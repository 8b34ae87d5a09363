package chem

import "fmt"

// ErrorKind classifies why a formula failed to parse.
type ErrorKind int

const (
	// ErrEmptyFormula indicates an empty or whitespace-only input.
	ErrEmptyFormula ErrorKind = iota
	// ErrEmptyComponent indicates an additive section with no entries.
	ErrEmptyComponent
	// ErrEmptyGroup indicates a group with no children, e.g. "()".
	ErrEmptyGroup
	// ErrUnbalancedDelimiter indicates an unmatched or mismatched group delimiter.
	ErrUnbalancedDelimiter
	// ErrUnexpectedCharacter indicates a character that starts neither an element nor a group.
	ErrUnexpectedCharacter
	// ErrInvalidSymbolStart indicates an element symbol that does not begin with an uppercase letter.
	ErrInvalidSymbolStart
	// ErrUnknownSymbol indicates a symbol that is not in the element table.
	ErrUnknownSymbol
	// ErrMalformedCount indicates a subscript that is not a valid number.
	ErrMalformedCount
	// ErrZeroMultiplicity indicates a literal zero subscript.
	ErrZeroMultiplicity
	// ErrDepthExceeded indicates group nesting beyond the configured cap.
	ErrDepthExceeded
)

var errorKindNames = map[ErrorKind]string{
	ErrEmptyFormula:        "empty formula",
	ErrEmptyComponent:      "empty component",
	ErrEmptyGroup:          "empty group",
	ErrUnbalancedDelimiter: "unbalanced delimiter",
	ErrUnexpectedCharacter: "unexpected character",
	ErrInvalidSymbolStart:  "invalid symbol start",
	ErrUnknownSymbol:       "unknown symbol",
	ErrMalformedCount:      "malformed count",
	ErrZeroMultiplicity:    "zero multiplicity",
	ErrDepthExceeded:       "nesting depth exceeded",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// ParseError reports a single terminal parse failure. Offset is the byte
// offset into the original source string at which the offending input
// begins. Section is the zero-based index of the additive section the
// error was raised in, or -1 when the failure precedes section dispatch.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Section int
	Detail  string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}
