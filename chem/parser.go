package chem

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDepth is the default cap on group nesting. Deep nesting is
// legal in principle but unbounded recursion on adversarial input is
// not, so the parser fails with ErrDepthExceeded past this depth.
const DefaultMaxDepth = 64

// Option configures a single Parse call.
type Option func(*Parser)

// WithSeparators replaces the recognized section separators
// (default '·' and '+').
func WithSeparators(seps ...rune) Option {
	return func(p *Parser) {
		p.separators = seps
	}
}

// WithDelimiters replaces the recognized group delimiter pairs
// (default "()" and "[]"). Each pair is an open/close byte pair;
// delimiters match by kind, a bracket never closes a parenthesis.
func WithDelimiters(pairs ...[2]byte) Option {
	return func(p *Parser) {
		p.delimiters = pairs
	}
}

// WithMaxDepth replaces the group nesting cap.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithSymbols replaces the element table. Keys are the recognized
// symbols; values are opaque lookup keys carried for external property
// tables. The table must not be mutated while parses are in flight.
func WithSymbols(table map[string]int) Option {
	return func(p *Parser) {
		p.symbols = table
	}
}

// Parser holds the state of one Parse call: the input bytes and the
// current byte position, threaded through the recursive descent.
type Parser struct {
	input      []byte
	pos        int
	depth      int
	section    int
	maxDepth   int
	separators []rune
	delimiters [][2]byte
	symbols    map[string]int
}

// Parse parses a formula string into a Formula. On failure it returns a
// *ParseError carrying the error kind and the byte offset of the
// offending input; no partial result is returned.
func Parse(source string, opts ...Option) (Formula, error) {
	p := &Parser{
		input:      []byte(source),
		section:    -1,
		maxDepth:   DefaultMaxDepth,
		separators: []rune{'·', '+'},
		delimiters: [][2]byte{{'(', ')'}, {'[', ']'}},
		symbols:    atomicNumbers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p.parseFormula()
}

func (p *Parser) parseFormula() (Formula, error) {
	if strings.TrimSpace(string(p.input)) == "" {
		return Formula{}, &ParseError{Kind: ErrEmptyFormula, Offset: 0, Section: -1}
	}
	p.skipSpace()

	var f Formula
	for {
		p.section++
		comp, err := p.parseComponent()
		if err != nil {
			return Formula{}, p.stamp(err)
		}
		f.Components = append(f.Components, comp)

		p.skipSpace()
		if p.pos >= len(p.input) {
			return f, nil
		}
		if !p.atSeparator() {
			kind := ErrUnexpectedCharacter
			if p.atCloseDelimiter() {
				kind = ErrUnbalancedDelimiter
			}
			return Formula{}, p.stamp(&ParseError{Kind: kind, Offset: p.pos, Section: -1})
		}
		p.consumeSeparator()
		p.skipSpace()
	}
}

// stamp attaches the current section index to errors raised by nested
// extractors. The error itself passes through unchanged.
func (p *Parser) stamp(err error) error {
	if pe, ok := err.(*ParseError); ok && pe.Section < 0 {
		pe.Section = p.section
	}
	return err
}

// parseComponent parses one additive section: an optional leading
// multiplicity (the hydration count) followed by at least one entry.
func (p *Parser) parseComponent() (Component, error) {
	count, err := p.extractNumber()
	if err != nil {
		return Component{}, err
	}
	entries, err := p.parseEntries()
	if err != nil {
		return Component{}, err
	}
	if len(entries) == 0 {
		return Component{}, &ParseError{Kind: ErrEmptyComponent, Offset: p.pos, Section: -1}
	}
	return Component{Count: count, Entries: entries}, nil
}

// parseEntries collects element and group entries until end of input, a
// section separator, a closing delimiter, or a space. It does not
// consume the terminator.
func (p *Parser) parseEntries() ([]Entry, error) {
	var entries []Entry
	for p.pos < len(p.input) {
		ch := p.peek()
		if ch == ' ' || ch == '\t' || p.atCloseDelimiter() || p.atSeparator() {
			break
		}
		var entry Entry
		var err error
		switch {
		case p.closerFor(ch) != 0:
			entry, err = p.extractGroup()
		case isLetter(ch):
			entry, err = p.extractElement()
		default:
			err = &ParseError{Kind: ErrUnexpectedCharacter, Offset: p.pos, Section: -1}
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// extractGroup parses a delimited sub-sequence plus its trailing
// multiplicity. The caller guarantees the current byte is an opening
// delimiter.
func (p *Parser) extractGroup() (Group, error) {
	start := p.pos
	closer := p.closerFor(p.peek())

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return Group{}, &ParseError{Kind: ErrDepthExceeded, Offset: start, Section: -1}
	}

	p.pos++
	entries, err := p.parseEntries()
	if err != nil {
		return Group{}, err
	}
	if p.pos >= len(p.input) {
		return Group{}, &ParseError{Kind: ErrUnbalancedDelimiter, Offset: start, Section: -1}
	}
	if p.peek() != closer {
		return Group{}, &ParseError{Kind: ErrUnbalancedDelimiter, Offset: p.pos, Section: -1}
	}
	p.pos++
	if len(entries) == 0 {
		return Group{}, &ParseError{Kind: ErrEmptyGroup, Offset: start, Section: -1}
	}
	count, err := p.extractNumber()
	if err != nil {
		return Group{}, err
	}
	return Group{Entries: entries, Count: count}, nil
}

// extractElement parses an element symbol ([A-Z][a-z]?) plus its
// trailing multiplicity.
func (p *Parser) extractElement() (Element, error) {
	start := p.pos
	ch := p.peek()
	if ch < 'A' || ch > 'Z' {
		return Element{}, &ParseError{Kind: ErrInvalidSymbolStart, Offset: start, Section: -1}
	}
	p.pos++
	if p.pos < len(p.input) {
		if c := p.peek(); c >= 'a' && c <= 'z' {
			p.pos++
		}
	}
	symbol := string(p.input[start:p.pos])
	if _, ok := p.symbols[symbol]; !ok {
		return Element{}, &ParseError{Kind: ErrUnknownSymbol, Offset: start, Section: -1, Detail: symbol}
	}
	count, err := p.extractNumber()
	if err != nil {
		return Element{}, err
	}
	return Element{Symbol: symbol, Count: count}, nil
}

// extractNumber consumes a maximal run of digits with at most one
// decimal point. An empty run means an implicit count of one; a zero
// value is an error, zero-weighted entries are meaningless.
func (p *Parser) extractNumber() (float64, error) {
	start := p.pos
	dot := false
	for p.pos < len(p.input) {
		ch := p.peek()
		if ch >= '0' && ch <= '9' {
			p.pos++
			continue
		}
		if ch == '.' && !p.atSeparator() {
			if dot {
				return 0, &ParseError{Kind: ErrMalformedCount, Offset: p.pos, Section: -1}
			}
			dot = true
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 1, nil
	}
	lit := string(p.input[start:p.pos])
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, &ParseError{Kind: ErrMalformedCount, Offset: start, Section: -1, Detail: lit}
	}
	if n == 0 {
		return 0, &ParseError{Kind: ErrZeroMultiplicity, Offset: start, Section: -1}
	}
	return n, nil
}

func (p *Parser) peek() byte {
	return p.input[p.pos]
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.input) {
		ch := p.peek()
		if ch != ' ' && ch != '\t' {
			break
		}
		p.pos++
	}
}

// atSeparator reports whether the rune at the current position is one
// of the configured section separators.
func (p *Parser) atSeparator() bool {
	if p.pos >= len(p.input) {
		return false
	}
	r, _ := utf8.DecodeRune(p.input[p.pos:])
	for _, sep := range p.separators {
		if r == sep {
			return true
		}
	}
	return false
}

func (p *Parser) consumeSeparator() {
	_, size := utf8.DecodeRune(p.input[p.pos:])
	p.pos += size
}

// closerFor returns the closing delimiter matching an opening one, or 0
// when ch does not open a group.
func (p *Parser) closerFor(ch byte) byte {
	for _, pair := range p.delimiters {
		if ch == pair[0] {
			return pair[1]
		}
	}
	return 0
}

func (p *Parser) atCloseDelimiter() bool {
	if p.pos >= len(p.input) {
		return false
	}
	ch := p.peek()
	for _, pair := range p.delimiters {
		if ch == pair[1] {
			return true
		}
	}
	return false
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
