package format

import (
	"io"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
)

// TextEncoder writes a formula in canonical text form: sections joined
// by "·", count-1 subscripts omitted, brackets normalized to
// parentheses. The output parses back into an equal tree.
type TextEncoder struct {
	w       io.Writer
	formula chem.Formula
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(f chem.Formula) error {
	e.formula = f
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.formula.String() + "\n"), nil
}
