// Package format renders parsed compositions and sample profiles to
// text and JSON. Decoding is the inverse path through chem.Parse and
// sample.LoadProfile.
package format

import (
	"encoding"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
)

// Encoder renders a parsed Formula to an output representation.
type Encoder interface {
	encoding.TextMarshaler
	Encode(f chem.Formula) error
}
