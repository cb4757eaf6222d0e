/*
Package interp executes a compiled CMM Op list on a stack-based
virtual machine (spec §4.7): a program counter, a stack of call
frames, and a globals scope seeded with the two pseudo-symbols `_ra`
and `_rv`, talking to the outside world only through the three stream
abstractions in stream.go.
*/
package interp

import (
	"strconv"

	"github.com/cmmlang/cmm/token"
)

// Value is a typed runtime scalar: either an int or a real, never
// both. CMM has no implicit numeric promotion (spec §1 Non-goals), so
// every arithmetic and comparison op assumes both operands already
// share a Kind — guaranteed by a successful semantic analysis.
type Value struct {
	Kind token.Kind
	I    int64
	F    float64
}

// IntValue builds an int-kinded Value.
func IntValue(v int64) Value { return Value{Kind: token.INT, I: v} }

// RealValue builds a real-kinded Value.
func RealValue(v float64) Value { return Value{Kind: token.REAL, F: v} }

// Number returns v's numeric value as a float64, for comparisons that
// don't care which kind produced it.
func (v Value) Number() float64 {
	if v.Kind == token.REAL {
		return v.F
	}
	return float64(v.I)
}

// String renders v the way `write` prints it: an int with no decimal
// point, a real via Go's shortest round-tripping representation.
func (v Value) String() string {
	if v.Kind == token.REAL {
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	}
	return strconv.FormatInt(v.I, 10)
}

// coerce converts v to kind, truncating a real into an int or
// widening an int into a real (spec §4.7: "coerce to the
// destination's declared kind at write time"). A value already of the
// right kind is returned unchanged.
func (v Value) coerce(kind token.Kind) Value {
	if kind == token.REAL {
		if v.Kind == token.REAL {
			return v
		}
		return RealValue(float64(v.I))
	}
	if v.Kind == token.INT {
		return v
	}
	return IntValue(int64(v.F))
}

func parseNumber(line string) Value {
	if f, err := strconv.ParseFloat(line, 64); err == nil {
		if i, ierr := strconv.ParseInt(line, 10, 64); ierr == nil {
			return IntValue(i)
		}
		return RealValue(f)
	}
	return IntValue(0)
}
