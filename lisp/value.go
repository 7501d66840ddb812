package lisp

import (
	"fmt"
	"math"
)

// NumType tags a numeric value as integral or fractional. The tag only
// affects presentation and promotion decisions; the stored value is always
// a float64.
type NumType int

const (
	TypeInt NumType = iota
	TypeDouble
	TypeNone
)

func (t NumType) String() string {
	switch t {
	case TypeInt:
		return "Integer"
	case TypeDouble:
		return "Double"
	default:
		return "No Type"
	}
}

// Value is the language's only runtime datum: a tagged number.
type Value struct {
	Type NumType
	Raw  float64
}

func NewInt(raw float64) Value    { return Value{Type: TypeInt, Raw: raw} }
func NewDouble(raw float64) Value { return Value{Type: TypeDouble, Raw: raw} }

// NaNValue is the degraded result for recoverable evaluation failures.
func NaNValue() Value { return Value{Type: TypeDouble, Raw: math.NaN()} }

// ZeroValue is the degraded result for zero-operand variadic calls.
func ZeroValue() Value { return Value{Type: TypeInt, Raw: 0} }

func (v Value) IsNaN() bool { return math.IsNaN(v.Raw) }

func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return fmt.Sprintf("Integer : %.0f", v.Raw)
	case TypeDouble:
		return fmt.Sprintf("Double : %f", v.Raw)
	default:
		return fmt.Sprintf("No Type : %f", v.Raw)
	}
}

// promote picks the result tag for two-operand arithmetic: Double if either
// operand is Double, Int otherwise.
func promote(a, b Value) NumType {
	if a.Type == TypeDouble || b.Type == TypeDouble {
		return TypeDouble
	}
	return TypeInt
}
