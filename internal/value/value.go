// Package value defines the runtime value types a Lox program can
// produce: Nil, Boolean, Number, String, and Callable. Every value
// implements the Value interface, and this package is the only place
// truthiness, equality, and display formatting are defined.
package value

import (
	"strconv"
)

// Type identifies a runtime value's variant.
type Type string

const (
	NilType      Type = "nil"
	BooleanType  Type = "bool"
	NumberType   Type = "number"
	StringType   Type = "string"
	CallableType Type = "callable"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() Type
	// String is the display form used by `print` and by evaluate
	// mode's final value, and by REPL/error inspection.
	String() string
}

// Nil is the singleton absence-of-value.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// NilValue is the one Nil instance; there is never a reason to
// allocate more than one.
var NilValue = Nil{}

// Boolean wraps a bool.
type Boolean bool

func (b Boolean) Type() Type     { return BooleanType }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

// Number wraps a 64-bit float, the language's only numeric type.
type Number float64

func (n Number) Type() Type { return NumberType }

// String renders the shortest faithful decimal, with integer-valued
// numbers shown without a fractional part (e.g. 3 not 3.0), matching
// the `print`/evaluate display form.
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String wraps the language's immutable text type. Named String to
// mirror the value model's own vocabulary; callers outside this
// package should say value.String, not confuse it with the stdlib
// string builtin.
type String string

func (s String) Type() Type     { return StringType }
func (s String) String() string { return string(s) }

// IsTruthy implements the language's truthiness rule: nil and false
// are falsey, everything else — including 0, NaN, and "" — is
// truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements the language's equality rule: variants must match
// and payloads must compare equal. Numbers use raw IEEE-754 equality,
// so NaN != NaN. Cross-variant comparisons are never equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && float64(av) == float64(bv)
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify is the display form used by print/evaluate, guarding
// against a nil interface (as opposed to a Nil value) so callers don't
// have to special-case an absent result.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
