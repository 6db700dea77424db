package runtime

import "math"

// Add implements `+` (spec §4.1 table): if either operand is a String,
// concatenate to_string of both; else add as Numbers.
func Add(a, b *Value) *Value {
	if a.Kind == KindString || b.Kind == KindString {
		return NewString(ToString(a) + ToString(b))
	}
	return NewNumber(ToNumber(a) + ToNumber(b))
}

// Sub implements `-`: coerce both to Number, subtract.
func Sub(a, b *Value) *Value { return NewNumber(ToNumber(a) - ToNumber(b)) }

// Mul implements `*`: coerce both to Number, multiply.
func Mul(a, b *Value) *Value { return NewNumber(ToNumber(a) * ToNumber(b)) }

// Div implements `/`: coerce both to Number; division by zero follows
// IEEE-754 (±Infinity or NaN), never an error.
func Div(a, b *Value) *Value { return NewNumber(ToNumber(a) / ToNumber(b)) }

// Mod implements `%` using truncated-division remainder (spec §4.1).
func Mod(a, b *Value) *Value { return NewNumber(math.Mod(ToNumber(a), ToNumber(b))) }

// BitAnd implements `&`: coerce both to 32-bit signed via ToInt32.
func BitAnd(a, b *Value) *Value { return NewInteger(ToInt32(a) & ToInt32(b)) }

// BitOr implements `|`.
func BitOr(a, b *Value) *Value { return NewInteger(ToInt32(a) | ToInt32(b)) }

// BitXor implements `^`.
func BitXor(a, b *Value) *Value { return NewInteger(ToInt32(a) ^ ToInt32(b)) }

// Shl implements `<<`, masked to a 5-bit shift count.
func Shl(a, b *Value) *Value {
	shift := uint32(ToInt32(b)) & 0x1F
	return NewInteger(ToInt32(a) << shift)
}

// Shr implements `>>`, arithmetic right shift masked to a 5-bit count.
func Shr(a, b *Value) *Value {
	shift := uint32(ToInt32(b)) & 0x1F
	return NewInteger(ToInt32(a) >> shift)
}

// Compare implements the supplemented relational operators (SPEC_FULL
// §4): both operands coerce to Number via to_number, except when both
// are strings, which compare lexicographically; false whenever either
// side is NaN, mirroring the Number-operator rules of spec §4.1.
func Compare(op string, a, b *Value) *Value {
	if a.Kind == KindString && b.Kind == KindString {
		return NewBool(compareStrings(op, a.Str, b.Str))
	}
	x, y := ToNumber(a), ToNumber(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return NewBool(false)
	}
	switch op {
	case "<":
		return NewBool(x < y)
	case ">":
		return NewBool(x > y)
	case "<=":
		return NewBool(x <= y)
	case ">=":
		return NewBool(x >= y)
	default:
		return NewBool(false)
	}
}

func compareStrings(op, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	default:
		return false
	}
}
