package field

import "fmt"

// ValueKind identifies the runtime type of a configuration value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInt
	KindString
)

// String returns the kind name used in logs and error messages.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a tagged union over the three configuration value types. The
// zero Value is a false bool.
type Value struct {
	kind ValueKind
	b    bool
	i    int
	s    string
}

// BoolValue wraps a bool.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// IntValue wraps an int.
func IntValue(v int) Value { return Value{kind: KindInt, i: v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the value's runtime type tag.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean payload; false for non-bool values.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; 0 for non-int values.
func (v Value) Int() int { return v.i }

// Str returns the string payload; "" for non-string values.
func (v Value) Str() string { return v.s }

// SameKind reports whether both values carry the same runtime type.
func (v Value) SameKind(other Value) bool { return v.kind == other.kind }

// Interface returns the payload as the native Go type, for JSON encoding.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	default:
		return v.s
	}
}

// CoerceJSON type-gates a decoded JSON value against an expected kind.
// encoding/json decodes numbers as float64; only integral floats pass the
// int gate. Anything that does not match returns ok=false, which callers
// treat as "value not trusted, keep default".
func CoerceJSON(kind ValueKind, raw any) (Value, bool) {
	switch kind {
	case KindBool:
		if b, ok := raw.(bool); ok {
			return BoolValue(b), true
		}
	case KindInt:
		if f, ok := raw.(float64); ok && f == float64(int(f)) {
			return IntValue(int(f)), true
		}
	case KindString:
		if s, ok := raw.(string); ok {
			return StringValue(s), true
		}
	}
	return Value{}, false
}
