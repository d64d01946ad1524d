package value

import (
	"math"

	"github.com/cortenjs/corten/bigint"
)

// Tag discriminates the payload a Value carries. The set is closed:
// every operation in this package and in the deopt package dispatches on
// Tag rather than on Go's dynamic type system.
type Tag uint8

const (
	TagUndefined Tag = iota
	TagNull
	TagBool
	TagSmallInt
	TagFloat
	TagString
	TagObject
	TagBigInt
)

// String renders a Tag for logging and diagnostics.
func (t Tag) String() string {
	switch t {
	case TagUndefined:
		return "undefined"
	case TagNull:
		return "null"
	case TagBool:
		return "boolean"
	case TagSmallInt:
		return "smi"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	case TagObject:
		return "object"
	case TagBigInt:
		return "bigint"
	default:
		return "unknown"
	}
}

// StringID identifies an interned string; the string table itself lives
// above this package (in the host's string-interning layer).
type StringID uint32

// ObjectID identifies a heap object; the object table itself lives above
// this package.
type ObjectID uint32

// Value is Corten's tagged value: a small, comparable sum type over
// small integer, double, boolean, null, undefined, string handle, object
// handle, and BigInt handle. Only the field selected by tag
// is meaningful; callers must switch on Tag() before reading a payload
// accessor.
type Value struct {
	tag    Tag
	smi    int32
	num    float64
	str    StringID
	obj    ObjectID
	bigint bigint.Int
}

// Tag returns the discriminant of v.
func (v Value) Tag() Tag { return v.tag }

// Undefined returns the undefined value.
func Undefined() Value { return Value{tag: TagUndefined} }

// Null returns the null value.
func Null() Value { return Value{tag: TagNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value {
	var smi int32
	if b {
		smi = 1
	}

	return Value{tag: TagBool, smi: smi}
}

// Int returns a small-integer Value (V8-style Smi range).
func Int(i int32) Value { return Value{tag: TagSmallInt, smi: i} }

// Num returns a double Value.
func Num(f float64) Value { return Value{tag: TagFloat, num: f} }

// Str returns a Value wrapping an interned string handle.
func Str(id StringID) Value { return Value{tag: TagString, str: id} }

// Obj returns a Value wrapping an object handle.
func Obj(id ObjectID) Value { return Value{tag: TagObject, obj: id} }

// Big returns a Value wrapping a BigInt.
func Big(b bigint.Int) Value { return Value{tag: TagBigInt, bigint: b} }

// AsBool returns v's boolean payload. The caller must have checked
// Tag() == TagBool.
func (v Value) AsBool() bool { return v.smi != 0 }

// AsInt returns v's small-integer payload. The caller must have checked
// Tag() == TagSmallInt.
func (v Value) AsInt() int32 { return v.smi }

// AsFloat returns v's double payload. The caller must have checked
// Tag() == TagFloat.
func (v Value) AsFloat() float64 { return v.num }

// AsString returns v's string handle. The caller must have checked
// Tag() == TagString.
func (v Value) AsString() StringID { return v.str }

// AsObject returns v's object handle. The caller must have checked
// Tag() == TagObject.
func (v Value) AsObject() ObjectID { return v.obj }

// AsBigInt returns v's BigInt payload. The caller must have checked
// Tag() == TagBigInt.
func (v Value) AsBigInt() bigint.Int { return v.bigint }

// IsNumber reports whether v is a SmallInt or a Float (i.e. a JS
// "number", as distinct from a BigInt).
func (v Value) IsNumber() bool {
	return v.tag == TagSmallInt || v.tag == TagFloat
}

// IsNullish reports whether v is null or undefined.
func (v Value) IsNullish() bool {
	return v.tag == TagNull || v.tag == TagUndefined
}

// IsObjectLike reports whether v holds an object handle.
func (v Value) IsObjectLike() bool {
	return v.tag == TagObject
}

// numeric returns v's number payload as a float64 regardless of whether
// it is stored as a SmallInt or a Float, for use by the equality and
// comparison helpers that must treat both uniformly.
func (v Value) numeric() float64 {
	if v.tag == TagSmallInt {
		return float64(v.smi)
	}

	return v.num
}

// isNegZero reports whether v is the Float value -0.
func (v Value) isNegZero() bool {
	return v.tag == TagFloat && v.num == 0 && math.Signbit(v.num)
}
