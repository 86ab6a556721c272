package engine

// Kind identifies the category of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindObject
	KindArray
	KindFunction
	KindUint8Array
	KindArrayBuffer
	KindExternal
	KindPromise
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindUint8Array:
		return "Uint8Array"
	case KindArrayBuffer:
		return "ArrayBuffer"
	case KindExternal:
		return "external"
	case KindPromise:
		return "promise"
	default:
		return "unknown"
	}
}

// Value is a single engine value. Values are handles into the engine's
// heap; copying the struct pointer copies the reference, never the value.
type Value struct {
	kind     Kind
	b        bool
	num      float64
	i64      int64
	u64      uint64
	unsigned bool
	str      string
	props    map[string]*Value
	class    string
	elems    []*Value
	bytes    []byte
	fn       Callback
	ext      *externalBox
	deferred *Deferred
}

var undefinedValue = &Value{kind: KindUndefined}
var nullValue = &Value{kind: KindNull}

// Undefined returns the engine's "no value" sentinel.
func Undefined() *Value { return undefinedValue }

// Null returns the null value.
func Null() *Value { return nullValue }

// Boolean returns a boolean value.
func Boolean(b bool) *Value { return &Value{kind: KindBoolean, b: b} }

// Number returns a double-precision number value.
func Number(f float64) *Value { return &Value{kind: KindNumber, num: f} }

// BigInt returns a signed 64-bit bigint value.
func BigInt(i int64) *Value { return &Value{kind: KindBigInt, i64: i} }

// BigUint returns an unsigned 64-bit bigint value.
func BigUint(u uint64) *Value { return &Value{kind: KindBigInt, u64: u, unsigned: true} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, str: s} }

// NewObject returns an empty object.
func NewObject() *Value {
	return &Value{kind: KindObject, props: map[string]*Value{}}
}

// NewObjectClass returns an empty object carrying a class name, which
// generic handle conversion matches against.
func NewObjectClass(class string) *Value {
	v := NewObject()
	v.class = class
	return v
}

// NewArray returns an array of the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

// NewUint8Array returns a typed buffer over b. The slice is not copied.
func NewUint8Array(b []byte) *Value {
	return &Value{kind: KindUint8Array, bytes: b}
}

// NewArrayBuffer returns a raw buffer over b. The slice is not copied.
func NewArrayBuffer(b []byte) *Value {
	return &Value{kind: KindArrayBuffer, bytes: b}
}

// NewFunction returns a function value backed by the given callback.
func NewFunction(cb Callback) *Value {
	return &Value{kind: KindFunction, fn: cb}
}

// Kind returns the value's kind.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsUndefined() bool   { return v.kind == KindUndefined }
func (v *Value) IsNull() bool        { return v.kind == KindNull }
func (v *Value) IsBoolean() bool     { return v.kind == KindBoolean }
func (v *Value) IsNumber() bool      { return v.kind == KindNumber }
func (v *Value) IsBigInt() bool      { return v.kind == KindBigInt }
func (v *Value) IsString() bool      { return v.kind == KindString }
func (v *Value) IsObject() bool      { return v.kind == KindObject }
func (v *Value) IsArray() bool       { return v.kind == KindArray }
func (v *Value) IsFunction() bool    { return v.kind == KindFunction }
func (v *Value) IsUint8Array() bool  { return v.kind == KindUint8Array }
func (v *Value) IsArrayBuffer() bool { return v.kind == KindArrayBuffer }
func (v *Value) IsExternal() bool    { return v.kind == KindExternal }
func (v *Value) IsPromise() bool     { return v.kind == KindPromise }

// Bool returns the boolean payload (false for other kinds).
func (v *Value) Bool() bool { return v.b }

// Num returns the number payload (0 for other kinds).
func (v *Value) Num() float64 { return v.num }

// Str returns the string payload ("" for other kinds).
func (v *Value) Str() string { return v.str }

// Bytes returns the buffer payload (nil for other kinds).
func (v *Value) Bytes() []byte { return v.bytes }

// Int64 returns the bigint payload as a signed 64-bit integer.
func (v *Value) Int64() int64 {
	if v.unsigned {
		return int64(v.u64)
	}
	return v.i64
}

// Uint64 returns the bigint payload as an unsigned 64-bit integer.
func (v *Value) Uint64() uint64 {
	if v.unsigned {
		return v.u64
	}
	return uint64(v.i64)
}

// ClassName returns the object's class name ("" when untagged).
func (v *Value) ClassName() string { return v.class }

// Get returns an object property, or undefined when absent.
func (v *Value) Get(key string) *Value {
	if v.props == nil {
		return Undefined()
	}
	if p, ok := v.props[key]; ok {
		return p
	}
	return Undefined()
}

// Set stores an object property.
func (v *Value) Set(key string, val *Value) {
	if v.props == nil {
		v.props = map[string]*Value{}
	}
	v.props[key] = val
}

// Len returns the element count for arrays.
func (v *Value) Len() int { return len(v.elems) }

// Index returns the i-th array element, or undefined when out of range.
func (v *Value) Index(i int) *Value {
	if i < 0 || i >= len(v.elems) {
		return Undefined()
	}
	return v.elems[i]
}
