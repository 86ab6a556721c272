package engine

// CType is one slot of the direct-call ABI signature.
type CType int

const (
	CTypeVoid CType = iota
	CTypeBool
	CTypeInt32
	CTypeUint32
	CTypeInt64
	CTypeUint64
	CTypeFloat32
	CTypeFloat64
	// CTypeValue is the receiver placeholder slot.
	CTypeValue
	// CTypeCallbackOptions is the trailing per-call options slot, present
	// only when the callable carries capsule state.
	CTypeCallbackOptions
)

func (t CType) String() string {
	switch t {
	case CTypeVoid:
		return "void"
	case CTypeBool:
		return "bool"
	case CTypeInt32:
		return "int32"
	case CTypeUint32:
		return "uint32"
	case CTypeInt64:
		return "int64"
	case CTypeUint64:
		return "uint64"
	case CTypeFloat32:
		return "float32"
	case CTypeFloat64:
		return "float64"
	case CTypeValue:
		return "value"
	case CTypeCallbackOptions:
		return "callback-options"
	default:
		return "unknown"
	}
}

// Int64Rep selects how 64-bit integers cross the direct-call boundary.
type Int64Rep int

const (
	Int64Number Int64Rep = iota
	Int64BigInt
)

// FastCallInfo is the ABI descriptor for a direct-call entry point: the
// receiver slot, each parameter's native primitive type, and the return
// type. The engine matches it against call sites before taking the fast
// path.
type FastCallInfo struct {
	Return CType
	Args   []CType
	Int64  Int64Rep
}

// FastOptions is the per-call options structure the engine's direct-call
// protocol supplies to fast functions that declared a CallbackOptions
// slot. Data carries the callable's registration capsule.
type FastOptions struct {
	Data *Value
}
