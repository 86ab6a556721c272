package resolver

import (
	"github.com/weldgen/weld/model"
)

// Class is the semantic category a declared type resolves to.
type Class int

const (
	// ClassPrimitive covers the fixed-width scalars and void. Only these
	// are ever eligible for the direct-call path.
	ClassPrimitive Class = iota
	// ClassOptional marks a value that may be absent at the call site.
	// Exactly one nesting level is supported.
	ClassOptional
	// ClassHandle is a reference to an engine-owned value, checked with
	// the kind's runtime predicate and passed through without conversion.
	ClassHandle
	// ClassOpaque is the fallback: the value crosses the boundary through
	// generic serialization.
	ClassOpaque
)

func (c Class) String() string {
	switch c {
	case ClassPrimitive:
		return "primitive"
	case ClassOptional:
		return "optional"
	case ClassHandle:
		return "handle"
	case ClassOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// PrimKind enumerates the primitive kinds.
type PrimKind int

const (
	PrimVoid PrimKind = iota
	PrimBool
	PrimInt32
	PrimUint32
	PrimInt64
	PrimUint64
	PrimFloat32
	PrimFloat64
)

var primKinds = map[string]PrimKind{
	"void": PrimVoid, "bool": PrimBool,
	"int32": PrimInt32, "uint32": PrimUint32,
	"int64": PrimInt64, "uint64": PrimUint64,
	"float32": PrimFloat32, "float64": PrimFloat64,
}

// GoType returns the Go spelling of the primitive ("" for void).
func (k PrimKind) GoType() string {
	switch k {
	case PrimBool:
		return "bool"
	case PrimInt32:
		return "int32"
	case PrimUint32:
		return "uint32"
	case PrimInt64:
		return "int64"
	case PrimUint64:
		return "uint64"
	case PrimFloat32:
		return "float32"
	case PrimFloat64:
		return "float64"
	default:
		return ""
	}
}

// HandleKind enumerates the engine value categories the generator can
// directly type-check.
type HandleKind int

const (
	HandleFunction HandleKind = iota
	HandleObject
	HandleArray
	HandleTypedBuffer
	HandleRawBuffer
	HandleString
	HandleNumber
	HandleAnyValue
	// HandleGeneric is an unrecognized handle name; extraction falls back
	// to a runtime conversion attempt against the named class.
	HandleGeneric
)

// handleKinds maps declared handle names to kinds. Uint8Array and
// ArrayBuffer keep their engine-side spellings in declarations.
var handleKinds = map[string]HandleKind{
	"Function":    HandleFunction,
	"Object":      HandleObject,
	"Array":       HandleArray,
	"Uint8Array":  HandleTypedBuffer,
	"ArrayBuffer": HandleRawBuffer,
	"String":      HandleString,
	"Number":      HandleNumber,
	"Value":       HandleAnyValue,
}

// Predicate returns the engine predicate method name for the kind, or ""
// when no check is required (AnyValue) or possible (Generic).
func (k HandleKind) Predicate() string {
	switch k {
	case HandleFunction:
		return "IsFunction"
	case HandleObject:
		return "IsObject"
	case HandleArray:
		return "IsArray"
	case HandleTypedBuffer:
		return "IsUint8Array"
	case HandleRawBuffer:
		return "IsArrayBuffer"
	case HandleString:
		return "IsString"
	case HandleNumber:
		return "IsNumber"
	default:
		return ""
	}
}

// TypeClass is the classification of one declared type. Classification is
// a pure function of the static type description.
type TypeClass struct {
	Class  Class
	Prim   PrimKind   // valid when Class == ClassPrimitive
	Handle HandleKind // valid when Class == ClassHandle
	// HandleName is the declared handle name (e.g. "Function"), kept for
	// diagnostics and for generic-handle runtime conversion.
	HandleName string
	Inner      *TypeClass // valid when Class == ClassOptional
	Desc       *model.TypeDesc
}

// Classify maps a declared type tree to its TypeClass. Match order: one
// level of optional unwrap, then the handle table, then opaque fallback.
func Classify(t *model.TypeDesc) TypeClass {
	if t == nil {
		return TypeClass{Class: ClassPrimitive, Prim: PrimVoid}
	}

	if t.IsWrapper("optional") {
		inner := Classify(t.Args[0])
		return TypeClass{Class: ClassOptional, Inner: &inner, Desc: t}
	}

	if name, ok := t.HandleInner(); ok {
		kind, known := handleKinds[name]
		if !known {
			kind = HandleGeneric
		}
		return TypeClass{Class: ClassHandle, Handle: kind, HandleName: name, Desc: t}
	}

	if kind, ok := primKinds[t.Name]; ok {
		return TypeClass{Class: ClassPrimitive, Prim: kind, Desc: t}
	}

	return TypeClass{Class: ClassOpaque, Desc: t}
}

// ClassifyReturn classifies a return type, treating absence as void.
func ClassifyReturn(t *model.TypeDesc) TypeClass {
	return Classify(t)
}

// FastEligible reports whether the type can cross the direct-call
// boundary. Exactly the primitive kinds qualify: handles and opaque types
// need boundary logic the direct-call path cannot run.
func (tc TypeClass) FastEligible() bool {
	return tc.Class == ClassPrimitive
}

// String describes the classification for diagnostics.
func (tc TypeClass) String() string {
	switch tc.Class {
	case ClassPrimitive:
		if tc.Prim == PrimVoid {
			return "void"
		}
		return tc.Prim.GoType()
	case ClassOptional:
		return "optional<" + tc.Inner.String() + ">"
	case ClassHandle:
		return "handle:" + tc.HandleName
	default:
		return tc.Desc.String()
	}
}
