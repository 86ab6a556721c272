package gen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/weldgen/weld/model"
	"github.com/weldgen/weld/resolver"
)

// ToPascalCase converts a snake_case string to PascalCase.
func ToPascalCase(s string) string {
	return model.ToPascalCase(s)
}

// ToCamelCase converts a snake_case string to camelCase.
func ToCamelCase(s string) string {
	return model.ToCamelCase(s)
}

// GeneratedFileHeader returns the standard do-not-edit header.
func GeneratedFileHeader(ctx *Context) string {
	var b strings.Builder
	b.WriteString("// Code generated by weld. DO NOT EDIT.\n")
	if ctx.DefPath != "" {
		fmt.Fprintf(&b, "//\n// Source: %s (%s %s)\n",
			filepath.Base(ctx.DefPath), ctx.Def.Bindings.Name, ctx.Def.Bindings.Version)
	}
	b.WriteString("\n")
	return b.String()
}

// GoFuncName returns the native Go function name for a definition name,
// e.g. "parse_number" → "ParseNumber".
func GoFuncName(defName string) string {
	return ToPascalCase(defName)
}

// goParamType returns the Go type spelling for a classified parameter.
func goParamType(tc resolver.TypeClass) string {
	switch tc.Class {
	case resolver.ClassPrimitive:
		return tc.Prim.GoType()
	case resolver.ClassOptional:
		if tc.Inner.Class == resolver.ClassHandle {
			// Handles are already pointers; absence is a nil handle.
			return "*engine.Value"
		}
		return "*" + goParamType(*tc.Inner)
	case resolver.ClassHandle:
		return "*engine.Value"
	default:
		// Opaque types spell the native Go type verbatim.
		return tc.Desc.Name
	}
}

// goReturnType returns the Go type spelling for a classified return
// value, or "" for void.
func goReturnType(tc resolver.TypeClass) string {
	if tc.Class == resolver.ClassPrimitive && tc.Prim == resolver.PrimVoid {
		return ""
	}
	return goParamType(tc)
}

// goStateType returns the Go type spelling for a resolved state binding.
// Shared state is held by pointer, matching shared-ownership semantics.
func goStateType(spec *resolver.StateSpec) string {
	return "*" + spec.Type.Name
}

// ctypeFor returns the engine ABI slot constant for a primitive kind.
func ctypeFor(k resolver.PrimKind) string {
	switch k {
	case resolver.PrimBool:
		return "engine.CTypeBool"
	case resolver.PrimInt32:
		return "engine.CTypeInt32"
	case resolver.PrimUint32:
		return "engine.CTypeUint32"
	case resolver.PrimInt64:
		return "engine.CTypeInt64"
	case resolver.PrimUint64:
		return "engine.CTypeUint64"
	case resolver.PrimFloat32:
		return "engine.CTypeFloat32"
	case resolver.PrimFloat64:
		return "engine.CTypeFloat64"
	default:
		return "engine.CTypeVoid"
	}
}
