package gen

import (
	"fmt"
	"strings"

	"github.com/weldgen/weld/resolver"
)

// writeSlowWrapper emits the universal interpreted-call wrapper: the
// engine's fixed three-part callback shape around the native function.
func writeSlowWrapper(b *strings.Builder, p *Plan) {
	fnName := GoFuncName(p.Fn.Name)
	wrapperName := fnName + "Callback"

	fmt.Fprintf(b, "// %s implements the engine callback contract for %s.\n", wrapperName, p.Fn.EngineName())
	fmt.Fprintf(b, "func %s(scope *engine.Scope, args engine.CallbackArgs, rv *engine.ReturnValue) {\n", wrapperName)
	writeStateExtraction(b, p)
	for i, param := range p.Params {
		writeArgExtraction(b, i, param)
	}
	writeCallAndReturn(b, p)
	b.WriteString("}\n")
}

// writeStateExtraction emits the state recovery for the function's
// resolved binding mode, or nothing when state is unused.
func writeStateExtraction(b *strings.Builder, p *Plan) {
	if p.State == nil {
		return
	}
	stateType := goStateType(p.State)

	switch p.State.Mode {
	case resolver.PinnedCapsule:
		b.WriteString("\t// Non-owning borrow; the registration owner keeps the state alive.\n")
		fmt.Fprintf(b, "\tstate, ok := engine.ExternalAs[%s](args.Data())\n", stateType)
		b.WriteString("\tif !ok {\n")
		fmt.Fprintf(b, "\t\tscope.Throw(engine.NewError(\"internal error: state data not set for %s\"))\n", p.State.Declared)
		b.WriteString("\t\treturn\n")
		b.WriteString("\t}\n")
	default:
		fmt.Fprintf(b, "\tstate, ok := engine.GetSlot[%s](scope.Context())\n", stateType)
		b.WriteString("\tif !ok {\n")
		fmt.Fprintf(b, "\t\tscope.Throw(engine.NewError(\"internal error: state not found for %s\"))\n", p.State.Declared)
		b.WriteString("\t\treturn\n")
		b.WriteString("\t}\n")
	}
}

// writeArgExtraction emits validation and conversion for one positional
// argument, aborting the call on an argument type error.
func writeArgExtraction(b *strings.Builder, idx int, param ParamPlan) {
	name := ToCamelCase(param.Name)
	tc := param.Class

	switch tc.Class {
	case resolver.ClassOptional:
		writeOptionalExtraction(b, idx, name, tc)
	case resolver.ClassHandle:
		writeHandleExtraction(b, idx, name, tc)
	default:
		writeConvertedExtraction(b, idx, name, tc)
	}
}

// writeOptionalExtraction binds absent for the undefined/null sentinels
// and otherwise converts to the inner type, reporting errors against the
// inner type's name.
func writeOptionalExtraction(b *strings.Builder, idx int, name string, tc resolver.TypeClass) {
	inner := *tc.Inner

	if inner.Class == resolver.ClassHandle {
		fmt.Fprintf(b, "\tvar %s *engine.Value\n", name)
		fmt.Fprintf(b, "\tif arg%d := args.Get(%d); !arg%d.IsUndefined() && !arg%d.IsNull() {\n", idx, idx, idx, idx)
		if pred := inner.Handle.Predicate(); pred != "" {
			fmt.Fprintf(b, "\t\tif !arg%d.%s() {\n", idx, pred)
			fmt.Fprintf(b, "\t\t\tscope.Throw(engine.NewTypeError(\"argument %d must be a %s\"))\n", idx, inner.HandleName)
			b.WriteString("\t\t\treturn\n")
			b.WriteString("\t\t}\n")
		}
		fmt.Fprintf(b, "\t\t%s = arg%d\n", name, idx)
		b.WriteString("\t}\n")
		return
	}

	innerType := goParamType(inner)
	fmt.Fprintf(b, "\tvar %s *%s\n", name, innerType)
	fmt.Fprintf(b, "\tif arg%d := args.Get(%d); !arg%d.IsUndefined() && !arg%d.IsNull() {\n", idx, idx, idx, idx)
	fmt.Fprintf(b, "\t\tvar inner %s\n", innerType)
	fmt.Fprintf(b, "\t\tif err := engine.FromValue(scope, arg%d, &inner); err != nil {\n", idx)
	fmt.Fprintf(b, "\t\t\tscope.Throw(engine.NewTypeError(\"argument %d: expected %s: \" + err.Error()))\n", idx, inner0Name(tc))
	b.WriteString("\t\t\treturn\n")
	b.WriteString("\t\t}\n")
	fmt.Fprintf(b, "\t\t%s = &inner\n", name)
	b.WriteString("\t}\n")
}

// inner0Name spells the optional's inner type for diagnostics.
func inner0Name(tc resolver.TypeClass) string {
	if tc.Inner != nil && tc.Inner.Desc != nil {
		return tc.Inner.Desc.String()
	}
	return tc.Inner.String()
}

// writeHandleExtraction emits the kind's runtime type predicate and binds
// the argument as that handle on success.
func writeHandleExtraction(b *strings.Builder, idx int, name string, tc resolver.TypeClass) {
	switch {
	case tc.Handle == resolver.HandleAnyValue:
		fmt.Fprintf(b, "\t%s := args.Get(%d)\n", name, idx)
	case tc.Handle == resolver.HandleGeneric:
		fmt.Fprintf(b, "\t%s, ok := engine.HandleAs(args.Get(%d), %q)\n", name, idx, tc.HandleName)
		b.WriteString("\tif !ok {\n")
		fmt.Fprintf(b, "\t\tscope.Throw(engine.NewTypeError(\"argument %d: expected handle:%s\"))\n", idx, tc.HandleName)
		b.WriteString("\t\treturn\n")
		b.WriteString("\t}\n")
	default:
		fmt.Fprintf(b, "\t%s := args.Get(%d)\n", name, idx)
		fmt.Fprintf(b, "\tif !%s.%s() {\n", name, tc.Handle.Predicate())
		fmt.Fprintf(b, "\t\tscope.Throw(engine.NewTypeError(\"argument %d must be a %s\"))\n", idx, tc.HandleName)
		b.WriteString("\t\treturn\n")
		b.WriteString("\t}\n")
	}
}

// writeConvertedExtraction emits generic deserialization for primitive
// and opaque parameters.
func writeConvertedExtraction(b *strings.Builder, idx int, name string, tc resolver.TypeClass) {
	fmt.Fprintf(b, "\tvar %s %s\n", name, goParamType(tc))
	fmt.Fprintf(b, "\tif err := engine.FromValue(scope, args.Get(%d), &%s); err != nil {\n", idx, name)
	fmt.Fprintf(b, "\t\tscope.Throw(engine.NewTypeError(\"argument %d: expected %s: \" + err.Error()))\n", idx, tc.Desc.String())
	b.WriteString("\t\treturn\n")
	b.WriteString("\t}\n")
}

// callArgs assembles the native call's argument list: scope, then state,
// then the positional parameters in declaration order.
func callArgs(p *Plan) string {
	var args []string
	if p.Fn.UsesScope {
		args = append(args, "scope")
	}
	if p.State != nil {
		args = append(args, "state")
	}
	for _, param := range p.Params {
		args = append(args, ToCamelCase(param.Name))
	}
	return strings.Join(args, ", ")
}

// writeCallAndReturn emits the native call and result handling for the
// six async/fallible/value cases.
func writeCallAndReturn(b *strings.Builder, p *Plan) {
	fnName := GoFuncName(p.Fn.Name)
	call := fmt.Sprintf("%s(%s)", fnName, callArgs(p))
	hasValue := goReturnType(p.Return) != ""

	if p.Fn.Options.Promise {
		b.WriteString("\tdeferred := scope.NewDeferred()\n")
		b.WriteString("\trv.Set(deferred.Promise())\n")
		switch {
		case p.Fallible && hasValue:
			fmt.Fprintf(b, "\tresult, err := %s\n", call)
			b.WriteString("\tif err != nil {\n")
			b.WriteString("\t\tdeferred.Reject(engine.NewError(err.Error()))\n")
			b.WriteString("\t\treturn\n")
			b.WriteString("\t}\n")
			b.WriteString("\tif v, cerr := engine.ToValue(scope, result); cerr == nil {\n")
			b.WriteString("\t\tdeferred.Resolve(v)\n")
			b.WriteString("\t}\n")
		case p.Fallible:
			fmt.Fprintf(b, "\tif err := %s; err != nil {\n", call)
			b.WriteString("\t\tdeferred.Reject(engine.NewError(err.Error()))\n")
			b.WriteString("\t\treturn\n")
			b.WriteString("\t}\n")
			b.WriteString("\tdeferred.Resolve(engine.Undefined())\n")
		case hasValue:
			fmt.Fprintf(b, "\tresult := %s\n", call)
			b.WriteString("\tif v, err := engine.ToValue(scope, result); err == nil {\n")
			b.WriteString("\t\tdeferred.Resolve(v)\n")
			b.WriteString("\t}\n")
		default:
			fmt.Fprintf(b, "\t%s\n", call)
			b.WriteString("\tdeferred.Resolve(engine.Undefined())\n")
		}
		return
	}

	switch {
	case p.Fallible && hasValue:
		fmt.Fprintf(b, "\tresult, err := %s\n", call)
		b.WriteString("\tif err != nil {\n")
		b.WriteString("\t\tscope.Throw(engine.NewError(err.Error()))\n")
		b.WriteString("\t\treturn\n")
		b.WriteString("\t}\n")
		b.WriteString("\tif v, cerr := engine.ToValue(scope, result); cerr == nil {\n")
		b.WriteString("\t\trv.Set(v)\n")
		b.WriteString("\t}\n")
	case p.Fallible:
		fmt.Fprintf(b, "\tif err := %s; err != nil {\n", call)
		b.WriteString("\t\tscope.Throw(engine.NewError(err.Error()))\n")
		b.WriteString("\t}\n")
	case hasValue:
		fmt.Fprintf(b, "\tresult := %s\n", call)
		b.WriteString("\tif v, err := engine.ToValue(scope, result); err == nil {\n")
		b.WriteString("\t\trv.Set(v)\n")
		b.WriteString("\t}\n")
	default:
		fmt.Fprintf(b, "\t%s\n", call)
	}
}
