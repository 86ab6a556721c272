package gen

import (
	"fmt"
	"strings"

	"github.com/weldgen/weld/resolver"
)

// fastFnName returns the direct-call function name for a definition name.
func fastFnName(defName string) string {
	return GoFuncName(defName) + "FastCall"
}

// fastInfoName returns the ABI descriptor variable name.
func fastInfoName(defName string) string {
	return ToCamelCase(defName) + "FastCallInfo"
}

// writeFastPair emits the direct-call function and its ABI descriptor.
// Only called for DualPath plans: every boundary value is a fast-eligible
// primitive, so nothing in here can fail or throw.
func writeFastPair(b *strings.Builder, p *Plan) {
	fnName := GoFuncName(p.Fn.Name)
	fast := fastFnName(p.Fn.Name)

	var params []string
	var callArgs []string
	if p.State != nil {
		callArgs = append(callArgs, "state")
	}
	for _, param := range p.Params {
		name := ToCamelCase(param.Name)
		params = append(params, name+" "+param.Class.Prim.GoType())
		callArgs = append(callArgs, name)
	}
	if p.State != nil {
		params = append(params, "opts *engine.FastOptions")
	}

	retType := goReturnType(p.Return)
	sig := fmt.Sprintf("func %s(recv *engine.Value, %s)", fast, strings.Join(params, ", "))
	if retType != "" {
		sig += " " + retType
	}

	fmt.Fprintf(b, "// %s is the direct-call entry for %s, invoked by the engine on\n", fast, p.Fn.EngineName())
	b.WriteString("// hot paths without the interpreted callback machinery.\n")
	b.WriteString(sig + " {\n")
	if p.State != nil {
		// No throw mechanism here; liveness is the registration contract.
		fmt.Fprintf(b, "\tstate, _ := engine.ExternalAs[%s](opts.Data)\n", goStateType(p.State))
	}
	call := fmt.Sprintf("%s(%s)", fnName, strings.Join(callArgs, ", "))
	if retType != "" {
		fmt.Fprintf(b, "\treturn %s\n", call)
	} else {
		fmt.Fprintf(b, "\t%s\n", call)
	}
	b.WriteString("}\n")
	b.WriteString("\n")

	writeFastInfo(b, p)
}

// writeFastInfo emits the ABI descriptor: receiver placeholder, each
// parameter's native primitive type, the trailing call-options slot when
// capsule state is attached, and the return type.
func writeFastInfo(b *strings.Builder, p *Plan) {
	info := fastInfoName(p.Fn.Name)

	slots := []string{"engine.CTypeValue"}
	for _, param := range p.Params {
		slots = append(slots, ctypeFor(param.Class.Prim))
	}
	if p.State != nil {
		slots = append(slots, "engine.CTypeCallbackOptions")
	}

	fmt.Fprintf(b, "// %s describes the direct-call ABI for %s.\n", info, p.Fn.EngineName())
	fmt.Fprintf(b, "var %s = engine.FastCallInfo{\n", info)
	fmt.Fprintf(b, "\tReturn: %s,\n", ctypeFor(p.Return.Prim))
	fmt.Fprintf(b, "\tArgs:   []engine.CType{%s},\n", strings.Join(slots, ", "))
	b.WriteString("\tInt64:  engine.Int64BigInt,\n")
	b.WriteString("}\n")
}

// writeTemplateHelper emits the registration helper producing the
// bindable callable: slow-only, dual-path, and capsule-state variants.
func writeTemplateHelper(b *strings.Builder, p *Plan) {
	fnName := GoFuncName(p.Fn.Name)
	tmpl := fnName + "Template"
	pinned := p.State != nil && p.State.Mode == resolver.PinnedCapsule

	if p.Verdict == DualPath {
		fmt.Fprintf(b, "// %s builds the dual-path callable for %s.\n", tmpl, p.Fn.EngineName())
	} else {
		fmt.Fprintf(b, "// %s builds the callable for %s.\n", tmpl, p.Fn.EngineName())
	}

	if pinned {
		b.WriteString("// The capsule holds a non-owning reference: the caller must keep state\n")
		b.WriteString("// alive for the callable's entire registered lifetime.\n")
		fmt.Fprintf(b, "func %s(scope *engine.Scope, state %s) *engine.FuncTemplate {\n", tmpl, goStateType(p.State))
	} else {
		fmt.Fprintf(b, "func %s(scope *engine.Scope) *engine.FuncTemplate {\n", tmpl)
	}

	chain := fmt.Sprintf("engine.NewFuncTemplate(%q, %sCallback)", p.Fn.EngineName(), fnName)
	if pinned {
		chain += ".\n\t\tWithData(engine.NewExternal(state))"
	}
	if p.Verdict == DualPath {
		chain += fmt.Sprintf(".\n\t\tWithFastCall(%s, %s)", fastInfoName(p.Fn.Name), fastFnName(p.Fn.Name))
	}
	fmt.Fprintf(b, "\treturn %s\n", chain)
	b.WriteString("}\n")
}
