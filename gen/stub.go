package gen

import (
	"fmt"
	"strings"
)

func init() {
	Register("stubs", func() Generator { return &StubGenerator{} })
}

// StubGenerator produces native function scaffolding matching the
// declared signatures. The file is only written when absent so real
// implementations are never clobbered.
type StubGenerator struct{}

func (g *StubGenerator) Name() string { return "stubs" }

func (g *StubGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Native function stubs for %s. Replace the bodies with real\n", ctx.Def.Bindings.Name)
	b.WriteString("// implementations; weld never regenerates this file once it exists.\n\n")
	fmt.Fprintf(&b, "package %s\n", ctx.Def.Bindings.Package)
	b.WriteString("\n")
	if needsEngineImport(ctx.Plans) {
		b.WriteString("import (\n")
		b.WriteString("\t\"github.com/weldgen/weld/engine\"\n")
		b.WriteString(")\n")
		b.WriteString("\n")
	}

	for i, p := range ctx.Plans {
		if i > 0 {
			b.WriteString("\n")
		}
		writeStub(&b, p)
	}

	filename := ctx.Def.Bindings.Name + "_stubs.go"
	return []*OutputFile{
		{Path: filename, Content: []byte(b.String()), Scaffold: true},
	}, nil
}

func needsEngineImport(plans []*Plan) bool {
	for _, p := range plans {
		if p.Fn.UsesScope {
			return true
		}
		for _, param := range p.Params {
			if strings.Contains(goParamType(param.Class), "engine.") {
				return true
			}
		}
		if strings.Contains(goReturnType(p.Return), "engine.") {
			return true
		}
	}
	return false
}

// writeStub emits one native function with the calling convention the
// generated glue expects: scope first, then state, then parameters.
func writeStub(b *strings.Builder, p *Plan) {
	var params []string
	if p.Fn.UsesScope {
		params = append(params, "scope *engine.Scope")
	}
	if p.State != nil {
		params = append(params, "state "+goStateType(p.State))
	}
	for _, param := range p.Params {
		params = append(params, ToCamelCase(param.Name)+" "+goParamType(param.Class))
	}

	ret := goReturnType(p.Return)
	var retClause string
	switch {
	case p.Fallible && ret != "":
		retClause = fmt.Sprintf(" (%s, error)", ret)
	case p.Fallible:
		retClause = " error"
	case ret != "":
		retClause = " " + ret
	}

	if p.Fn.Description != "" {
		fmt.Fprintf(b, "// %s %s\n", GoFuncName(p.Fn.Name), p.Fn.Description)
	}
	fmt.Fprintf(b, "func %s(%s)%s {\n", GoFuncName(p.Fn.Name), strings.Join(params, ", "), retClause)
	fmt.Fprintf(b, "\tpanic(\"%s: not implemented\")\n", p.Fn.Name)
	b.WriteString("}\n")
}
