package gen

import (
	"fmt"
	"strings"
)

func init() {
	Register("report", func() Generator { return &ReportGenerator{} })
}

// ReportGenerator produces a plain-text summary of the generation plan:
// one line per function with its path verdict, plus the recorded reason
// whenever a requested fast path fell back to slow-only.
type ReportGenerator struct{}

func (g *ReportGenerator) Name() string { return "report" }

func (g *ReportGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "weld generation report: %s %s\n",
		ctx.Def.Bindings.Name, ctx.Def.Bindings.Version)
	fmt.Fprintf(&b, "functions: %d\n\n", len(ctx.Plans))

	for _, p := range ctx.Plans {
		fmt.Fprintf(&b, "%s: %s\n", p.Fn.Name, p.Verdict)
		for i, param := range p.Params {
			fmt.Fprintf(&b, "  param %d %s: %s\n", i, param.Name, param.Class)
		}
		fmt.Fprintf(&b, "  return: %s\n", p.Return)
		if p.State != nil {
			fmt.Fprintf(&b, "  state: %s (%s)\n", p.State.Declared, p.State.Mode)
		}
		if p.Reason != "" {
			fmt.Fprintf(&b, "  fast path skipped: %s\n", p.Reason)
		}
		b.WriteString("\n")
	}

	filename := ctx.Def.Bindings.Name + "_glue_report.txt"
	return []*OutputFile{
		{Path: filename, Content: []byte(b.String())},
	}, nil
}
