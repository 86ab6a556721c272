package gen

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

func init() {
	Register("glue", func() Generator { return &GlueGenerator{} })
}

// GlueGenerator produces the Go glue source: per function, the
// interpreted-call wrapper, the direct-call pair when the plan is
// dual-path, and the registration helper. The native function itself is
// never touched; generated code calls it by name in the same package.
type GlueGenerator struct{}

func (g *GlueGenerator) Name() string { return "glue" }

func (g *GlueGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var b strings.Builder

	b.WriteString(GeneratedFileHeader(ctx))
	fmt.Fprintf(&b, "package %s\n", ctx.Def.Bindings.Package)
	b.WriteString("\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/weldgen/weld/engine\"\n")
	b.WriteString(")\n")

	for _, p := range ctx.Plans {
		ctx.Logger.Debug("emitting function",
			zap.String("function", p.Fn.Name),
			zap.Stringer("verdict", p.Verdict))

		b.WriteString("\n")
		writeSlowWrapper(&b, p)
		b.WriteString("\n")

		if p.Verdict == DualPath {
			writeFastPair(&b, p)
			b.WriteString("\n")
		} else if p.Fn.Options.Fast {
			// Fast was requested but a gate failed; the diagnostic rides
			// along in the artifact so the fallback is visible at the
			// definition site.
			fmt.Fprintf(&b, "// Fast path not generated for %s: %s.\n", p.Fn.EngineName(), p.Reason)
			b.WriteString("\n")
		}

		writeTemplateHelper(&b, p)
	}

	filename := ctx.Def.Bindings.Name + "_glue.go"
	return []*OutputFile{
		{Path: filename, Content: []byte(b.String())},
	}, nil
}
