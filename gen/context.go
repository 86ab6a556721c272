package gen

import (
	"go.uber.org/zap"

	"github.com/weldgen/weld/model"
)

// Context holds everything a generator needs to produce output.
type Context struct {
	Def       *model.BindingsDefinition
	Plans     []*Plan
	OutputDir string
	DefPath   string // Path to the bindings YAML (for generated headers)
	DryRun    bool
	Logger    *zap.Logger
}

// NewContext creates a new generation context. The logger defaults to a
// no-op; callers wanting diagnostics inject their own.
func NewContext(def *model.BindingsDefinition, plans []*Plan, outputDir, defPath string) *Context {
	return &Context{
		Def:       def,
		Plans:     plans,
		OutputDir: outputDir,
		DefPath:   defPath,
		Logger:    zap.NewNop(),
	}
}
