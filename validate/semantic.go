package validate

import (
	"fmt"
	"strings"

	"github.com/weldgen/weld/model"
	"github.com/weldgen/weld/resolver"
)

// ValidationError represents a single semantic validation error.
type ValidationError struct {
	Path    string // e.g., "functions[1].params[0].type"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Validate performs semantic validation on a parsed bindings definition.
// Misconfigurations are fatal at build time; nothing here is deferred to
// the generated code.
func Validate(def *model.BindingsDefinition) *ValidationResult {
	result := &ValidationResult{}

	if def.Bindings.Name == "" {
		result.addError("bindings.name", "bindings name is required")
	}
	if def.Bindings.Package == "" {
		result.addError("bindings.package", "package name is required")
	}

	seen := make(map[string]bool)
	engineSeen := make(map[string]string)
	for i := range def.Functions {
		f := &def.Functions[i]
		fnPath := fmt.Sprintf("functions[%d]", i)

		if seen[f.Name] {
			result.addError(fnPath+".name", fmt.Sprintf("duplicate function name %q", f.Name))
		}
		seen[f.Name] = true

		engineName := f.EngineName()
		if prev, ok := engineSeen[engineName]; ok {
			result.addError(fnPath+".options.name", fmt.Sprintf("engine name %q already used by function %q", engineName, prev))
		} else {
			engineSeen[engineName] = f.Name
		}

		for _, key := range f.Options.Unknown {
			result.addError(fnPath+".options", fmt.Sprintf("unknown option key %q (recognized: state, name, promise, fast)", key))
		}

		validateParams(result, fnPath, f)
		validateReturn(result, fnPath, f)
		validateState(result, fnPath, f)
	}

	return result
}

// reservedParamNames are the identifiers the generated wrappers declare
// for their own bookkeeping; a parameter landing on one of them would
// shadow or redeclare it in the emitted code.
var reservedParamNames = map[string]bool{
	"scope":    true,
	"args":     true,
	"rv":       true,
	"state":    true,
	"result":   true,
	"inner":    true,
	"deferred": true,
	"recv":     true,
	"opts":     true,
	"err":      true,
	"cerr":     true,
	"v":        true,
	"ok":       true,
}

func validateParams(result *ValidationResult, fnPath string, f *model.FunctionDef) {
	nameSeen := make(map[string]string)
	for j, p := range f.Params {
		paramPath := fmt.Sprintf("%s.params[%d]", fnPath, j)

		// Parameters become Go identifiers, so collisions are checked on
		// the camel-cased form.
		goName := model.ToCamelCase(p.Name)
		if prev, ok := nameSeen[goName]; ok {
			result.addError(paramPath+".name", fmt.Sprintf("duplicate parameter name %q (collides with %q)", p.Name, prev))
		} else {
			nameSeen[goName] = p.Name
		}
		if reservedParamNames[goName] {
			result.addError(paramPath+".name", fmt.Sprintf("parameter name %q is reserved by the generated wrapper", p.Name))
		}

		t, err := model.ParseType(p.Type)
		if err != nil {
			result.addError(paramPath+".type", err.Error())
			continue
		}
		if t.Name == "void" {
			result.addError(paramPath+".type", "void is not a valid parameter type")
			continue
		}
		if t.IsWrapper("shared") || t.IsWrapper("pinned") {
			result.addError(paramPath+".type", fmt.Sprintf("%s is a state wrapper; state is declared via options.state", t.Name))
			continue
		}
		if t.IsWrapper("optional") {
			inner := t.Args[0]
			if inner.IsWrapper("optional") {
				result.addError(paramPath+".type", "optional cannot be nested")
				continue
			}
			if inner.Name == "void" {
				result.addError(paramPath+".type", "optional<void> is not a valid parameter type")
				continue
			}
		}
	}
}

func validateReturn(result *ValidationResult, fnPath string, f *model.FunctionDef) {
	if f.Returns == nil {
		return
	}
	retPath := fnPath + ".returns.type"
	t, err := model.ParseType(f.Returns.Type)
	if err != nil {
		result.addError(retPath, err.Error())
		return
	}
	if t.IsWrapper("optional") {
		result.addError(retPath, "optional is only valid in parameter position")
		return
	}
	if t.IsWrapper("shared") || t.IsWrapper("pinned") {
		result.addError(retPath, fmt.Sprintf("%s is a state wrapper; state is declared via options.state", t.Name))
	}
}

func validateState(result *ValidationResult, fnPath string, f *model.FunctionDef) {
	if f.UsesState && f.Options.State == "" {
		result.addError(fnPath+".options.state", fmt.Sprintf("function %q uses state but declares no state type", f.Name))
	}
	if !f.UsesState && f.Options.State != "" {
		result.addError(fnPath+".options.state", fmt.Sprintf("function %q declares state type %q but does not use state", f.Name, f.Options.State))
	}

	// promise + fast is not an error: the fast path is best effort, so
	// the planner degrades the function to the interpreted wrapper and
	// records the reason.

	if f.Options.State == "" {
		return
	}
	statePath := fnPath + ".options.state"
	t, err := model.ParseType(f.Options.State)
	if err != nil {
		result.addError(statePath, err.Error())
		return
	}
	spec := resolver.ResolveState(t)
	if model.IsPrimitiveName(spec.Type.Name) || spec.Type.Name == "string" {
		result.addError(statePath, fmt.Sprintf("state type must be a named native type, got %q", spec.Type.Name))
	}
	if f.Options.Fast && spec.Mode != resolver.PinnedCapsule {
		result.addError(statePath, fmt.Sprintf("fast path with state requires pinned<%s>; shared-slot state is unreachable from the direct-call path", spec.Type.Name))
	}
}
