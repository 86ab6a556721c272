package gen

import (
	"fmt"

	"github.com/weldgen/weld/model"
	"github.com/weldgen/weld/resolver"
)

// Verdict is the fast-path eligibility outcome for one function. It is a
// pure function of the plan and never widens at runtime.
type Verdict int

const (
	// SlowOnly emits just the interpreted wrapper.
	SlowOnly Verdict = iota
	// DualPath emits the interpreted wrapper plus the direct-call pair.
	DualPath
)

func (v Verdict) String() string {
	if v == DualPath {
		return "dual-path"
	}
	return "slow-only"
}

// ParamPlan is one classified parameter.
type ParamPlan struct {
	Name  string
	Class resolver.TypeClass
}

// Plan is the generation plan for a single function: classified
// parameters and return, resolved state handling, and the eligibility
// verdict with a recorded reason when a fast request failed a gate.
type Plan struct {
	Fn       *model.FunctionDef
	Params   []ParamPlan
	Return   resolver.TypeClass
	Fallible bool
	State    *resolver.StateSpec
	Verdict  Verdict
	// Reason records why a requested fast path was not generated. Empty
	// when the verdict is DualPath or fast was never requested.
	Reason string
}

// BuildPlan classifies one function definition. It assumes the definition
// passed semantic validation but still refuses the configurations that
// would make generation meaningless.
func BuildPlan(f *model.FunctionDef) (*Plan, error) {
	p := &Plan{Fn: f}

	for _, param := range f.Params {
		desc, err := model.ParseType(param.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %s: %w", f.Name, param.Name, err)
		}
		p.Params = append(p.Params, ParamPlan{Name: param.Name, Class: resolver.Classify(desc)})
	}

	if f.Returns != nil {
		desc, err := model.ParseType(f.Returns.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: return: %w", f.Name, err)
		}
		p.Return = resolver.ClassifyReturn(desc)
		p.Fallible = f.Returns.Fallible
	} else {
		p.Return = resolver.ClassifyReturn(nil)
	}

	if f.UsesState {
		if f.Options.State == "" {
			return nil, fmt.Errorf("%s: function takes state but no state type is configured", f.Name)
		}
		desc, err := model.ParseType(f.Options.State)
		if err != nil {
			return nil, fmt.Errorf("%s: state: %w", f.Name, err)
		}
		spec := resolver.ResolveState(desc)
		p.State = &spec
	}

	p.Verdict, p.Reason = evaluateFastPath(p)

	if p.Verdict == DualPath && p.State != nil && p.State.Mode != resolver.PinnedCapsule {
		return nil, fmt.Errorf("%s: fast path with state requires pinned ownership, state is declared %s",
			f.Name, p.State.Declared)
	}

	return p, nil
}

// evaluateFastPath runs the eligibility gates in order. Any failure falls
// back to SlowOnly with a recorded diagnostic; the function is still
// emitted, only the fast pair is omitted.
func evaluateFastPath(p *Plan) (Verdict, string) {
	if !p.Fn.Options.Fast {
		return SlowOnly, ""
	}

	for i, param := range p.Params {
		if !param.Class.FastEligible() {
			return SlowOnly, fmt.Sprintf("parameter %s (index %d): %s is not a fast-eligible primitive",
				param.Name, i, param.Class)
		}
	}

	if !p.Return.FastEligible() {
		return SlowOnly, fmt.Sprintf("return type %s is not a fast-eligible primitive", p.Return)
	}

	if p.Fn.UsesScope {
		return SlowOnly, "function consumes the execution scope, which the direct-call path cannot provide"
	}

	if p.Fn.Options.Promise {
		return SlowOnly, "promise-wrapped results cannot be settled from the direct-call path"
	}

	return DualPath, ""
}

// BuildPlans classifies every function in the definition.
func BuildPlans(def *model.BindingsDefinition) ([]*Plan, error) {
	plans := make([]*Plan, 0, len(def.Functions))
	for i := range def.Functions {
		p, err := BuildPlan(&def.Functions[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
