package gen

import (
	"strings"
	"testing"

	"github.com/weldgen/weld/model"
	"github.com/weldgen/weld/resolver"
)

func fastAddDef() *model.FunctionDef {
	return &model.FunctionDef{
		Name: "add",
		Params: []model.ParamDef{
			{Name: "a", Type: "float64"},
			{Name: "b", Type: "float64"},
		},
		Returns: &model.ReturnDef{Type: "float64"},
		Options: model.OptionsDef{Fast: true},
	}
}

func TestBuildPlan_DualPath(t *testing.T) {
	p, err := BuildPlan(fastAddDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != DualPath {
		t.Errorf("expected dual-path, got %s (reason %q)", p.Verdict, p.Reason)
	}
	if p.Reason != "" {
		t.Errorf("dual-path plans record no reason, got %q", p.Reason)
	}
	if len(p.Params) != 2 {
		t.Errorf("expected 2 classified params, got %d", len(p.Params))
	}
}

func TestBuildPlan_NoFastRequested(t *testing.T) {
	def := fastAddDef()
	def.Options.Fast = false

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != SlowOnly || p.Reason != "" {
		t.Errorf("expected quiet slow-only, got %s / %q", p.Verdict, p.Reason)
	}
}

func TestBuildPlan_IneligibleParam(t *testing.T) {
	def := fastAddDef()
	def.Params[1].Type = "string"

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != SlowOnly {
		t.Fatal("expected slow-only verdict")
	}
	if !strings.Contains(p.Reason, "parameter b (index 1)") {
		t.Errorf("reason must name the parameter and index, got %q", p.Reason)
	}
	if !strings.Contains(p.Reason, "not a fast-eligible primitive") {
		t.Errorf("unexpected reason %q", p.Reason)
	}
}

func TestBuildPlan_IneligibleReturn(t *testing.T) {
	def := fastAddDef()
	def.Returns.Type = "handle:Object"

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != SlowOnly {
		t.Fatal("expected slow-only verdict")
	}
	if !strings.Contains(p.Reason, "return type handle:Object") {
		t.Errorf("unexpected reason %q", p.Reason)
	}
}

func TestBuildPlan_ScopeBlocksFast(t *testing.T) {
	def := fastAddDef()
	def.UsesScope = true

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != SlowOnly {
		t.Fatal("expected slow-only verdict")
	}
	if !strings.Contains(p.Reason, "execution scope") {
		t.Errorf("unexpected reason %q", p.Reason)
	}
}

func TestBuildPlan_PromiseBlocksFast(t *testing.T) {
	def := fastAddDef()
	def.Options.Promise = true

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != SlowOnly {
		t.Fatal("expected slow-only verdict")
	}
	if !strings.Contains(p.Reason, "direct-call path") {
		t.Errorf("unexpected reason %q", p.Reason)
	}
}

func TestBuildPlan_GateOrder(t *testing.T) {
	// Parameter gates run before the return gate; the first failure wins.
	def := fastAddDef()
	def.Params[0].Type = "string"
	def.Returns.Type = "string"

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.Reason, "parameter a (index 0)") {
		t.Errorf("expected the parameter gate to fire first, got %q", p.Reason)
	}
}

func TestBuildPlan_SharedState(t *testing.T) {
	def := &model.FunctionDef{
		Name:      "increment",
		UsesState: true,
		Returns:   &model.ReturnDef{Type: "int64"},
		Options:   model.OptionsDef{State: "shared<Counter>"},
	}

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.State == nil {
		t.Fatal("expected a resolved state spec")
	}
	if p.State.Mode != resolver.SharedSlot {
		t.Errorf("expected shared slot mode, got %s", p.State.Mode)
	}
	if p.State.Type.Name != "Counter" {
		t.Errorf("expected unwrapped Counter, got %q", p.State.Type.Name)
	}
}

func TestBuildPlan_StateWithoutType(t *testing.T) {
	def := &model.FunctionDef{Name: "broken", UsesState: true}
	if _, err := BuildPlan(def); err == nil {
		t.Error("expected error for state use without a configured type")
	}
}

func TestBuildPlan_FastWithSharedStateFails(t *testing.T) {
	def := &model.FunctionDef{
		Name:      "bump",
		UsesState: true,
		Returns:   &model.ReturnDef{Type: "int64"},
		Options:   model.OptionsDef{State: "shared<Counter>", Fast: true},
	}

	_, err := BuildPlan(def)
	if err == nil {
		t.Fatal("expected error for dual-path with shared-slot state")
	}
	if !strings.Contains(err.Error(), "pinned ownership") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestBuildPlan_FastWithPinnedState(t *testing.T) {
	def := &model.FunctionDef{
		Name: "bump",
		Params: []model.ParamDef{
			{Name: "delta", Type: "int64"},
		},
		UsesState: true,
		Returns:   &model.ReturnDef{Type: "int64"},
		Options:   model.OptionsDef{State: "pinned<Counter>", Fast: true},
	}

	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Verdict != DualPath {
		t.Errorf("expected dual-path, got %s (reason %q)", p.Verdict, p.Reason)
	}
	if p.State.Mode != resolver.PinnedCapsule {
		t.Errorf("expected pinned capsule mode, got %s", p.State.Mode)
	}
}

func TestBuildPlan_VoidReturn(t *testing.T) {
	def := &model.FunctionDef{Name: "fire"}
	p, err := BuildPlan(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Return.Class != resolver.ClassPrimitive || p.Return.Prim != resolver.PrimVoid {
		t.Errorf("absent returns must classify void, got %s", p.Return)
	}
}

func TestBuildPlans_BadType(t *testing.T) {
	def := &model.BindingsDefinition{
		Functions: []model.FunctionDef{
			{Name: "bad", Params: []model.ParamDef{{Name: "x", Type: "!!"}}},
		},
	}
	if _, err := BuildPlans(def); err == nil {
		t.Error("expected error for unparsable type")
	}
}
