package validate

import (
	"strings"
	"testing"

	"github.com/weldgen/weld/model"
)

func minimalDef() *model.BindingsDefinition {
	return &model.BindingsDefinition{
		Bindings: model.BindingsMetadata{
			Name:    "test_bindings",
			Package: "testpkg",
			Version: "0.1.0",
		},
		Functions: []model.FunctionDef{
			{
				Name: "add",
				Params: []model.ParamDef{
					{Name: "a", Type: "float64"},
					{Name: "b", Type: "float64"},
				},
				Returns: &model.ReturnDef{Type: "float64"},
			},
		},
	}
}

func TestValidate_ValidMinimal(t *testing.T) {
	result := Validate(minimalDef())
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
}

func TestValidate_MissingMetadata(t *testing.T) {
	def := minimalDef()
	def.Bindings.Name = ""
	def.Bindings.Package = ""

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected errors for missing metadata")
	}
	if !strings.Contains(result.Error(), "bindings.name") {
		t.Errorf("expected bindings.name error, got:\n%s", result.Error())
	}
	if !strings.Contains(result.Error(), "bindings.package") {
		t.Errorf("expected bindings.package error, got:\n%s", result.Error())
	}
}

func TestValidate_DuplicateFunctionName(t *testing.T) {
	def := minimalDef()
	def.Functions = append(def.Functions, def.Functions[0])

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for duplicate function name")
	}
	if !strings.Contains(result.Error(), `duplicate function name "add"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_EngineNameCollision(t *testing.T) {
	def := minimalDef()
	def.Functions = append(def.Functions, model.FunctionDef{
		Name:    "add_renamed",
		Options: model.OptionsDef{Name: "add"},
	})

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for engine name collision")
	}
	if !strings.Contains(result.Error(), `engine name "add" already used`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_UnknownOptionKey(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Options.Unknown = []string{"turbo"}

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for unknown option key")
	}
	if !strings.Contains(result.Error(), `unknown option key "turbo"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_DuplicateParamName(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Params[1].Name = "a"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for duplicate parameter name")
	}
	if !strings.Contains(result.Error(), `duplicate parameter name "a"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_ParamNamesCollideAfterCasing(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Params[0].Name = "max_len"
	def.Functions[0].Params[1].Name = "maxLen"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for names mapping to the same identifier")
	}
	if !strings.Contains(result.Error(), `duplicate parameter name "maxLen" (collides with "max_len")`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_ReservedParamName(t *testing.T) {
	for _, name := range []string{"scope", "args", "rv", "state", "result", "inner", "deferred", "recv", "opts", "err", "cerr", "v", "ok"} {
		def := minimalDef()
		def.Functions[0].Params[0].Name = name

		result := Validate(def)
		if result.IsValid() {
			t.Fatalf("expected error for reserved parameter name %q", name)
		}
		if !strings.Contains(result.Error(), "reserved by the generated wrapper") {
			t.Errorf("%s: unexpected errors:\n%s", name, result.Error())
		}
	}
}

func TestValidate_VoidParam(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Params[0].Type = "void"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for void parameter")
	}
	if !strings.Contains(result.Error(), "void is not a valid parameter type") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_NestedOptional(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Params[0].Type = "optional<optional<string>>"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for nested optional")
	}
	if !strings.Contains(result.Error(), "optional cannot be nested") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_OptionalReturn(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Returns.Type = "optional<string>"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for optional return type")
	}
	if !strings.Contains(result.Error(), "optional is only valid in parameter position") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_StateWithoutUse(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Options.State = "shared<Counter>"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for unused state declaration")
	}
	if !strings.Contains(result.Error(), "does not use state") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_UseWithoutState(t *testing.T) {
	def := minimalDef()
	def.Functions[0].UsesState = true

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for missing state type")
	}
	if !strings.Contains(result.Error(), "declares no state type") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_FastWithSharedState(t *testing.T) {
	def := minimalDef()
	def.Functions[0].UsesState = true
	def.Functions[0].Options.State = "shared<Counter>"
	def.Functions[0].Options.Fast = true

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for fast path with shared-slot state")
	}
	if !strings.Contains(result.Error(), "requires pinned<Counter>") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_FastWithPinnedStateOK(t *testing.T) {
	def := minimalDef()
	def.Functions[0].UsesState = true
	def.Functions[0].Options.State = "pinned<Counter>"
	def.Functions[0].Options.Fast = true

	result := Validate(def)
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
}

func TestValidate_PromiseWithFastIsNotAnError(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Options.Promise = true
	def.Functions[0].Options.Fast = true

	// The planner degrades this combination to the interpreted wrapper
	// with a recorded reason; it is not a configuration error.
	result := Validate(def)
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
}

func TestValidate_PrimitiveState(t *testing.T) {
	def := minimalDef()
	def.Functions[0].UsesState = true
	def.Functions[0].Options.State = "shared<int32>"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for primitive state type")
	}
	if !strings.Contains(result.Error(), "must be a named native type") {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_BadTypeSpelling(t *testing.T) {
	def := minimalDef()
	def.Functions[0].Params[0].Type = "optional<>"

	result := Validate(def)
	if result.IsValid() {
		t.Fatal("expected error for malformed type")
	}
}
