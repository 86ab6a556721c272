package resolver

import (
	"testing"

	"github.com/weldgen/weld/model"
)

func mustParse(t *testing.T, s string) *model.TypeDesc {
	t.Helper()
	desc, err := model.ParseType(s)
	if err != nil {
		t.Fatalf("ParseType(%q): %v", s, err)
	}
	return desc
}

func TestClassify_Primitives(t *testing.T) {
	cases := map[string]PrimKind{
		"bool":    PrimBool,
		"int32":   PrimInt32,
		"uint32":  PrimUint32,
		"int64":   PrimInt64,
		"uint64":  PrimUint64,
		"float32": PrimFloat32,
		"float64": PrimFloat64,
		"void":    PrimVoid,
	}
	for spelling, want := range cases {
		tc := Classify(mustParse(t, spelling))
		if tc.Class != ClassPrimitive {
			t.Errorf("Classify(%q): expected primitive, got %s", spelling, tc.Class)
			continue
		}
		if tc.Prim != want {
			t.Errorf("Classify(%q): wrong primitive kind", spelling)
		}
		if !tc.FastEligible() {
			t.Errorf("Classify(%q): expected fast-eligible", spelling)
		}
	}
}

func TestClassify_NilIsVoid(t *testing.T) {
	tc := Classify(nil)
	if tc.Class != ClassPrimitive || tc.Prim != PrimVoid {
		t.Errorf("expected void classification, got %s", tc)
	}
}

func TestClassify_StringIsOpaque(t *testing.T) {
	tc := Classify(mustParse(t, "string"))
	if tc.Class != ClassOpaque {
		t.Errorf("expected string to classify opaque, got %s", tc.Class)
	}
	if tc.FastEligible() {
		t.Error("string must not be fast-eligible")
	}
}

func TestClassify_Handles(t *testing.T) {
	cases := map[string]HandleKind{
		"Function":    HandleFunction,
		"Object":      HandleObject,
		"Array":       HandleArray,
		"Uint8Array":  HandleTypedBuffer,
		"ArrayBuffer": HandleRawBuffer,
		"String":      HandleString,
		"Number":      HandleNumber,
		"Value":       HandleAnyValue,
	}
	for name, want := range cases {
		tc := Classify(mustParse(t, "handle:"+name))
		if tc.Class != ClassHandle {
			t.Errorf("handle:%s: expected handle class, got %s", name, tc.Class)
			continue
		}
		if tc.Handle != want {
			t.Errorf("handle:%s: wrong handle kind", name)
		}
		if tc.HandleName != name {
			t.Errorf("handle:%s: expected HandleName %q, got %q", name, name, tc.HandleName)
		}
		if tc.FastEligible() {
			t.Errorf("handle:%s must not be fast-eligible", name)
		}
	}
}

func TestClassify_GenericHandle(t *testing.T) {
	tc := Classify(mustParse(t, "handle:Widget"))
	if tc.Class != ClassHandle || tc.Handle != HandleGeneric {
		t.Errorf("expected generic handle, got %+v", tc)
	}
	if tc.HandleName != "Widget" {
		t.Errorf("expected HandleName 'Widget', got %q", tc.HandleName)
	}
	if tc.Handle.Predicate() != "" {
		t.Errorf("generic handle must have no predicate, got %q", tc.Handle.Predicate())
	}
}

func TestClassify_Optional(t *testing.T) {
	tc := Classify(mustParse(t, "optional<float64>"))
	if tc.Class != ClassOptional {
		t.Fatalf("expected optional class, got %s", tc.Class)
	}
	if tc.Inner == nil || tc.Inner.Class != ClassPrimitive || tc.Inner.Prim != PrimFloat64 {
		t.Errorf("unexpected inner classification: %+v", tc.Inner)
	}
	if tc.FastEligible() {
		t.Error("optional must not be fast-eligible")
	}
	if tc.String() != "optional<float64>" {
		t.Errorf("unexpected diagnostic spelling %q", tc.String())
	}
}

func TestClassify_OptionalHandle(t *testing.T) {
	tc := Classify(mustParse(t, "optional<handle:Object>"))
	if tc.Class != ClassOptional {
		t.Fatalf("expected optional class, got %s", tc.Class)
	}
	if tc.Inner.Class != ClassHandle || tc.Inner.Handle != HandleObject {
		t.Errorf("unexpected inner classification: %+v", tc.Inner)
	}
}

func TestClassify_OpaqueNamedType(t *testing.T) {
	tc := Classify(mustParse(t, "Point"))
	if tc.Class != ClassOpaque {
		t.Errorf("expected opaque, got %s", tc.Class)
	}
	if tc.String() != "Point" {
		t.Errorf("unexpected diagnostic spelling %q", tc.String())
	}
}

func TestHandleKind_Predicates(t *testing.T) {
	cases := map[HandleKind]string{
		HandleFunction:    "IsFunction",
		HandleObject:      "IsObject",
		HandleArray:       "IsArray",
		HandleTypedBuffer: "IsUint8Array",
		HandleRawBuffer:   "IsArrayBuffer",
		HandleString:      "IsString",
		HandleNumber:      "IsNumber",
		HandleAnyValue:    "",
		HandleGeneric:     "",
	}
	for kind, want := range cases {
		if got := kind.Predicate(); got != want {
			t.Errorf("Predicate(%d): expected %q, got %q", kind, want, got)
		}
	}
}
