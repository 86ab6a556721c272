package model

import (
	"testing"
)

func TestParseType_Primitives(t *testing.T) {
	for _, name := range []string{"bool", "int32", "uint32", "int64", "uint64", "float32", "float64", "void"} {
		desc, err := ParseType(name)
		if err != nil {
			t.Errorf("ParseType(%q): unexpected error: %v", name, err)
			continue
		}
		if desc.Name != name || len(desc.Args) != 0 {
			t.Errorf("ParseType(%q): got %+v", name, desc)
		}
		if !IsPrimitiveName(desc.Name) {
			t.Errorf("expected %q to be a primitive name", name)
		}
	}
}

func TestParseType_Handle(t *testing.T) {
	desc, err := ParseType("handle:Function")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kind, ok := desc.HandleInner()
	if !ok {
		t.Fatal("expected a handle tree")
	}
	if kind != "Function" {
		t.Errorf("expected handle kind 'Function', got %q", kind)
	}
	if desc.String() != "handle:Function" {
		t.Errorf("expected round-trip spelling 'handle:Function', got %q", desc.String())
	}
}

func TestParseType_Optional(t *testing.T) {
	desc, err := ParseType("optional<string>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !desc.IsWrapper("optional") {
		t.Fatalf("expected optional wrapper, got %+v", desc)
	}
	if desc.Args[0].Name != "string" {
		t.Errorf("expected inner 'string', got %q", desc.Args[0].Name)
	}
	if desc.String() != "optional<string>" {
		t.Errorf("expected round-trip spelling, got %q", desc.String())
	}
}

func TestParseType_OptionalHandle(t *testing.T) {
	desc, err := ParseType("optional<handle:Object>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !desc.IsWrapper("optional") {
		t.Fatalf("expected optional wrapper, got %+v", desc)
	}
	if _, ok := desc.Args[0].HandleInner(); !ok {
		t.Errorf("expected handle inner, got %+v", desc.Args[0])
	}
}

func TestParseType_StateWrappers(t *testing.T) {
	shared, err := ParseType("shared<Counter>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shared.IsWrapper("shared") || shared.Args[0].Name != "Counter" {
		t.Errorf("unexpected tree: %+v", shared)
	}

	pinned, err := ParseType("pinned<Counter>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pinned.IsWrapper("pinned") || pinned.Args[0].Name != "Counter" {
		t.Errorf("unexpected tree: %+v", pinned)
	}
}

func TestParseType_OpaqueIdentifier(t *testing.T) {
	desc, err := ParseType("Point")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Name != "Point" || len(desc.Args) != 0 {
		t.Errorf("unexpected tree: %+v", desc)
	}
}

func TestParseType_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "123bad", "optional<>", "handle:", "a b"} {
		if _, err := ParseType(s); err == nil {
			t.Errorf("ParseType(%q): expected error", s)
		}
	}
}

func TestTypeDescString_Nil(t *testing.T) {
	var desc *TypeDesc
	if desc.String() != "void" {
		t.Errorf("expected nil tree to spell 'void', got %q", desc.String())
	}
}
