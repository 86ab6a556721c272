package engine

import (
	"testing"
)

func TestExternal_Recover(t *testing.T) {
	st := &counterState{n: 3}
	capsule := NewExternal(st)

	if !capsule.IsExternal() {
		t.Fatal("expected an external value")
	}

	got, ok := ExternalAs[*counterState](capsule)
	if !ok {
		t.Fatal("expected live capsule recovery")
	}
	if got != st {
		t.Error("expected the same instance back")
	}
}

func TestExternal_WrongType(t *testing.T) {
	capsule := NewExternal(&counterState{})
	if _, ok := ExternalAs[*string](capsule); ok {
		t.Error("expected recovery to fail for the wrong type")
	}
}

func TestExternal_Released(t *testing.T) {
	capsule := NewExternal(&counterState{})
	ReleaseExternal(capsule)

	if _, ok := capsule.External(); ok {
		t.Error("released capsule must not yield its payload")
	}
	if _, ok := ExternalAs[*counterState](capsule); ok {
		t.Error("typed recovery must fail after release")
	}
}

func TestExternal_NonExternal(t *testing.T) {
	if _, ok := Number(1).External(); ok {
		t.Error("numbers are not externals")
	}
	// Releasing a non-external is a no-op, not a panic.
	ReleaseExternal(Number(1))
}

func TestHandleAs(t *testing.T) {
	widget := NewObjectClass("Widget")

	got, ok := HandleAs(widget, "Widget")
	if !ok || got != widget {
		t.Error("expected class-matched conversion to succeed")
	}

	if _, ok := HandleAs(widget, "Gadget"); ok {
		t.Error("expected mismatched class to fail")
	}
	if _, ok := HandleAs(String("x"), "Widget"); ok {
		t.Error("expected non-object to fail")
	}
}
