package engine

// externalBox is the heap cell behind an external value. The liveness
// flag is the managed-runtime stand-in for a non-owning borrow: the
// genuine owner invalidates the box when it drops the state, and every
// recovery checks the flag instead of trusting a raw pointer.
type externalBox struct {
	val      any
	released bool
}

// NewExternal wraps v in an opaque capsule value. The capsule holds a
// non-owning reference: it does not keep v alive, and the creator must
// guarantee v outlives every call the capsule can reach.
func NewExternal(v any) *Value {
	return &Value{kind: KindExternal, ext: &externalBox{val: v}}
}

// External returns the wrapped value. The second result is false when v
// is not an external or its owner released it.
func (v *Value) External() (any, bool) {
	if v.kind != KindExternal || v.ext == nil || v.ext.released {
		return nil, false
	}
	return v.ext.val, true
}

// ReleaseExternal invalidates the capsule. Subsequent recoveries fail
// rather than touching freed state.
func ReleaseExternal(v *Value) {
	if v.kind == KindExternal && v.ext != nil {
		v.ext.released = true
	}
}

// ExternalAs recovers the capsule payload as T. It returns false when v
// is not a live external or the payload has a different type.
func ExternalAs[T any](v *Value) (T, bool) {
	raw, ok := v.External()
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := raw.(T)
	return t, ok
}

// HandleAs attempts a runtime conversion of v to the named handle class.
// It is the fallback for handle kinds the generator has no predicate for.
func HandleAs(v *Value, class string) (*Value, bool) {
	if v.kind == KindObject && v.class == class {
		return v, true
	}
	return nil, false
}
