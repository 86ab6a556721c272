package engine

// DeferredState tracks a deferred's lifecycle.
type DeferredState int

const (
	DeferredPending DeferredState = iota
	DeferredFulfilled
	DeferredRejected
)

func (s DeferredState) String() string {
	switch s {
	case DeferredPending:
		return "pending"
	case DeferredFulfilled:
		return "fulfilled"
	case DeferredRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Deferred is the engine's one-shot asynchronous result placeholder. It
// settles exactly once; later resolutions and rejections are ignored, as
// the engine's promise semantics require.
type Deferred struct {
	state DeferredState
	value *Value
}

// NewDeferred creates a pending deferred in this scope.
func (s *Scope) NewDeferred() *Deferred {
	return &Deferred{state: DeferredPending}
}

// Promise returns the promise value backed by this deferred, suitable for
// handing to the return sink before the wrapped work runs.
func (d *Deferred) Promise() *Value {
	return &Value{kind: KindPromise, deferred: d}
}

// Resolve fulfills the deferred with v. A settled deferred is unchanged.
func (d *Deferred) Resolve(v *Value) {
	if d.state != DeferredPending {
		return
	}
	d.state = DeferredFulfilled
	d.value = v
}

// Reject rejects the deferred with v. A settled deferred is unchanged.
func (d *Deferred) Reject(v *Value) {
	if d.state != DeferredPending {
		return
	}
	d.state = DeferredRejected
	d.value = v
}

// State returns the deferred's lifecycle state.
func (d *Deferred) State() DeferredState { return d.state }

// Result returns the settlement value (nil while pending).
func (d *Deferred) Result() *Value { return d.value }

// PromiseDeferred returns the deferred behind a promise value, or nil if v
// is not a promise.
func PromiseDeferred(v *Value) *Deferred {
	if v == nil || v.kind != KindPromise {
		return nil
	}
	return v.deferred
}
