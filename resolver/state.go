package resolver

import (
	"github.com/weldgen/weld/model"
)

// StateMode selects how shared application state reaches a callback.
type StateMode int

const (
	// SharedSlot stores the state in a per-execution-context slot,
	// populated once and shared by every callable bound to that context.
	SharedSlot StateMode = iota
	// PinnedCapsule pins the state at registration time and passes it to
	// one specific callable as opaque associated data. Mandatory whenever
	// the fast path is combined with state.
	PinnedCapsule
)

func (m StateMode) String() string {
	switch m {
	case SharedSlot:
		return "shared"
	case PinnedCapsule:
		return "pinned"
	default:
		return "unknown"
	}
}

// StateSpec is the resolved state binding for one function.
type StateSpec struct {
	Mode StateMode
	// Type is the state type with the ownership wrapper removed.
	Type *model.TypeDesc
	// Declared is the original spelling, used verbatim in the
	// misconfiguration error message baked into generated code.
	Declared string
}

// ResolveState resolves a declared state type into a StateSpec, unwrapping
// one level of ownership wrapper. A bare type defaults to SharedSlot.
func ResolveState(t *model.TypeDesc) StateSpec {
	declared := t.String()
	switch {
	case t.IsWrapper("shared"):
		return StateSpec{Mode: SharedSlot, Type: t.Args[0], Declared: declared}
	case t.IsWrapper("pinned"):
		return StateSpec{Mode: PinnedCapsule, Type: t.Args[0], Declared: declared}
	default:
		return StateSpec{Mode: SharedSlot, Type: t, Declared: declared}
	}
}
