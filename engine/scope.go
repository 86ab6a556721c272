package engine

import "reflect"

// Context is a per-execution-context environment. Shared state installed
// in its slots is visible to every callable bound to the context and lives
// as long as the context does.
type Context struct {
	slots map[reflect.Type]any
}

// NewContext returns an empty execution context.
func NewContext() *Context {
	return &Context{slots: map[reflect.Type]any{}}
}

// SetSlot installs v in the context slot keyed by its static type,
// replacing any previous occupant.
func SetSlot[T any](ctx *Context, v T) {
	ctx.slots[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// GetSlot retrieves the slot keyed by T. The second result is false when
// the slot was never populated.
func GetSlot[T any](ctx *Context) (T, bool) {
	v, ok := ctx.slots[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Scope is the per-call execution scope handle the engine passes into
// every callback. It carries the active context and the pending-exception
// channel callbacks throw through.
type Scope struct {
	ctx       *Context
	exception *Value
}

// NewScope returns a scope over the given context.
func NewScope(ctx *Context) *Scope {
	return &Scope{ctx: ctx}
}

// Context returns the execution context the scope runs in.
func (s *Scope) Context() *Context { return s.ctx }

// Throw records v as the pending exception. The engine surfaces it to the
// caller when the callback returns.
func (s *Scope) Throw(v *Value) { s.exception = v }

// HasException reports whether an exception is pending.
func (s *Scope) HasException() bool { return s.exception != nil }

// Exception returns the pending exception, or nil.
func (s *Scope) Exception() *Value { return s.exception }

// TakeException returns and clears the pending exception.
func (s *Scope) TakeException() *Value {
	e := s.exception
	s.exception = nil
	return e
}

// NewTypeError builds the engine's standard type-error value.
func NewTypeError(msg string) *Value {
	e := NewObjectClass("TypeError")
	e.Set("message", String(msg))
	return e
}

// NewError builds a generic engine error value.
func NewError(msg string) *Value {
	e := NewObjectClass("Error")
	e.Set("message", String(msg))
	return e
}

// IsTypeError reports whether v is a type-error value.
func IsTypeError(v *Value) bool {
	return v != nil && v.kind == KindObject && v.class == "TypeError"
}

// IsError reports whether v is any error value.
func IsError(v *Value) bool {
	return v != nil && v.kind == KindObject &&
		(v.class == "Error" || v.class == "TypeError")
}

// ErrorMessage returns the message of an error value ("" otherwise).
func ErrorMessage(v *Value) string {
	if !IsError(v) {
		return ""
	}
	return v.Get("message").Str()
}

// Callback is the engine's fixed three-part callback shape: execution
// scope, positional argument accessor, return-value sink.
type Callback func(scope *Scope, args CallbackArgs, rv *ReturnValue)

// CallbackArgs is the positional argument accessor handed to callbacks.
type CallbackArgs struct {
	args []*Value
	data *Value
}

// NewCallbackArgs builds an argument accessor. data is the callable's
// per-registration associated data (may be nil).
func NewCallbackArgs(data *Value, args ...*Value) CallbackArgs {
	return CallbackArgs{args: args, data: data}
}

// Get returns the i-th argument; missing arguments read as undefined,
// matching the engine's call semantics.
func (a CallbackArgs) Get(i int) *Value {
	if i < 0 || i >= len(a.args) {
		return Undefined()
	}
	return a.args[i]
}

// Length returns the number of arguments actually passed.
func (a CallbackArgs) Length() int { return len(a.args) }

// Data returns the per-registration associated data, or undefined.
func (a CallbackArgs) Data() *Value {
	if a.data == nil {
		return Undefined()
	}
	return a.data
}

// ReturnValue is the callback's return sink. Until Set is called it holds
// the engine's default sentinel (undefined).
type ReturnValue struct {
	v   *Value
	set bool
}

// Set stores the callback result.
func (rv *ReturnValue) Set(v *Value) {
	rv.v = v
	rv.set = true
}

// Get returns the stored result, or undefined when the sink was left
// untouched.
func (rv *ReturnValue) Get() *Value {
	if !rv.set {
		return Undefined()
	}
	return rv.v
}

// IsSet reports whether the sink was explicitly written.
func (rv *ReturnValue) IsSet() bool { return rv.set }
