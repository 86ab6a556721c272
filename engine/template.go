package engine

// FuncTemplate is a dual-path bindable callable: the interpreted callback
// plus, optionally, a direct-call entry point with its ABI descriptor and
// per-registration associated data.
type FuncTemplate struct {
	name     string
	callback Callback
	data     *Value
	fastInfo *FastCallInfo
	fastFn   any
}

// NewFuncTemplate builds a template around the interpreted callback.
func NewFuncTemplate(name string, cb Callback) *FuncTemplate {
	return &FuncTemplate{name: name, callback: cb}
}

// WithData attaches per-registration associated data, readable from the
// callback through CallbackArgs.Data.
func (t *FuncTemplate) WithData(v *Value) *FuncTemplate {
	t.data = v
	return t
}

// WithFastCall attaches the direct-call pair. fn must be the typed fast
// function matching info; the engine checks the descriptor, not fn.
func (t *FuncTemplate) WithFastCall(info FastCallInfo, fn any) *FuncTemplate {
	t.fastInfo = &info
	t.fastFn = fn
	return t
}

// Name returns the engine-side binding name.
func (t *FuncTemplate) Name() string { return t.name }

// Callback returns the interpreted-path callback.
func (t *FuncTemplate) Callback() Callback { return t.callback }

// Data returns the associated data, or undefined.
func (t *FuncTemplate) Data() *Value {
	if t.data == nil {
		return Undefined()
	}
	return t.data
}

// FastCall returns the direct-call descriptor and function. ok is false
// for slow-only templates.
func (t *FuncTemplate) FastCall() (info FastCallInfo, fn any, ok bool) {
	if t.fastInfo == nil {
		return FastCallInfo{}, nil, false
	}
	return *t.fastInfo, t.fastFn, true
}

// FastOptions builds the per-call options the direct-call protocol would
// hand to this template's fast function.
func (t *FuncTemplate) FastOptions() *FastOptions {
	return &FastOptions{Data: t.Data()}
}

// Call drives the interpreted path the way the engine would: fresh return
// sink, associated data wired in, pending exception reported as the
// second result.
func (t *FuncTemplate) Call(scope *Scope, args ...*Value) (*Value, *Value) {
	rv := &ReturnValue{}
	t.callback(scope, NewCallbackArgs(t.data, args...), rv)
	if scope.HasException() {
		return nil, scope.TakeException()
	}
	return rv.Get(), nil
}
