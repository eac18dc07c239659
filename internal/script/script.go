// Package script evaluates Lua-defined snippet replacements. Each
// evaluation runs in a fresh, sandboxed interpreter state: only the base,
// table, string, and math libraries are opened, so chunks cannot touch the
// filesystem or the network, and a deadline bounds runaway scripts.
package script

import (
	"context"
	"errors"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ReplacementFunc is the global a chunk must define. It receives the
// matched text and a table of capture strings and returns the replacement.
const ReplacementFunc = "replacement"

// DefaultTimeout bounds one evaluation.
const DefaultTimeout = 50 * time.Millisecond

var (
	// ErrNoFunction means the chunk did not define the replacement
	// function.
	ErrNoFunction = errors.New("script: chunk does not define replacement")
	// ErrNotString means the replacement function returned a non-string.
	ErrNotString = errors.New("script: replacement did not return a string")
)

// Evaluator runs replacement chunks. The zero value is not usable; use New.
type Evaluator struct {
	timeout time.Duration
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTimeout overrides the per-evaluation deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval runs source in a fresh sandboxed state and calls its replacement
// function with the matched text and captures.
func (e *Evaluator) Eval(source, match string, captures []string) (string, error) {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer state.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		state.Push(state.NewFunction(lib.open))
		state.Push(lua.LString(lib.name))
		state.Call(1, 0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	state.SetContext(ctx)

	if err := state.DoString(source); err != nil {
		return "", err
	}

	fn := state.GetGlobal(ReplacementFunc)
	if fn.Type() != lua.LTFunction {
		return "", ErrNoFunction
	}

	captureTable := state.NewTable()
	for _, c := range captures {
		captureTable.Append(lua.LString(c))
	}
	if err := state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(match), captureTable); err != nil {
		return "", err
	}

	ret := state.Get(-1)
	state.Pop(1)
	out, ok := ret.(lua.LString)
	if !ok {
		return "", ErrNotString
	}
	return string(out), nil
}
