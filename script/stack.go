package script

import (
	"errors"
	"fmt"
	"strings"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/log"
	"github.com/xpslvs/stackr/word"
	lua "github.com/yuin/gopher-lua"
)

// RunError is returned when a script fails. Cause holds the stack error raised from Go, if any.
type RunError struct {
	Path  string
	Err   error
	Cause error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("script %s: %s", e.Path, e.Err)
}

func (e *RunError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Cause, e.Err}
}

// binding exposes a stack and a dictionary to a Lua state.
type binding struct {
	stack *word.Stack
	dict  *word.Dictionary

	// last error raised from Go into Lua, possibly already caught by the script
	err error
}

// Run executes the Lua script at path with the global stack table bound to s.
func Run(path string, s *word.Stack, d *word.Dictionary) error {
	L := lua.NewState()
	defer L.Close()

	libs.Preload(L)

	b := &binding{stack: s, dict: d}
	L.SetGlobal(constant.ScriptStackGlobal, b.module(L))

	log.Infof("running script %s", path)
	if err := Load(L, path); err != nil {
		return &RunError{Path: path, Err: err, Cause: b.cause(err)}
	}
	return nil
}

// cause returns the stack error behind err, or nil when the script failed for another reason.
func (b *binding) cause(err error) error {
	var apiErr *lua.ApiError
	if b.err == nil || !errors.As(err, &apiErr) || apiErr.Object == nil {
		return nil
	}
	if !strings.HasSuffix(apiErr.Object.String(), b.err.Error()) {
		return nil
	}
	return b.err
}

func (b *binding) module(L *lua.LState) *lua.LTable {
	tbl := L.NewTable()
	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"push":    b.push,
		"pop":     b.pop,
		"peek":    b.peek,
		"pick":    b.depthOp(b.stack.Pick),
		"roll":    b.depthOp(b.stack.Roll),
		"dup":     b.op(b.stack.Dup),
		"drop":    b.op(b.stack.Drop),
		"swap":    b.op(b.stack.Swap),
		"over":    b.op(b.stack.Over),
		"rot":     b.op(b.stack.Rot),
		"nip":     b.op(b.stack.Nip),
		"tuck":    b.op(b.stack.Tuck),
		"clear":   b.clear,
		"len":     b.len,
		"cap":     b.cap,
		"realloc": b.realloc,
		"items":   b.items,
		"word":    b.word,
	})
	return tbl
}

// raise reports err to the running script as a Lua error.
func (b *binding) raise(L *lua.LState, err error) int {
	b.err = err
	L.RaiseError("%s", err.Error())
	return 0
}

func (b *binding) op(fn func() error) lua.LGFunction {
	return func(L *lua.LState) int {
		if err := fn(); err != nil {
			return b.raise(L, err)
		}
		return 0
	}
}

func (b *binding) depthOp(fn func(n int) error) lua.LGFunction {
	return func(L *lua.LState) int {
		if err := fn(L.CheckInt(1)); err != nil {
			return b.raise(L, err)
		}
		return 0
	}
}

func (b *binding) push(L *lua.LState) int {
	if err := b.stack.Push(float64(L.CheckNumber(1))); err != nil {
		return b.raise(L, err)
	}
	return 0
}

func (b *binding) pop(L *lua.LState) int {
	x, err := b.stack.Pop()
	if err != nil {
		return b.raise(L, err)
	}
	L.Push(lua.LNumber(x))
	return 1
}

func (b *binding) peek(L *lua.LState) int {
	x, err := b.stack.Peek()
	if err != nil {
		return b.raise(L, err)
	}
	L.Push(lua.LNumber(x))
	return 1
}

func (b *binding) clear(L *lua.LState) int {
	b.stack.Clear()
	return 0
}

func (b *binding) len(L *lua.LState) int {
	L.Push(lua.LNumber(b.stack.Len()))
	return 1
}

func (b *binding) cap(L *lua.LState) int {
	L.Push(lua.LNumber(b.stack.Cap()))
	return 1
}

func (b *binding) realloc(L *lua.LState) int {
	n := L.CheckInt(1)
	if err := word.CheckCapacity(n); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	b.stack.Reallocate(n)
	return 0
}

func (b *binding) items(L *lua.LState) int {
	tbl := L.NewTable()
	for _, x := range b.stack.Items() {
		tbl.Append(lua.LNumber(x))
	}
	L.Push(tbl)
	return 1
}

func (b *binding) word(L *lua.LState) int {
	name := L.CheckString(1)
	w, ok := b.dict.Lookup(name).Get()
	if !ok {
		L.ArgError(1, "unknown word "+name)
		return 0
	}
	if err := w.Fn(b.stack); err != nil {
		return b.raise(L, err)
	}
	return 0
}
