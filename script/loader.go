// Package script runs Lua programs against a stack through the gopher-lua virtual machine.
package script

import (
	"sync"

	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/util"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// Load executes a Lua script within the provided LState, reusing a compiled prototype when the path was seen before.
func Load(L *lua.LState, path string) error {
	if cached, exists := bytecodeCache.Load(path); exists {
		L.Push(L.NewFunctionFromProto(cached.(*lua.FunctionProto)))
		return L.PCall(0, lua.MultRet, nil)
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer util.Ignore(file.Close)

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return err
	}

	bytecodeCache.Store(path, proto)

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Forget drops the compiled prototype of path so the next Load reads it again.
func Forget(path string) {
	bytecodeCache.Delete(path)
}
