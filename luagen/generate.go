// Package luagen builds level files from Lua scripts.
//
// A script runs once in a sandboxed VM and emits lines through Line(); the
// VM is discarded afterwards.
package luagen

import (
	"context"
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/level"
)

// collector accumulates lines during script execution.
type collector struct {
	lines []rawLine
}

// Generate runs the Lua script at path.
func Generate(ctx context.Context, path string) (*level.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return GenerateString(ctx, string(src), path)
}

// GenerateString runs a Lua script held in memory. name labels the chunk in
// Lua errors and becomes the name of the returned file.
func GenerateString(ctx context.Context, src, name string) (*level.File, error) {
	logger := ctxlog.FromContext(ctx).With("script", name)

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll, logger)

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	f, err := compile(coll, name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	logger.Debug("Generated level.", "lines", len(f.Lines))
	return f, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Generated levels must be reproducible.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
	}
}
