package luagen

import (
	"log/slog"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/leveldesc/level"
)

// rawLiteral is written to the file without quotes.
type rawLiteral string

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector, logger *slog.Logger) {
	// Line("Command", { key = value, ... })
	L.SetGlobal("Line", L.NewFunction(func(L *lua.LState) int {
		cmd := L.CheckString(1)
		if cmd == "" || strings.ContainsAny(cmd, " \t=\"'") {
			L.ArgError(1, "invalid command name")
		}
		tbl := L.OptTable(2, L.NewTable())
		coll.lines = append(coll.lines, rawLine{command: cmd, table: tbl, where: L.Where(1)})
		return 0
	}))

	// Raw("Derrick") for unquoted literals.
	L.SetGlobal("Raw", L.NewFunction(func(L *lua.LState) int {
		L.Push(newRaw(L, L.CheckString(1)))
		return 1
	}))

	// Object("Derrick") is Raw restricted to known object types.
	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if _, err := level.NewRaw("object", name).AsObjectType(); err != nil {
			L.ArgError(1, "unknown object type "+name)
		}
		L.Push(newRaw(L, name))
		return 1
	}))

	// Color(r, g, b [, a])
	L.SetGlobal("Color", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		for i := 1; i <= 3; i++ {
			tbl.Append(L.CheckNumber(i))
		}
		if L.GetTop() >= 4 {
			tbl.Append(L.CheckNumber(4))
		}
		L.Push(tbl)
		return 1
	}))

	// Vec(x, y [, z]). Two components mean x and z.
	L.SetGlobal("Vec", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.Append(L.CheckNumber(1))
		tbl.Append(L.CheckNumber(2))
		if L.GetTop() >= 3 {
			tbl.Append(L.CheckNumber(3))
		}
		L.Push(tbl)
		return 1
	}))

	// Point(x, y)
	L.SetGlobal("Point", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.Append(L.CheckNumber(1))
		tbl.Append(L.CheckNumber(2))
		L.Push(tbl)
		return 1
	}))

	// print goes to the log rather than stdout.
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		logger.Info(strings.Join(parts, "\t"), "where", L.Where(1))
		return 0
	}))
}

func newRaw(L *lua.LState, s string) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = rawLiteral(s)
	return ud
}
