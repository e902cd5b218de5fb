package luagen

import (
	"fmt"
	"math"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/leveldesc/level"
)

// rawLine holds a Line() call before compilation.
type rawLine struct {
	command string
	table   *lua.LTable
	where   string
}

// compile converts the collected calls into a file.
func compile(coll *collector, name string) (*level.File, error) {
	f := level.NewFile(name)
	for _, raw := range coll.lines {
		l, err := compileLine(raw)
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", raw.where, raw.command, err)
		}
		f.Add(l)
	}
	f.Renumber()
	return f, nil
}

func compileLine(raw rawLine) (*level.Line, error) {
	l := level.NewLine(raw.command)

	var keys []string
	var bad error
	raw.table.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok && bad == nil {
			bad = fmt.Errorf("parameter names must be strings, got %s", k.Type())
		}
		if ok {
			keys = append(keys, string(ks))
		}
	})
	if bad != nil {
		return nil, bad
	}
	sort.Strings(keys)

	for _, k := range keys {
		p, err := toParam(k, raw.table.RawGetString(k))
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", k, err)
		}
		l.Set(p)
	}
	if err := l.Check(); err != nil {
		return nil, err
	}
	return l, nil
}

// toParam converts one Lua value into a parameter.
func toParam(name string, v lua.LValue) (*level.Param, error) {
	switch val := v.(type) {
	case lua.LBool:
		return level.NewBool(name, bool(val)), nil
	case lua.LNumber:
		f := float64(val)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return level.NewInt(name, int(f)), nil
		}
		return level.NewFloat(name, f), nil
	case lua.LString:
		s := string(val)
		if hasBothQuotes(s) {
			return nil, fmt.Errorf("string contains both quote characters")
		}
		if strings.ContainsAny(s, "\r\n") {
			return nil, fmt.Errorf("string contains a line break")
		}
		return level.NewString(name, s), nil
	case *lua.LUserData:
		if r, ok := val.Value.(rawLiteral); ok {
			return level.NewRaw(name, string(r)), nil
		}
		return nil, fmt.Errorf("unsupported userdata")
	case *lua.LTable:
		n := val.MaxN()
		if n == 0 {
			return nil, fmt.Errorf("expected a non-empty list")
		}
		children := make([]*level.Param, 0, n)
		for i := 1; i <= n; i++ {
			elem := val.RawGetInt(i)
			if _, nested := elem.(*lua.LTable); nested {
				return nil, fmt.Errorf("nested lists are not supported")
			}
			c, err := toParam("", elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			children = append(children, c)
		}
		return level.NewArray(name, children...), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", v.Type())
	}
}

func hasBothQuotes(s string) bool {
	var dq, sq bool
	for _, r := range s {
		switch r {
		case '"':
			dq = true
		case '\'':
			sq = true
		}
	}
	return dq && sq
}
