package level

import (
	"strconv"
	"strings"
)

// NewInt creates an integer parameter.
func NewInt(name string, v int) *Param {
	return newParam(name, strconv.Itoa(v))
}

// NewFloat creates a float parameter using the shortest representation that
// reads back to the same value.
func NewFloat(name string, v float64) *Param {
	return newParam(name, formatFloat(v))
}

// NewBool creates a bool parameter written as true or false.
func NewBool(name string, v bool) *Param {
	return newParam(name, strconv.FormatBool(v))
}

// NewString creates a quoted string parameter. Double quotes are used unless
// the value contains one, in which case single quotes are used.
func NewString(name, v string) *Param {
	return newParam(name, quote(v))
}

// NewPath creates a path parameter. Paths are written as strings and are
// not reverse-substituted.
func NewPath(name, v string) *Param {
	return NewString(name, v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func quote(v string) string {
	if strings.ContainsRune(v, '"') {
		return "'" + v + "'"
	}
	return `"` + v + `"`
}
