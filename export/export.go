// Package export renders level files as JSON for external tools.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nathoo/leveldesc/level"
)

// ErrNoMatch is returned by Query when the path selects nothing.
var ErrNoMatch = errors.New("no match")

// JSON renders f as
//
//	{"file": name, "lines": [{"command": c, "line": n, "params": {k: raw}}]}
//
// Parameter values are the raw text as written in the file.
func JSON(f *level.File) (string, error) {
	doc, err := sjson.Set("", "file", f.Name)
	if err != nil {
		return "", err
	}
	if doc, err = sjson.SetRaw(doc, "lines", "[]"); err != nil {
		return "", err
	}

	for i, l := range f.Lines {
		obj, err := lineJSON(l)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if doc, err = sjson.SetRaw(doc, "lines.-1", obj); err != nil {
			return "", err
		}
	}
	return doc, nil
}

func lineJSON(l *level.Line) (string, error) {
	obj, err := sjson.Set("", "command", l.Command)
	if err != nil {
		return "", err
	}
	if obj, err = sjson.Set(obj, "line", l.Number()); err != nil {
		return "", err
	}
	if obj, err = sjson.SetRaw(obj, "params", "{}"); err != nil {
		return "", err
	}
	for _, p := range l.Params() {
		if obj, err = sjson.Set(obj, "params."+escapeKey(p.Name()), p.Value()); err != nil {
			return "", fmt.Errorf("parameter %q: %w", p.Name(), err)
		}
	}
	return obj, nil
}

// Pretty indents a JSON document.
func Pretty(doc string) string {
	return gjson.Get(doc, "@pretty").Raw
}

// Query evaluates a gjson path against doc. Objects and arrays come back as
// JSON, scalars as their string form.
func Query(doc, path string) (string, error) {
	if !gjson.Valid(doc) {
		return "", fmt.Errorf("invalid JSON document")
	}
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return "", fmt.Errorf("%w for %q", ErrNoMatch, path)
	}
	if r.IsObject() || r.IsArray() {
		return r.Raw, nil
	}
	return r.String(), nil
}

// escapeKey escapes the characters that have meaning in a path.
func escapeKey(k string) string {
	var b strings.Builder
	for _, r := range k {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
