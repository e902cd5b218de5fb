// Package inspect evaluates inspector commands against a loaded level file.
// The plain CLI and the TUI share it.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/export"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/scene"
)

// Errors returned in Result.Err.
var (
	ErrUnknownVerb = errors.New("unknown command")
	ErrUsage       = errors.New("usage")
	ErrNoLine      = errors.New("no such line")
)

// Result is the output of one command.
type Result struct {
	Output []string
	Err    error
}

// Session holds the file being inspected.
type Session struct {
	File  *level.File
	Dirty bool
}

// NewSession starts a session on f.
func NewSession(f *level.File) *Session {
	return &Session{File: f}
}

// Exec runs one command.
func (s *Session) Exec(ctx context.Context, input string) Result {
	cmd := Parse(input)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Inspector command.", "verb", cmd.Verb, "args", cmd.Rest)

	switch cmd.Verb {
	case "":
		return Result{}
	case "list":
		return s.list(cmd.Rest)
	case "show":
		return s.show(cmd.Rest)
	case "get":
		return s.get(cmd.Rest)
	case "set":
		return s.set(cmd.Rest)
	case "del":
		return s.del(cmd.Rest)
	case "check":
		return s.check(ctx)
	case "json":
		return s.json(cmd.Rest)
	case "help":
		return Result{Output: helpText()}
	default:
		return Result{Err: fmt.Errorf("%w %q (try help)", ErrUnknownVerb, cmd.Verb)}
	}
}

func helpText() []string {
	return []string{
		"list [command]               list lines, optionally one command (ls, l)",
		"show <n>                     show a line's parameters (x)",
		"get <n> <param> <type>       read a parameter as a type (g)",
		"set <n> <param> <text>       replace a parameter's raw text",
		"del <n> <param>              remove a parameter (rm)",
		"check                        read and validate the whole file",
		"json [path]                  export as JSON, optionally queried",
		"types: " + strings.Join(TypeNames(), " "),
	}
}

// line resolves a 1-based index.
func (s *Session) line(arg string) (*level.Line, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: line index %q is not a number", ErrNoLine, arg)
	}
	if n < 1 || n > len(s.File.Lines) {
		return nil, fmt.Errorf("%w: %d (file has %d)", ErrNoLine, n, len(s.File.Lines))
	}
	return s.File.Lines[n-1], nil
}

func (s *Session) list(filter string) Result {
	var out []string
	for i, l := range s.File.Lines {
		if filter != "" && l.Command != filter {
			continue
		}
		out = append(out, fmt.Sprintf("%3d  %s", i+1, l))
	}
	if len(out) == 0 {
		out = []string{"(no lines)"}
	}
	return Result{Output: out}
}

func (s *Session) show(rest string) Result {
	args := splitArgs(rest, 1)
	if len(args) != 1 {
		return Result{Err: fmt.Errorf("%w: show <n>", ErrUsage)}
	}
	l, err := s.line(args[0])
	if err != nil {
		return Result{Err: err}
	}

	out := []string{fmt.Sprintf("%s  (%s:%d)", l.Command, l.Filename(), l.Number())}
	fields := scene.Fields(l.Command)
	known := map[string]bool{}
	for _, f := range fields {
		known[f] = true
	}
	for _, p := range l.Params() {
		mark := ""
		if fields != nil && !known[p.Name()] {
			mark = "  (unused)"
		}
		out = append(out, fmt.Sprintf("  %s = %s%s", p.Name(), p.Value(), mark))
	}
	for _, f := range fields {
		if !l.Has(f) {
			out = append(out, fmt.Sprintf("  %s   (default)", f))
		}
	}
	return Result{Output: out}
}

func (s *Session) get(rest string) Result {
	args := splitArgs(rest, 3)
	if len(args) != 3 {
		return Result{Err: fmt.Errorf("%w: get <n> <param> <type>", ErrUsage)}
	}
	l, err := s.line(args[0])
	if err != nil {
		return Result{Err: err}
	}
	p := l.Param(args[1])
	typ := strings.ToLower(args[2])

	if typ == "array" {
		elems, err := p.AsArray()
		if err != nil {
			return Result{Err: err}
		}
		out := make([]string, len(elems))
		for i, e := range elems {
			out[i] = fmt.Sprintf("%s = %s", e.Name(), e.Value())
		}
		return Result{Output: out}
	}

	get, ok := getters[typ]
	if !ok {
		return Result{Err: fmt.Errorf("%w: unknown type %q (one of %s)", ErrUsage, typ, strings.Join(TypeNames(), ", "))}
	}
	v, err := get(p)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Output: []string{v}}
}

func (s *Session) set(rest string) Result {
	args := splitArgs(rest, 3)
	if len(args) != 3 {
		return Result{Err: fmt.Errorf("%w: set <n> <param> <text>", ErrUsage)}
	}
	l, err := s.line(args[0])
	if err != nil {
		return Result{Err: err}
	}
	name, text := args[1], args[2]

	var prev *level.Param
	if l.Has(name) {
		prev = l.Param(name)
	}
	wasValid := scene.CheckLine(l) == nil
	l.Set(level.NewRaw(name, text))

	// Reject text that would not survive a save, and edits that break a
	// line that used to read cleanly.
	err = l.Check()
	if err == nil && wasValid {
		err = scene.CheckLine(l)
	}
	if err != nil {
		if prev != nil {
			l.Set(prev)
		} else {
			l.Delete(name)
		}
		return Result{Err: err}
	}
	s.Dirty = true
	return Result{Output: []string{l.String()}}
}

func (s *Session) del(rest string) Result {
	args := splitArgs(rest, 2)
	if len(args) != 2 {
		return Result{Err: fmt.Errorf("%w: del <n> <param>", ErrUsage)}
	}
	l, err := s.line(args[0])
	if err != nil {
		return Result{Err: err}
	}
	prev := l.Param(args[1])
	wasValid := scene.CheckLine(l) == nil
	if !l.Delete(args[1]) {
		return Result{Err: fmt.Errorf("line %s has no parameter %q", args[0], args[1])}
	}
	if err := scene.CheckLine(l); err != nil && wasValid {
		l.Set(prev)
		return Result{Err: err}
	}
	s.Dirty = true
	return Result{Output: []string{l.String()}}
}

func (s *Session) check(ctx context.Context) Result {
	sc, err := scene.Read(ctx, s.File)
	if err != nil {
		return Result{Err: err}
	}
	ve := scene.Check(sc)

	var out []string
	for _, e := range ve.Errors {
		out = append(out, "error: "+e)
	}
	for _, w := range ve.Warnings {
		out = append(out, "warning: "+w)
	}
	if len(ve.Errors) > 0 {
		return Result{Output: out, Err: ve}
	}
	out = append(out, fmt.Sprintf("ok: %d lines, %d objects", len(s.File.Lines), len(sc.Objects)))
	return Result{Output: out}
}

func (s *Session) json(path string) Result {
	doc, err := export.JSON(s.File)
	if err != nil {
		return Result{Err: err}
	}
	if path == "" {
		return Result{Output: strings.Split(strings.TrimRight(export.Pretty(doc), "\n"), "\n")}
	}
	v, err := export.Query(doc, path)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Output: []string{v}}
}
