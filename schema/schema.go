// Package schema reads and writes configuration structs from level lines.
//
// A Schema lists, once, which parameter feeds which struct member. Reading
// starts from the values already in the struct, so anything not written on
// the line keeps its current value; writing emits only the members that
// differ from the schema's default.
package schema

import (
	"errors"
	"fmt"

	"github.com/nathoo/leveldesc/level"
)

// ErrWrongCommand is returned when a line is read against the schema of a
// different command.
var ErrWrongCommand = errors.New("wrong command")

// Schema describes how a T is stored on a line.
type Schema[T any] struct {
	command string
	def     T
	fields  []Field[T]
	known   map[string]bool
}

// New creates a schema. def is copied and never modified. New panics if two
// fields share a name.
func New[T any](command string, def T, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		command: command,
		def:     def,
		fields:  fields,
		known:   make(map[string]bool, len(fields)),
	}
	for _, f := range fields {
		if s.known[f.Name()] {
			panic(fmt.Sprintf("schema %s: duplicate field %q", command, f.Name()))
		}
		s.known[f.Name()] = true
	}
	return s
}

// Command returns the command the schema reads and writes.
func (s *Schema[T]) Command() string { return s.command }

// Default returns a copy of the default value.
func (s *Schema[T]) Default() T { return s.def }

// Names returns the parameter names in declaration order.
func (s *Schema[T]) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name()
	}
	return out
}

// Known reports whether name is a parameter of the schema.
func (s *Schema[T]) Known(name string) bool { return s.known[name] }

// Read updates v from the line. Parameters missing from the line keep the
// value already in v. A parameter the schema does not know is an error. On
// error v is left unchanged.
func (s *Schema[T]) Read(l *level.Line, v *T) error {
	if l.Command != s.command {
		return fmt.Errorf("%w: got %q, want %q", ErrWrongCommand, l.Command, s.command)
	}
	tmp := *v
	for _, f := range s.fields {
		if err := f.read(l, &tmp); err != nil {
			return err
		}
	}
	if err := l.UnusedError(s.known); err != nil {
		return err
	}
	*v = tmp
	return nil
}

// Decode reads the line on top of a fresh default.
func (s *Schema[T]) Decode(l *level.Line) (T, error) {
	v := s.def
	if err := s.Read(l, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Write returns a line holding the members of v that differ from the
// default, or nil if none do.
func (s *Schema[T]) Write(v T) *level.Line {
	l := s.Line(v)
	if l.Len() == 0 {
		return nil
	}
	return l
}

// Line is like Write but always returns a line, possibly with no
// parameters. Repeated entries such as object placements use it.
func (s *Schema[T]) Line(v T) *level.Line {
	l := level.NewLine(s.command)
	def := s.def
	for _, f := range s.fields {
		f.write(l, &v, &def)
	}
	return l
}
