package level

import (
	"fmt"
	"sort"
	"strings"
)

// Line is one command of a level file with its named arguments.
type Line struct {
	Command string

	file   *File
	number int
	params map[string]*Param
}

// NewLine creates an empty line for writing.
func NewLine(command string) *Line {
	return &Line{Command: command, params: map[string]*Param{}}
}

// Filename returns the name of the file the line was read from, if any.
func (l *Line) Filename() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name
}

// Number returns the 1-based source line number, or 0 for constructed lines.
func (l *Line) Number() int { return l.number }

// File returns the owning file, or nil.
func (l *Line) File() *File { return l.file }

// Param looks a parameter up by name. It never fails: an unknown name yields
// an absent parameter bound to this line, so that the error is raised by the
// accessor with this line's location.
func (l *Line) Param(name string) *Param {
	if p, ok := l.params[name]; ok {
		return p
	}
	return &Param{name: name, absent: true, line: l}
}

// Has reports whether the named parameter is present.
func (l *Line) Has(name string) bool {
	_, ok := l.params[name]
	return ok
}

// Set adds or replaces a parameter. The last write for a name wins.
func (l *Line) Set(p *Param) {
	if l.params == nil {
		l.params = map[string]*Param{}
	}
	p.attach(l)
	l.params[p.name] = p
}

// Delete removes a parameter. It reports whether one was removed.
func (l *Line) Delete(name string) bool {
	if _, ok := l.params[name]; !ok {
		return false
	}
	delete(l.params, name)
	return true
}

// Len returns the number of parameters.
func (l *Line) Len() int { return len(l.params) }

// Params returns the parameters sorted by name.
func (l *Line) Params() []*Param {
	names := l.Names()
	out := make([]*Param, len(names))
	for i, n := range names {
		out[i] = l.params[n]
	}
	return out
}

// Names returns the parameter names in sorted order.
func (l *Line) Names() []string {
	names := make([]string, 0, len(l.params))
	for n := range l.params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Unused returns, sorted, the names present on the line that are not in known.
func (l *Line) Unused(known map[string]bool) []string {
	var out []string
	for _, n := range l.Names() {
		if !known[n] {
			out = append(out, n)
		}
	}
	return out
}

// UnusedError returns a BadParamError for the first name present on the
// line that is not in known, or nil.
func (l *Line) UnusedError(known map[string]bool) error {
	unused := l.Unused(known)
	if len(unused) == 0 {
		return nil
	}
	return &BadParamError{
		Param:  unused[0],
		File:   l.Filename(),
		Line:   l.number,
		Value:  l.params[unused[0]].value,
		Unused: true,
	}
}

// Check reports whether the line's text reads back to the same command and
// parameters. It returns a *WriteError naming the first offending parameter.
func (l *Line) Check() error {
	back, err := ParseLine(l.Command)
	if err != nil || back.Command != l.Command || back.Len() != 0 {
		reason := "not a single word"
		if err != nil {
			reason = err.Error()
		}
		return &WriteError{Command: l.Command, Reason: reason}
	}
	for _, p := range l.Params() {
		if strings.ContainsAny(p.value, "\r\n") {
			return &WriteError{Command: l.Command, Param: p.name, Value: p.value, Reason: "line break in value"}
		}
		back, err := ParseLine(l.Command + " " + p.name + "=" + p.value)
		if err != nil {
			return &WriteError{Command: l.Command, Param: p.name, Value: p.value, Reason: err.Error()}
		}
		if back.Len() != 1 || !back.Has(p.name) || back.Param(p.name).value != p.value {
			return &WriteError{Command: l.Command, Param: p.name, Value: p.value,
				Reason: fmt.Sprintf("reads back as %q", back.String())}
		}
	}
	return nil
}

// String renders the line as "Command k1=v1 k2=v2" with names sorted.
func (l *Line) String() string {
	var b strings.Builder
	b.WriteString(l.Command)
	for _, p := range l.Params() {
		b.WriteByte(' ')
		b.WriteString(p.name)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}
