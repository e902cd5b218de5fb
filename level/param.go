package level

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// ErrNoPathContext is wrapped by AsPath when a path uses the %lvl% macro but
// the owning file has no PathExpander attached.
var ErrNoPathContext = errors.New("no level path context for %lvl%")

// Param is one named argument of a Line. It stores only raw text; every
// accessor re-parses it, so reads are side-effect free. The one piece of
// state is the memoized array decomposition, fixed by the first AsArray.
type Param struct {
	name   string
	value  string
	absent bool
	line   *Line

	once  sync.Once
	array []*Param
}

func newParam(name, value string) *Param {
	return &Param{name: name, value: value}
}

// NewRaw creates a parameter holding text exactly as it should appear in the
// file. Quoting is the caller's business.
func NewRaw(name, value string) *Param {
	return newParam(name, value)
}

// Name returns the parameter name.
func (p *Param) Name() string { return p.name }

// Value returns the raw text of the parameter.
func (p *Param) Value() string { return p.value }

// IsDefined reports whether the parameter was written on the line.
func (p *Param) IsDefined() bool { return !p.absent }

// Line returns the owning line, or nil for a detached parameter.
func (p *Param) Line() *Line { return p.line }

func (p *Param) attach(l *Line) {
	p.line = l
	for _, c := range p.array {
		c.attach(l)
	}
}

func (p *Param) source() (string, int) {
	if p.line == nil {
		return "", 0
	}
	return p.line.Filename(), p.line.Number()
}

func (p *Param) missing() error {
	file, n := p.source()
	return &MissingParamError{Param: p.name, File: file, Line: n}
}

func (p *Param) bad(expected string, err error) error {
	file, n := p.source()
	return &BadParamError{
		Param:    p.name,
		File:     file,
		Line:     n,
		Expected: expected,
		Value:    p.value,
		Err:      err,
	}
}

// orDefault implements every AsTOr accessor: absence yields def, presence
// delegates to the strict form so malformed text is still reported.
func orDefault[T any](p *Param, def T, strict func() (T, error)) (T, error) {
	if p.absent {
		return def, nil
	}
	return strict()
}

// AsInt parses the whole text as a base-10 integer.
func (p *Param) AsInt() (int, error) {
	if p.absent {
		return 0, p.missing()
	}
	n, err := strconv.Atoi(p.value)
	if err != nil {
		return 0, p.bad("int", err)
	}
	return n, nil
}

// AsIntOr returns def if the parameter is absent.
func (p *Param) AsIntOr(def int) (int, error) {
	return orDefault(p, def, p.AsInt)
}

// AsFloat parses the whole text as a floating point number.
func (p *Param) AsFloat() (float64, error) {
	if p.absent {
		return 0, p.missing()
	}
	f, err := strconv.ParseFloat(p.value, 64)
	if err != nil {
		return 0, p.bad("float", err)
	}
	return f, nil
}

// AsFloatOr returns def if the parameter is absent.
func (p *Param) AsFloatOr(def float64) (float64, error) {
	return orDefault(p, def, p.AsFloat)
}

// AsBool accepts true/false in any case, and otherwise any integer where
// nonzero means true. "2" is true.
func (p *Param) AsBool() (bool, error) {
	if p.absent {
		return false, p.missing()
	}
	switch strings.ToLower(p.value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	n, err := strconv.Atoi(p.value)
	if err != nil {
		return false, p.bad("bool", err)
	}
	return n != 0, nil
}

// AsBoolOr returns def if the parameter is absent.
func (p *Param) AsBoolOr(def bool) (bool, error) {
	return orDefault(p, def, p.AsBool)
}

// AsString returns the text between one matching pair of " or ' quotes.
func (p *Param) AsString() (string, error) {
	if p.absent {
		return "", p.missing()
	}
	s, ok := unquote(p.value)
	if !ok {
		return "", p.bad("string", nil)
	}
	return s, nil
}

// AsStringOr returns def if the parameter is absent.
func (p *Param) AsStringOr(def string) (string, error) {
	return orDefault(p, def, p.AsString)
}

// AsPath reads a string and expands the %lvl% macro through the owning
// file's PathExpander.
func (p *Param) AsPath() (string, error) {
	s, err := p.AsString()
	if err != nil {
		if errors.Is(err, ErrBadParam) {
			return "", p.bad("path", nil)
		}
		return "", err
	}
	var exp PathExpander
	if p.line != nil && p.line.file != nil {
		exp = p.line.file.Paths
	}
	if exp == nil {
		if strings.Contains(s, LevelMacro) {
			return "", p.bad("path", ErrNoPathContext)
		}
		return s, nil
	}
	expanded, err := exp.ExpandPath(s)
	if err != nil {
		return "", p.bad("path", err)
	}
	return expanded, nil
}

// AsPathOr returns def if the parameter is absent.
func (p *Param) AsPathOr(def string) (string, error) {
	return orDefault(p, def, p.AsPath)
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return "", false
	}
	return inner, true
}
