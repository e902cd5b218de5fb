package level

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nathoo/leveldesc/types"
)

// ArraySeparator separates the elements of a composite value.
const ArraySeparator = ";"

// AsArray splits the text on ';' into child parameters named "name[i]".
// Pieces are trimmed and empty pieces dropped; i counts surviving pieces.
// The split happens once per parameter.
func (p *Param) AsArray() ([]*Param, error) {
	if p.absent {
		return nil, p.missing()
	}
	p.once.Do(p.decompose)
	return p.array, nil
}

// AsArrayOr returns def if the parameter is absent.
func (p *Param) AsArrayOr(def []*Param) ([]*Param, error) {
	return orDefault(p, def, p.AsArray)
}

func (p *Param) decompose() {
	for _, piece := range strings.Split(p.value, ArraySeparator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		child := newParam(fmt.Sprintf("%s[%d]", p.name, len(p.array)), piece)
		child.line = p.line
		p.array = append(p.array, child)
	}
}

// floats coerces every element of the array as float. Failures are reported
// against the parent with the parent's type name.
func (p *Param) floats(typeName string) ([]float64, error) {
	elems, err := p.AsArray()
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(elems))
	for i, e := range elems {
		f, err := e.AsFloat()
		if err != nil {
			return nil, p.bad(typeName, err)
		}
		vals[i] = f
	}
	return vals, nil
}

// AsColor accepts #RRGGBB, #RRGGBBAA, or a 3 or 4 element list. Lists
// written in the 0..255 convention (any channel above 1) are scaled down.
// A missing alpha is 1.
func (p *Param) AsColor() (types.Color, error) {
	if p.absent {
		return types.Color{}, p.missing()
	}
	if strings.HasPrefix(p.value, "#") {
		c, err := parseHexColor(p.value)
		if err != nil {
			return types.Color{}, p.bad("color", err)
		}
		return c, nil
	}

	vals, err := p.floats("color")
	if err != nil {
		return types.Color{}, err
	}
	if len(vals) != 3 && len(vals) != 4 {
		return types.Color{}, p.bad("color", fmt.Errorf("expected 3 or 4 elements, got %d", len(vals)))
	}
	scale := 1.0
	for _, v := range vals {
		if v > 1.0 {
			scale = 255.0
			break
		}
	}
	c := types.Color{R: vals[0] / scale, G: vals[1] / scale, B: vals[2] / scale, A: 1.0}
	if len(vals) == 4 {
		c.A = vals[3] / scale
	}
	return c, nil
}

// AsColorOr returns def if the parameter is absent.
func (p *Param) AsColorOr(def types.Color) (types.Color, error) {
	return orDefault(p, def, p.AsColor)
}

func parseHexColor(s string) (types.Color, error) {
	if len(s) != 7 && len(s) != 9 {
		return types.Color{}, fmt.Errorf("hex color must be #RRGGBB or #RRGGBBAA, got %d characters", len(s))
	}
	rgb, err := colorful.Hex(s[:7])
	if err != nil {
		return types.Color{}, err
	}
	// Bytes over 255, exactly as in the list form.
	r, g, b := rgb.RGB255()
	c := types.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0, A: 1.0}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return types.Color{}, err
		}
		c.A = float64(a) / 255.0
	}
	return c, nil
}

// AsPoint reads a two element list.
func (p *Param) AsPoint() (types.Point, error) {
	if p.absent {
		return types.Point{}, p.missing()
	}
	vals, err := p.floats("point")
	if err != nil {
		return types.Point{}, err
	}
	if len(vals) != 2 {
		return types.Point{}, p.bad("point", fmt.Errorf("expected 2 elements, got %d", len(vals)))
	}
	return types.Point{X: vals[0], Y: vals[1]}, nil
}

// AsPointOr returns def if the parameter is absent.
func (p *Param) AsPointOr(def types.Point) (types.Point, error) {
	return orDefault(p, def, p.AsPoint)
}

// AsVec3 reads "x;z" as (x, 0, z) and "x;y;z" as (x, y, z).
func (p *Param) AsVec3() (types.Vec3, error) {
	if p.absent {
		return types.Vec3{}, p.missing()
	}
	vals, err := p.floats("vec3")
	if err != nil {
		return types.Vec3{}, err
	}
	switch len(vals) {
	case 2:
		return types.Vec3{X: vals[0], Y: 0, Z: vals[1]}, nil
	case 3:
		return types.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
	default:
		return types.Vec3{}, p.bad("vec3", fmt.Errorf("expected 2 or 3 elements, got %d", len(vals)))
	}
}

// AsVec3Or returns def if the parameter is absent.
func (p *Param) AsVec3Or(def types.Vec3) (types.Vec3, error) {
	return orDefault(p, def, p.AsVec3)
}

// NewArray composes a parameter from ordered children. Its text is the
// children's text joined with ';'. Children are renamed "name[i]".
func NewArray(name string, children ...*Param) *Param {
	p := newParam(name, "")
	p.once.Do(func() {})
	vals := make([]string, len(children))
	for i, c := range children {
		c.name = fmt.Sprintf("%s[%d]", name, i)
		vals[i] = c.value
	}
	p.array = children
	p.value = strings.Join(vals, ArraySeparator)
	return p
}

// NewColor writes r;g;b, with a fourth element only when alpha is not 1.
func NewColor(name string, c types.Color) *Param {
	children := []*Param{
		NewFloat("", c.R),
		NewFloat("", c.G),
		NewFloat("", c.B),
	}
	if c.A != 1.0 {
		children = append(children, NewFloat("", c.A))
	}
	return NewArray(name, children...)
}

// NewPoint writes x;y.
func NewPoint(name string, pt types.Point) *Param {
	return NewArray(name, NewFloat("", pt.X), NewFloat("", pt.Y))
}

// NewVec3 writes x;y;z.
func NewVec3(name string, v types.Vec3) *Param {
	return NewArray(name, NewFloat("", v.X), NewFloat("", v.Y), NewFloat("", v.Z))
}
