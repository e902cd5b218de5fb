package inspect

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/types"
)

// getters renders a parameter coerced to a named type.
var getters = map[string]func(p *level.Param) (string, error){
	"int": func(p *level.Param) (string, error) {
		v, err := p.AsInt()
		return strconv.Itoa(v), err
	},
	"float": func(p *level.Param) (string, error) {
		v, err := p.AsFloat()
		return strconv.FormatFloat(v, 'g', -1, 64), err
	},
	"bool": func(p *level.Param) (string, error) {
		v, err := p.AsBool()
		return strconv.FormatBool(v), err
	},
	"string": func(p *level.Param) (string, error) {
		v, err := p.AsString()
		return strconv.Quote(v), err
	},
	"path": func(p *level.Param) (string, error) {
		return p.AsPath()
	},
	"color": func(p *level.Param) (string, error) {
		v, err := p.AsColor()
		return formatColor(v), err
	},
	"point": func(p *level.Param) (string, error) {
		v, err := p.AsPoint()
		return fmt.Sprintf("(%g, %g)", v.X, v.Y), err
	},
	"vec3": func(p *level.Param) (string, error) {
		v, err := p.AsVec3()
		return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z), err
	},
	"object": func(p *level.Param) (string, error) {
		v, err := p.AsObjectType()
		return enumText(level.NewObjectType("", v), int64(v)), err
	},
	"drive": func(p *level.Param) (string, error) {
		v, err := p.AsDriveType()
		return enumText(level.NewDriveType("", v), int64(v)), err
	},
	"tool": func(p *level.Param) (string, error) {
		v, err := p.AsToolType()
		return enumText(level.NewToolType("", v), int64(v)), err
	},
	"water": func(p *level.Param) (string, error) {
		v, err := p.AsWaterType()
		return enumText(level.NewWaterType("", v), int64(v)), err
	},
	"terrain": func(p *level.Param) (string, error) {
		v, err := p.AsTerrainType()
		return enumText(level.NewTerrainType("", v), int64(v)), err
	},
	"camera": func(p *level.Param) (string, error) {
		v, err := p.AsCameraType()
		return enumText(level.NewCameraType("", v), int64(v)), err
	},
	"mission": func(p *level.Param) (string, error) {
		v, err := p.AsMissionType()
		return enumText(level.NewMissionType("", v), int64(v)), err
	},
	"pyro": func(p *level.Param) (string, error) {
		v, err := p.AsPyroType()
		return enumText(level.NewPyroType("", v), int64(v)), err
	},
	"research": func(p *level.Param) (string, error) {
		v, err := p.AsResearchFlag()
		return enumText(level.NewResearchFlag("", v), int64(v)), err
	},
	"build": func(p *level.Param) (string, error) {
		v, err := p.AsBuildFlag()
		return enumText(level.NewBuildFlag("", v), int64(v)), err
	},
	"sort": func(p *level.Param) (string, error) {
		v, err := p.AsSortType()
		return enumText(level.NewSortType("", v), int64(v)), err
	},
}

// TypeNames lists the type names accepted by get, sorted.
func TypeNames() []string {
	out := make([]string, 0, len(getters)+1)
	for k := range getters {
		out = append(out, k)
	}
	out = append(out, "array")
	sort.Strings(out)
	return out
}

func formatColor(c types.Color) string {
	return fmt.Sprintf("r=%g g=%g b=%g a=%g", c.R, c.G, c.B, c.A)
}

func enumText(p *level.Param, n int64) string {
	return fmt.Sprintf("%s (%d)", p.Value(), n)
}
