package schema

import (
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/types"
)

// Field binds one named parameter to one member of T.
type Field[T any] interface {
	Name() string

	read(l *level.Line, v *T) error
	write(l *level.Line, v, def *T)
	withRequired() Field[T]
}

type field[T any, V comparable] struct {
	name string
	ref  func(*T) *V
	get  func(p *level.Param, def V) (V, error)
	put  func(name string, v V) *level.Param
	must bool
}

func (f field[T, V]) Name() string { return f.name }

func (f field[T, V]) withRequired() Field[T] {
	f.must = true
	return f
}

func (f field[T, V]) read(l *level.Line, v *T) error {
	p := l.Param(f.name)
	if f.must && !p.IsDefined() {
		return &level.MissingParamError{Param: f.name, File: l.Filename(), Line: l.Number()}
	}
	dst := f.ref(v)
	got, err := f.get(p, *dst)
	if err != nil {
		return err
	}
	*dst = got
	return nil
}

func (f field[T, V]) write(l *level.Line, v, def *T) {
	cur := *f.ref(v)
	if !f.must && cur == *f.ref(def) {
		return
	}
	l.Set(f.put(f.name, cur))
}

// Required marks a field that must be present when reading and is always
// written.
func Required[T any](f Field[T]) Field[T] {
	return f.withRequired()
}

// Int binds an integer parameter.
func Int[T any](name string, ref func(*T) *int) Field[T] {
	return field[T, int]{name: name, ref: ref, get: (*level.Param).AsIntOr, put: level.NewInt}
}

// Float binds a float parameter.
func Float[T any](name string, ref func(*T) *float64) Field[T] {
	return field[T, float64]{name: name, ref: ref, get: (*level.Param).AsFloatOr, put: level.NewFloat}
}

// Bool binds a boolean parameter.
func Bool[T any](name string, ref func(*T) *bool) Field[T] {
	return field[T, bool]{name: name, ref: ref, get: (*level.Param).AsBoolOr, put: level.NewBool}
}

// String binds a quoted string parameter.
func String[T any](name string, ref func(*T) *string) Field[T] {
	return field[T, string]{name: name, ref: ref, get: (*level.Param).AsStringOr, put: level.NewString}
}

// Path reads with %lvl% expansion by the file's expander. The held value is
// what gets written.
func Path[T any](name string, ref func(*T) *string) Field[T] {
	return field[T, string]{name: name, ref: ref, get: (*level.Param).AsPathOr, put: level.NewPath}
}

// Color binds a colour in hex or list form.
func Color[T any](name string, ref func(*T) *types.Color) Field[T] {
	return field[T, types.Color]{name: name, ref: ref, get: (*level.Param).AsColorOr, put: level.NewColor}
}

// Point binds a two-component position.
func Point[T any](name string, ref func(*T) *types.Point) Field[T] {
	return field[T, types.Point]{name: name, ref: ref, get: (*level.Param).AsPointOr, put: level.NewPoint}
}

// Vec3 binds a three-component position.
func Vec3[T any](name string, ref func(*T) *types.Vec3) Field[T] {
	return field[T, types.Vec3]{name: name, ref: ref, get: (*level.Param).AsVec3Or, put: level.NewVec3}
}

// ObjectType binds an object type name.
func ObjectType[T any](name string, ref func(*T) *types.ObjectType) Field[T] {
	return field[T, types.ObjectType]{name: name, ref: ref, get: (*level.Param).AsObjectTypeOr, put: level.NewObjectType}
}

// DriveType binds a drive type name.
func DriveType[T any](name string, ref func(*T) *types.DriveType) Field[T] {
	return field[T, types.DriveType]{name: name, ref: ref, get: (*level.Param).AsDriveTypeOr, put: level.NewDriveType}
}

// ToolType binds a tool type name.
func ToolType[T any](name string, ref func(*T) *types.ToolType) Field[T] {
	return field[T, types.ToolType]{name: name, ref: ref, get: (*level.Param).AsToolTypeOr, put: level.NewToolType}
}

// WaterType binds a water type name.
func WaterType[T any](name string, ref func(*T) *types.WaterType) Field[T] {
	return field[T, types.WaterType]{name: name, ref: ref, get: (*level.Param).AsWaterTypeOr, put: level.NewWaterType}
}

// TerrainType binds a terrain type name.
func TerrainType[T any](name string, ref func(*T) *types.TerrainType) Field[T] {
	return field[T, types.TerrainType]{name: name, ref: ref, get: (*level.Param).AsTerrainTypeOr, put: level.NewTerrainType}
}

// CameraType binds a camera type name.
func CameraType[T any](name string, ref func(*T) *types.CameraType) Field[T] {
	return field[T, types.CameraType]{name: name, ref: ref, get: (*level.Param).AsCameraTypeOr, put: level.NewCameraType}
}

// MissionType binds a mission type name.
func MissionType[T any](name string, ref func(*T) *types.MissionType) Field[T] {
	return field[T, types.MissionType]{name: name, ref: ref, get: (*level.Param).AsMissionTypeOr, put: level.NewMissionType}
}

// PyroType binds a pyro type name.
func PyroType[T any](name string, ref func(*T) *types.PyroType) Field[T] {
	return field[T, types.PyroType]{name: name, ref: ref, get: (*level.Param).AsPyroTypeOr, put: level.NewPyroType}
}

// ResearchFlag binds research flags, by name or as an integer mask.
func ResearchFlag[T any](name string, ref func(*T) *types.ResearchFlag) Field[T] {
	return field[T, types.ResearchFlag]{name: name, ref: ref, get: (*level.Param).AsResearchFlagOr, put: level.NewResearchFlag}
}

// BuildFlag binds build flags, by name or as an integer mask.
func BuildFlag[T any](name string, ref func(*T) *types.BuildFlag) Field[T] {
	return field[T, types.BuildFlag]{name: name, ref: ref, get: (*level.Param).AsBuildFlagOr, put: level.NewBuildFlag}
}

// SortType binds a sort type name.
func SortType[T any](name string, ref func(*T) *types.SortType) Field[T] {
	return field[T, types.SortType]{name: name, ref: ref, get: (*level.Param).AsSortTypeOr, put: level.NewSortType}
}
