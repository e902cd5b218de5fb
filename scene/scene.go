// Package scene maps the commands of a level file onto configuration structs.
package scene

import (
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/schema"
	"github.com/nathoo/leveldesc/types"
)

var white = types.Color{R: 1, G: 1, B: 1, A: 1}
var black = types.Color{R: 0, G: 0, B: 0, A: 1}

// ObjectFragile controls whether objects break and burn.
type ObjectFragile struct {
	Enabled  bool
	Burnable bool
}

var FragileSchema = schema.New("SetObjectFragile", ObjectFragile{},
	schema.Bool("enabled", func(v *ObjectFragile) *bool { return &v.Enabled }),
	schema.Bool("burnable", func(v *ObjectFragile) *bool { return &v.Burnable }),
)

// Mission holds the level's title and kind.
type Mission struct {
	Type       types.MissionType
	Title      string
	Resume     string
	Difficulty int
}

var MissionSchema = schema.New("Mission", Mission{Type: types.MissionNormal},
	schema.MissionType("type", func(v *Mission) *types.MissionType { return &v.Type }),
	schema.String("title", func(v *Mission) *string { return &v.Title }),
	schema.String("resume", func(v *Mission) *string { return &v.Resume }),
	schema.Int("difficulty", func(v *Mission) *int { return &v.Difficulty }),
)

// Camera is the initial camera placement.
type Camera struct {
	Eye    types.Vec3
	LookAt types.Vec3
	Delay  float64
	FadeIn bool
	Type   types.CameraType
}

var CameraSchema = schema.New("Camera", Camera{Type: types.CameraBack},
	schema.Vec3("eye", func(v *Camera) *types.Vec3 { return &v.Eye }),
	schema.Vec3("lookat", func(v *Camera) *types.Vec3 { return &v.LookAt }),
	schema.Float("delay", func(v *Camera) *float64 { return &v.Delay }),
	schema.Bool("fadeIn", func(v *Camera) *bool { return &v.FadeIn }),
	schema.CameraType("type", func(v *Camera) *types.CameraType { return &v.Type }),
)

// Background is the sky gradient and optional backdrop image.
type Background struct {
	Up        types.Color
	Down      types.Color
	CloudUp   types.Color
	CloudDown types.Color
	Image     string
	Full      bool
}

var BackgroundSchema = schema.New("Background",
	Background{Up: black, Down: black, CloudUp: black, CloudDown: black},
	schema.Color("up", func(v *Background) *types.Color { return &v.Up }),
	schema.Color("down", func(v *Background) *types.Color { return &v.Down }),
	schema.Color("cloudUp", func(v *Background) *types.Color { return &v.CloudUp }),
	schema.Color("cloudDown", func(v *Background) *types.Color { return &v.CloudDown }),
	schema.Path("image", func(v *Background) *string { return &v.Image }),
	schema.Bool("full", func(v *Background) *bool { return &v.Full }),
)

// TerrainWater describes the water plane.
type TerrainWater struct {
	Type       types.WaterType
	Image      string
	Color      types.Color
	Level      float64
	Speed      types.Point
	Moxel      float64
	Brightness float64
}

var WaterSchema = schema.New("TerrainWater",
	TerrainWater{Type: types.WaterTransparentTexture, Color: white, Moxel: 1, Brightness: 1},
	schema.WaterType("type", func(v *TerrainWater) *types.WaterType { return &v.Type }),
	schema.Path("image", func(v *TerrainWater) *string { return &v.Image }),
	schema.Color("color", func(v *TerrainWater) *types.Color { return &v.Color }),
	schema.Float("level", func(v *TerrainWater) *float64 { return &v.Level }),
	schema.Point("speed", func(v *TerrainWater) *types.Point { return &v.Speed }),
	schema.Float("moxel", func(v *TerrainWater) *float64 { return &v.Moxel }),
	schema.Float("brightness", func(v *TerrainWater) *float64 { return &v.Brightness }),
)

// Research lists which research topics exist and which are already done.
type Research struct {
	Enabled types.ResearchFlag
	Done    types.ResearchFlag
	Build   types.BuildFlag
}

var ResearchSchema = schema.New("Research", Research{},
	schema.ResearchFlag("enabled", func(v *Research) *types.ResearchFlag { return &v.Enabled }),
	schema.ResearchFlag("done", func(v *Research) *types.ResearchFlag { return &v.Done }),
	schema.BuildFlag("build", func(v *Research) *types.BuildFlag { return &v.Build }),
)

// SaveList configures the saved-game browser.
type SaveList struct {
	Sort     types.SortType
	ShowAuto bool
	Max      int
}

var SaveListSchema = schema.New("SaveList", SaveList{Sort: types.SortDate, ShowAuto: true, Max: 10},
	schema.SortType("sort", func(v *SaveList) *types.SortType { return &v.Sort }),
	schema.Bool("showAuto", func(v *SaveList) *bool { return &v.ShowAuto }),
	schema.Int("max", func(v *SaveList) *int { return &v.Max }),
)

// ObjectSpec places one object.
type ObjectSpec struct {
	Type   types.ObjectType
	Pos    types.Vec3
	Dir    float64
	Drive  types.DriveType
	Tool   types.ToolType
	Power  float64
	Team   int
	Select bool
	Color  types.Color
}

var ObjectSchema = schema.New("CreateObject", ObjectSpec{Power: 1, Color: white},
	schema.Required(schema.ObjectType("type", func(v *ObjectSpec) *types.ObjectType { return &v.Type })),
	schema.Required(schema.Vec3("pos", func(v *ObjectSpec) *types.Vec3 { return &v.Pos })),
	schema.Float("dir", func(v *ObjectSpec) *float64 { return &v.Dir }),
	schema.DriveType("drive", func(v *ObjectSpec) *types.DriveType { return &v.Drive }),
	schema.ToolType("tool", func(v *ObjectSpec) *types.ToolType { return &v.Tool }),
	schema.Float("power", func(v *ObjectSpec) *float64 { return &v.Power }),
	schema.Int("team", func(v *ObjectSpec) *int { return &v.Team }),
	schema.Bool("select", func(v *ObjectSpec) *bool { return &v.Select }),
	schema.Color("color", func(v *ObjectSpec) *types.Color { return &v.Color }),
)

// AutomatState restores the progress of a building's automat.
type AutomatState struct {
	Object   types.ObjectType
	Phase    int
	Progress float64
	Speed    float64
}

var AutomatSchema = schema.New("Automat", AutomatState{Speed: 1},
	schema.Required(schema.ObjectType("object", func(v *AutomatState) *types.ObjectType { return &v.Object })),
	schema.Int("phase", func(v *AutomatState) *int { return &v.Phase }),
	schema.Float("progress", func(v *AutomatState) *float64 { return &v.Progress }),
	schema.Float("speed", func(v *AutomatState) *float64 { return &v.Speed }),
)

// PyroEffect is a scripted particle effect.
type PyroEffect struct {
	Type  types.PyroType
	Pos   types.Vec3
	Power float64
}

var PyroSchema = schema.New("Pyro", PyroEffect{Power: 1},
	schema.Required(schema.PyroType("type", func(v *PyroEffect) *types.PyroType { return &v.Type })),
	schema.Required(schema.Vec3("pos", func(v *PyroEffect) *types.Vec3 { return &v.Pos })),
	schema.Float("power", func(v *PyroEffect) *float64 { return &v.Power }),
)

// TerrainMaterial binds a material id to a texture and resource.
type TerrainMaterial struct {
	ID       int
	Image    string
	UV       types.Point
	Resource types.TerrainType
}

var MaterialSchema = schema.New("TerrainMaterial", TerrainMaterial{},
	schema.Required(schema.Int("id", func(v *TerrainMaterial) *int { return &v.ID })),
	schema.Path("image", func(v *TerrainMaterial) *string { return &v.Image }),
	schema.Point("uv", func(v *TerrainMaterial) *types.Point { return &v.UV }),
	schema.TerrainType("resource", func(v *TerrainMaterial) *types.TerrainType { return &v.Resource }),
)

// Scene is a whole level file.
type Scene struct {
	Fragile    ObjectFragile
	Mission    Mission
	Camera     Camera
	Background Background
	Water      TerrainWater
	Research   Research
	SaveList   SaveList

	Objects   []ObjectSpec
	Automats  []AutomatState
	Pyros     []PyroEffect
	Materials []TerrainMaterial

	// Extra holds lines with commands this package does not know, kept in
	// file order and written back unchanged.
	Extra []*level.Line
}

// New returns a scene with every configuration at its default.
func New() *Scene {
	return &Scene{
		Fragile:    FragileSchema.Default(),
		Mission:    MissionSchema.Default(),
		Camera:     CameraSchema.Default(),
		Background: BackgroundSchema.Default(),
		Water:      WaterSchema.Default(),
		Research:   ResearchSchema.Default(),
		SaveList:   SaveListSchema.Default(),
	}
}
