package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/types"
)

type fragile struct {
	Enabled  bool
	Burnable bool
}

var fragileSchema = New("SetObjectFragile", fragile{},
	Bool("enabled", func(f *fragile) *bool { return &f.Enabled }),
	Bool("burnable", func(f *fragile) *bool { return &f.Burnable }),
)

type placement struct {
	Type  types.ObjectType
	Pos   types.Vec3
	Dir   float64
	Name  string
	Tint  types.Color
	Build types.BuildFlag
}

var placementSchema = New("CreateObject",
	placement{Tint: types.Color{R: 1, G: 1, B: 1, A: 1}},
	Required(ObjectType("type", func(p *placement) *types.ObjectType { return &p.Type })),
	Required(Vec3("pos", func(p *placement) *types.Vec3 { return &p.Pos })),
	Float("dir", func(p *placement) *float64 { return &p.Dir }),
	String("name", func(p *placement) *string { return &p.Name }),
	Color("tint", func(p *placement) *types.Color { return &p.Tint }),
	BuildFlag("build", func(p *placement) *types.BuildFlag { return &p.Build }),
)

func mustParse(t *testing.T, text string) *level.Line {
	t.Helper()
	l, err := level.ParseLine(text)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", text, err)
	}
	return l
}

func TestFragileEndToEnd(t *testing.T) {
	l := mustParse(t, "SetObjectFragile enabled=true burnable=false")

	got, err := fragileSchema.Decode(l)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(fragile{Enabled: true}, got); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}

	out := fragileSchema.Write(got)
	if out == nil {
		t.Fatal("Write returned nil for a non-default value")
	}
	if out.String() != "SetObjectFragile enabled=true" {
		t.Errorf("got %q, want %q", out.String(), "SetObjectFragile enabled=true")
	}
}

func TestWriteDefaultIsNil(t *testing.T) {
	if l := fragileSchema.Write(fragileSchema.Default()); l != nil {
		t.Errorf("got %q, want nil", l)
	}
	if l := fragileSchema.Line(fragileSchema.Default()); l == nil || l.Len() != 0 {
		t.Errorf("Line of the default should be an empty line, got %v", l)
	}
}

func TestReadKeepsCurrentValues(t *testing.T) {
	v := fragile{Enabled: true, Burnable: true}
	if err := fragileSchema.Read(mustParse(t, "SetObjectFragile burnable=false"), &v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fragile{Enabled: true, Burnable: false}, v); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadUnusedArgument(t *testing.T) {
	v := fragile{}
	err := fragileSchema.Read(mustParse(t, "SetObjectFragile enabled=true colour=red"), &v)
	var bad *level.BadParamError
	if !errors.As(err, &bad) || !bad.Unused || bad.Param != "colour" {
		t.Fatalf("got %v, want an unused argument error for colour", err)
	}
	if v != (fragile{}) {
		t.Errorf("v modified on error: %+v", v)
	}
}

func TestReadMalformedLeavesValue(t *testing.T) {
	v := fragile{Burnable: true}
	err := fragileSchema.Read(mustParse(t, "SetObjectFragile enabled=true burnable=maybe"), &v)
	if !errors.Is(err, level.ErrBadParam) {
		t.Fatalf("got %v, want ErrBadParam", err)
	}
	if diff := cmp.Diff(fragile{Burnable: true}, v); diff != "" {
		t.Errorf("v modified on error (-want +got):\n%s", diff)
	}
}

func TestReadWrongCommand(t *testing.T) {
	var v fragile
	if err := fragileSchema.Read(mustParse(t, "Mission type=RETRO"), &v); !errors.Is(err, ErrWrongCommand) {
		t.Errorf("got %v, want ErrWrongCommand", err)
	}
}

func TestRequiredFields(t *testing.T) {
	_, err := placementSchema.Decode(mustParse(t, "CreateObject type=Derrick"))
	var miss *level.MissingParamError
	if !errors.As(err, &miss) || miss.Param != "pos" {
		t.Fatalf("got %v, want missing pos", err)
	}

	// Required fields are written even when they match the default.
	l := placementSchema.Line(placementSchema.Default())
	if l.String() != "CreateObject pos=0;0;0 type=Null" {
		t.Errorf("got %q", l.String())
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []placement{
		{Type: types.ObjectDerrick, Pos: types.Vec3{X: 10, Z: 20}, Tint: types.Color{R: 1, G: 1, B: 1, A: 1}},
		{Type: types.ObjectTitaniumOre, Pos: types.Vec3{X: -1.5, Y: 2, Z: 3}, Dir: 0.25, Name: "crate 7",
			Tint: types.Color{R: 0.5, G: 0, B: 1, A: 0.5}, Build: types.BuildFactory | types.BuildRadar},
		{Type: types.ObjectType(999), Name: `say "hi"`, Tint: types.Color{R: 1, G: 1, B: 1, A: 1}},
	}
	for _, want := range tests {
		t.Run(level.ObjectTypeName(want.Type), func(t *testing.T) {
			text := placementSchema.Line(want).String()
			got, err := placementSchema.Decode(mustParse(t, text))
			if err != nil {
				t.Fatalf("Decode(%q): %v", text, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip of %q (-want +got):\n%s", text, diff)
			}
		})
	}
}

func TestHexColorInput(t *testing.T) {
	got, err := placementSchema.Decode(mustParse(t, "CreateObject type=Tree pos=0;0 tint=#FF0000"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(types.Color{R: 1, A: 1}, got.Tint); diff != "" {
		t.Errorf("tint mismatch (-want +got):\n%s", diff)
	}
	if out := placementSchema.Line(got).String(); !strings.Contains(out, "tint=1;0;0") {
		t.Errorf("tint written as %q", out)
	}
}

func TestDuplicateFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for duplicate field names")
		}
	}()
	New("X", fragile{},
		Bool("a", func(f *fragile) *bool { return &f.Enabled }),
		Bool("a", func(f *fragile) *bool { return &f.Burnable }),
	)
}

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"enabled", "burnable"}, fragileSchema.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if !fragileSchema.Known("burnable") || fragileSchema.Known("colour") {
		t.Error("Known disagrees with the field list")
	}
}
