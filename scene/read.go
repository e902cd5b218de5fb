package scene

import (
	"context"
	"fmt"
	"sort"

	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/schema"
)

// binding ties a command to how its lines are stored in a Scene.
type binding struct {
	names []string
	many  bool
	read  func(s *Scene, l *level.Line) error
	check func(l *level.Line) error
}

var bindings = map[string]binding{
	FragileSchema.Command():    single(FragileSchema, func(s *Scene) *ObjectFragile { return &s.Fragile }),
	MissionSchema.Command():    single(MissionSchema, func(s *Scene) *Mission { return &s.Mission }),
	CameraSchema.Command():     single(CameraSchema, func(s *Scene) *Camera { return &s.Camera }),
	BackgroundSchema.Command(): single(BackgroundSchema, func(s *Scene) *Background { return &s.Background }),
	WaterSchema.Command():      single(WaterSchema, func(s *Scene) *TerrainWater { return &s.Water }),
	ResearchSchema.Command():   single(ResearchSchema, func(s *Scene) *Research { return &s.Research }),
	SaveListSchema.Command():   single(SaveListSchema, func(s *Scene) *SaveList { return &s.SaveList }),
	ObjectSchema.Command():     repeated(ObjectSchema, func(s *Scene) *[]ObjectSpec { return &s.Objects }),
	AutomatSchema.Command():    repeated(AutomatSchema, func(s *Scene) *[]AutomatState { return &s.Automats }),
	PyroSchema.Command():       repeated(PyroSchema, func(s *Scene) *[]PyroEffect { return &s.Pyros }),
	MaterialSchema.Command():   repeated(MaterialSchema, func(s *Scene) *[]TerrainMaterial { return &s.Materials }),
}

// single binds a command that configures one struct. A second line for the
// same command reads on top of the first.
func single[T any](sc *schema.Schema[T], ref func(*Scene) *T) binding {
	return binding{
		names: sc.Names(),
		read: func(s *Scene, l *level.Line) error {
			return sc.Read(l, ref(s))
		},
		check: func(l *level.Line) error {
			_, err := sc.Decode(l)
			return err
		},
	}
}

// repeated binds a command where every line adds one entry.
func repeated[T any](sc *schema.Schema[T], ref func(*Scene) *[]T) binding {
	return binding{
		names: sc.Names(),
		many:  true,
		read: func(s *Scene, l *level.Line) error {
			v, err := sc.Decode(l)
			if err != nil {
				return err
			}
			list := ref(s)
			*list = append(*list, v)
			return nil
		},
		check: func(l *level.Line) error {
			_, err := sc.Decode(l)
			return err
		},
	}
}

// Read builds a scene from a parsed file. Unknown commands are kept in
// Extra. The first malformed line aborts the read.
func Read(ctx context.Context, f *level.File) (*Scene, error) {
	logger := ctxlog.FromContext(ctx).With("file", f.Name)
	s := New()
	seen := map[string]int{}

	for _, l := range f.Lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b, ok := bindings[l.Command]
		if !ok {
			logger.Debug("Keeping unknown command.", "command", l.Command, "line", l.Number())
			s.Extra = append(s.Extra, l)
			continue
		}
		if seen[l.Command] > 0 && !b.many {
			logger.Warn("Command given more than once, later values override.",
				"command", l.Command, "line", l.Number())
		}
		if err := b.read(s, l); err != nil {
			return nil, fmt.Errorf("reading %s: %w", l.Command, err)
		}
		seen[l.Command]++
	}

	logger.Debug("Read scene.",
		"objects", len(s.Objects),
		"automats", len(s.Automats),
		"pyros", len(s.Pyros),
		"materials", len(s.Materials),
		"extra", len(s.Extra))
	return s, nil
}

// CheckLine decodes a line against its command's schema. Lines with unknown
// commands are accepted.
func CheckLine(l *level.Line) error {
	b, ok := bindings[l.Command]
	if !ok {
		return nil
	}
	return b.check(l)
}

// Known reports whether command is handled by this package.
func Known(command string) bool {
	_, ok := bindings[command]
	return ok
}

// Commands returns the known commands, sorted.
func Commands() []string {
	out := make([]string, 0, len(bindings))
	for c := range bindings {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Fields returns the parameter names of a known command in declaration
// order, or nil.
func Fields(command string) []string {
	return bindings[command].names
}
