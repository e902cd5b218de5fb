package scene

import (
	"context"
	"path/filepath"

	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/level"
)

// Write renders a scene. Configurations equal to their default are omitted;
// every repeated entry gets a line. Extra lines come last.
func Write(s *Scene, name string) *level.File {
	f := level.NewFile(name)

	f.Add(MissionSchema.Write(s.Mission))
	f.Add(CameraSchema.Write(s.Camera))
	f.Add(BackgroundSchema.Write(s.Background))
	f.Add(WaterSchema.Write(s.Water))
	f.Add(ResearchSchema.Write(s.Research))
	f.Add(SaveListSchema.Write(s.SaveList))
	f.Add(FragileSchema.Write(s.Fragile))

	for _, m := range s.Materials {
		f.Add(MaterialSchema.Line(m))
	}
	for _, o := range s.Objects {
		f.Add(ObjectSchema.Line(o))
	}
	for _, a := range s.Automats {
		f.Add(AutomatSchema.Line(a))
	}
	for _, p := range s.Pyros {
		f.Add(PyroSchema.Line(p))
	}
	for _, l := range s.Extra {
		// Copy so the source file keeps ownership of its lines.
		cp := level.NewLine(l.Command)
		for _, p := range l.Params() {
			cp.Set(level.NewRaw(p.Name(), p.Value()))
		}
		f.Add(cp)
	}
	return f
}

// Load reads a scene from disk. When paths is nil, %lvl% expands to the
// directory holding the file. Pass level.KeepMacros{} when the scene is
// going to be saved again, so paths are written back with their macro.
func Load(ctx context.Context, path string, paths level.PathExpander) (*Scene, *level.File, error) {
	f, err := level.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if paths == nil {
		paths = level.LevelDir{Dir: filepath.Dir(path)}
	}
	f.Paths = paths

	s, err := Read(ctx, f)
	if err != nil {
		return nil, f, err
	}
	return s, f, nil
}

// Save writes a scene to path, replacing any existing file. Path fields
// are written as they are held; see Load.
func Save(ctx context.Context, s *Scene, path string) error {
	f := Write(s, path)
	if err := f.Save(path); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Saved scene.", "path", path, "lines", len(f.Lines))
	return nil
}
