package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/export"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/luagen"
	"github.com/nathoo/leveldesc/scene"
)

// ErrCheckFailed is returned by Check when the file has errors. The details
// have already been written to the output.
var ErrCheckFailed = errors.New("check failed")

// Check reads and validates a level file, reporting to out.
func Check(ctx context.Context, out io.Writer, path string, paths level.PathExpander) error {
	s, f, err := scene.Load(ctx, path, paths)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return ErrCheckFailed
	}

	ve := scene.Check(s)
	for _, w := range ve.Warnings {
		fmt.Fprintf(out, "%s: warning: %s\n", path, w)
	}
	for _, e := range ve.Errors {
		fmt.Fprintf(out, "%s: error: %s\n", path, e)
	}
	if len(ve.Errors) > 0 {
		return ErrCheckFailed
	}
	fmt.Fprintf(out, "%s: ok (%d lines, %d objects)\n", path, len(f.Lines), len(s.Objects))
	return nil
}

// Fmt rewrites a level file in canonical form: one command per line with
// parameters sorted by name. With normalize, the file goes through the
// scene structs, so parameters equal to their default are dropped; paths
// keep their %lvl% macro. The result goes to out, or back to path when
// write is set.
func Fmt(ctx context.Context, out io.Writer, path string, normalize, write bool) error {
	f, err := level.Load(ctx, path)
	if err != nil {
		return err
	}
	if normalize {
		f.Paths = level.KeepMacros{}
		s, err := scene.Read(ctx, f)
		if err != nil {
			return err
		}
		f = scene.Write(s, path)
	}
	if write {
		return f.Save(path)
	}
	_, err = f.WriteTo(out)
	return err
}

// JSON exports a level file, optionally narrowed by a gjson path.
func JSON(ctx context.Context, out io.Writer, path, query string) error {
	f, err := level.Load(ctx, path)
	if err != nil {
		return err
	}
	doc, err := export.JSON(f)
	if err != nil {
		return err
	}
	if query == "" {
		_, err = io.WriteString(out, export.Pretty(doc))
		return err
	}
	v, err := export.Query(doc, query)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, v)
	return err
}

// Gen runs a Lua level script. The generated file is checked before being
// written to dest, or to out when dest is empty.
func Gen(ctx context.Context, out io.Writer, script, dest string) error {
	f, err := luagen.Generate(ctx, script)
	if err != nil {
		return err
	}
	s, err := scene.Read(ctx, f)
	if err != nil {
		return err
	}
	if err := scene.Validate(ctx, s); err != nil {
		return err
	}
	if dest == "" {
		_, err = f.WriteTo(out)
		return err
	}
	if err := f.Save(dest); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Generated level.", "script", script, "dest", dest, "lines", len(f.Lines))
	return nil
}

// watchDebounce groups the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// Watch checks path, then checks it again each time it changes, until ctx
// is cancelled. Check failures are reported and do not stop the watch.
func Watch(ctx context.Context, out io.Writer, path string, paths level.PathExpander) error {
	logger := ctxlog.FromContext(ctx).With("path", path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than
	// writing it in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	target := filepath.Clean(path)

	recheck := func() {
		if err := Check(ctx, out, path, paths); err != nil {
			logger.Debug("Check failed; watching for the next change.", "error", err)
		}
	}
	recheck()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch stopped.")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				logger.Debug("File changed.", "op", ev.Op.String())
				pending = time.After(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error.", "error", err)

		case <-pending:
			pending = nil
			recheck()
		}
	}
}
