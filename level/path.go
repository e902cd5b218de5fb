package level

import (
	"path"
	"strings"
)

// LevelMacro is replaced by the current level's directory in path parameters.
const LevelMacro = "%lvl%"

// PathExpander rewrites macros in path parameters.
type PathExpander interface {
	ExpandPath(p string) (string, error)
}

// LevelDir expands %lvl% to a fixed directory.
type LevelDir struct {
	Dir string
}

// ExpandPath implements PathExpander.
func (d LevelDir) ExpandPath(p string) (string, error) {
	if !strings.Contains(p, LevelMacro) {
		return p, nil
	}
	dir := strings.TrimSuffix(path.Clean(strings.ReplaceAll(d.Dir, "\\", "/")), "/")
	return strings.ReplaceAll(p, LevelMacro, dir), nil
}

// KeepMacros leaves %lvl% in place. Attach it to read paths as written,
// for instance to rewrite a file without pinning it to one directory.
type KeepMacros struct{}

// ExpandPath implements PathExpander.
func (KeepMacros) ExpandPath(p string) (string, error) { return p, nil }
