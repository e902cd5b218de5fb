package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nathoo/leveldesc/config"
	"github.com/nathoo/leveldesc/level"
)

func defaults() *config.Config {
	c := config.Default()
	return &c
}

func TestParse(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	tests := []struct {
		name string
		args []string
		want *Invocation
	}{
		{
			name: "check",
			args: []string{"-config", missing, "check", "crash.txt"},
			want: &Invocation{Config: defaults(), Command: "check", Path: "crash.txt"},
		},
		{
			name: "check watch",
			args: []string{"-config", missing, "check", "-watch", "crash.txt"},
			want: &Invocation{Config: defaults(), Command: "check", Path: "crash.txt", Watch: true},
		},
		{
			name: "fmt normalize write",
			args: []string{"-config", missing, "fmt", "-normalize", "-w", "crash.txt"},
			want: &Invocation{Config: defaults(), Command: "fmt", Path: "crash.txt", Normalize: true, Write: true},
		},
		{
			name: "json query",
			args: []string{"-config", missing, "json", "-q", "lines.#", "crash.txt"},
			want: &Invocation{Config: defaults(), Command: "json", Path: "crash.txt", Query: "lines.#"},
		},
		{
			name: "gen output",
			args: []string{"-config", missing, "gen", "-o", "out.txt", "outpost.lua"},
			want: &Invocation{Config: defaults(), Command: "gen", Path: "outpost.lua", Output: "out.txt"},
		},
		{
			name: "inspect script implies plain",
			args: []string{"-config", missing, "inspect", "-script", "cmds.txt", "crash.txt"},
			want: &Invocation{Config: defaults(), Command: "inspect", Path: "crash.txt", Plain: true, Script: "cmds.txt"},
		},
		{
			name: "version",
			args: []string{"-config", missing, "version"},
			want: &Invocation{Config: defaults(), Command: "version"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, exit, err := Parse(tt.args, &out)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if exit {
				t.Fatal("Parse() asked to exit")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leveltool.toml")
	body := "level_dir = \"from/file\"\nlog_level = \"debug\"\ntheme = \"light\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := Parse([]string{"-config", path, "-log-level", "ERROR", "check", "crash.txt"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := &config.Config{LevelDir: "from/file", LogLevel: "error", LogFormat: "text", Theme: "light"}
	if diff := cmp.Diff(want, got.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(level.PathExpander(level.LevelDir{Dir: "from/file"}), got.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNoLevelDir(t *testing.T) {
	got, _, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "x.toml"), "check", "a.txt"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Paths() != nil {
		t.Errorf("expected nil expander, got %v", got.Paths())
	}
}

func TestParseUsage(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	for _, args := range [][]string{
		{"-config", missing},
		{"-h"},
		{"-config", missing, "fmt", "-h"},
	} {
		var out bytes.Buffer
		inv, exit, err := Parse(args, &out)
		if err != nil || !exit || inv != nil {
			t.Errorf("Parse(%q) = %v, %v, %v; want clean exit", args, inv, exit, err)
		}
		if !strings.Contains(out.String(), "Usage") && !strings.Contains(out.String(), "-normalize") {
			t.Errorf("Parse(%q) printed no usage: %q", args, out.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "none.toml")
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("colour = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown global flag", []string{"-bogus"}, "bogus"},
		{"bad log level", []string{"-config", missing, "-log-level", "loud", "check", "a.txt"}, "log_level"},
		{"bad theme", []string{"-config", missing, "-theme", "neon", "check", "a.txt"}, "theme"},
		{"bad config file", []string{"-config", bad, "check", "a.txt"}, "bad.toml"},
		{"unknown command", []string{"-config", missing, "lint", "a.txt"}, `unknown command "lint"`},
		{"missing operand", []string{"-config", missing, "check"}, "usage: leveltool check"},
		{"extra operand", []string{"-config", missing, "gen", "a.lua", "b.lua"}, "SCRIPT"},
		{"unknown command flag", []string{"-config", missing, "json", "-x", "a.txt"}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args, &bytes.Buffer{})
			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("expected *ExitError, got %v", err)
			}
			if exitErr.Code != 2 {
				t.Errorf("exit code = %d, want 2", exitErr.Code)
			}
			if !strings.Contains(exitErr.Message, tt.want) {
				t.Errorf("message %q does not contain %q", exitErr.Message, tt.want)
			}
		})
	}
}
