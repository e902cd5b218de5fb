package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/leveldesc/inspect"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/types"
)

const testLevel = `Mission title="Crash"
CreateObject type=Derrick pos=1;2
Background up=#ff0000
`

// newTestModel returns a model over a small parsed level.
func newTestModel(t *testing.T) Model {
	t.Helper()
	f, err := level.Parse(t.Context(), strings.NewReader(testLevel), "crash.txt")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return New(t.Context(), inspect.NewSession(f), Options{Theme: "plain"})
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"error: automat 0 refers to Derrick", kindError},
		{"warning: mission has no title", kindWarning},
		{"ok: 3 lines, 1 objects", kindOK},
		{`  1  Mission title="Crash"`, kindListing},
		{" 12  CreateObject pos=1;2 type=Derrick", kindListing},
		{`  title = "Crash"`, kindParam},
		{"  power   (default)", kindDefault},
		{"Mission  (crash.txt:1)", kindHeader},
		{"Derrick (4)", kindText},
		{"1", kindText},
		{"", kindText},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"reading CreateObject: unable to parse value as vec3", 30,
			"reading CreateObject: unable\nto parse value as vec3"},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
		{"  abc def", 5, "  abc\ndef"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("list")
	h.Push("show 1")
	h.Push("check")

	for _, want := range []string{"check", "show 1", "list", "list"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("list")
	h.Push("show 1")

	h.Prev() // "show 1"
	h.Prev() // "list"

	next, ok := h.Next()
	if !ok || next != "show 1" {
		t.Errorf("expected 'show 1', got %q (ok=%v)", next, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	for _, want := range []string{"c", "b", "b"} {
		if prev, _ := h.Prev(); prev != want {
			t.Errorf("expected %q, got %q", want, prev)
		}
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("list")
	h.Push("list")
	h.Push("list")

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("list")
	h.Push("check")

	h.Prev()
	h.Prev()
	h.ResetCursor()

	prev, ok := h.Prev()
	if !ok || prev != "check" {
		t.Errorf("expected 'check' after reset, got %q", prev)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"dark", "light", "plain", "LIGHT"} {
		th, ok := themeByName(name)
		if !ok {
			t.Errorf("themeByName(%q) not found", name)
		}
		if th.name != strings.ToLower(name) {
			t.Errorf("themeByName(%q).name = %q", name, th.name)
		}
	}
	if th, ok := themeByName("neon"); ok || th.name != "dark" {
		t.Errorf("themeByName(neon) = %q, %v; want dark fallback", th.name, ok)
	}
}

func TestSwatch(t *testing.T) {
	got := plainTheme().swatch(types.Color{R: 1, G: 0, B: 0, A: 0.5})
	if got != "     #ff0000" {
		t.Errorf("plain swatch = %q", got)
	}
	got = darkTheme().swatch(types.Color{R: 0, G: 0, B: 1, A: 1})
	if !strings.Contains(got, "#0000ff") {
		t.Errorf("dark swatch missing hex: %q", got)
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel(t)
	if _, quit := m.handleMeta("/quit"); !quit {
		t.Error("expected quit=true for /quit on a clean session")
	}

	m = newTestModel(t)
	m.session.Dirty = true
	output, quit := m.handleMeta("/exit")
	if quit {
		t.Error("expected first /exit with unsaved edits to be refused")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unsaved") {
		t.Errorf("expected unsaved warning, got %v", output)
	}
	if _, quit := m.handleMeta("/quit"); !quit {
		t.Error("expected second /quit to exit")
	}
}

func TestHandleMeta_QuitDisarmedByOtherCommand(t *testing.T) {
	m := newTestModel(t)
	m.session.Dirty = true
	m.handleMeta("/quit")
	m.handleMeta("/help")
	if _, quit := m.handleMeta("/quit"); quit {
		t.Error("expected /quit to warn again after another command")
	}
}

func TestHandleMeta_Save(t *testing.T) {
	m := newTestModel(t)
	m.path = filepath.Join(t.TempDir(), "out.txt")
	m.session.Dirty = true

	output, quit := m.handleMeta("/save")
	if quit {
		t.Error("save should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Saved to") {
		t.Fatalf("expected save confirmation, got %v", output)
	}
	if m.session.Dirty {
		t.Error("expected session to be clean after save")
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Mission title=\"Crash\"\nCreateObject pos=1;2 type=Derrick\nBackground up=#ff0000\n"
	if string(data) != want {
		t.Errorf("saved file =\n%s\nwant:\n%s", data, want)
	}
}

func TestHandleMeta_SaveWithoutPath(t *testing.T) {
	m := newTestModel(t)
	output, _ := m.handleMeta("/save")
	if len(output) == 0 || !strings.Contains(output[0], "Save failed") {
		t.Errorf("expected save failure, got %v", output)
	}
}

func TestHandleMeta_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crash.txt")
	if err := os.WriteFile(path, []byte("Mission title=\"Fresh\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t)
	m.path = path
	m.session.Dirty = true

	output, _ := m.handleMeta("/reload")
	if len(output) == 0 || !strings.Contains(output[0], "Reloaded") {
		t.Fatalf("expected reload confirmation, got %v", output)
	}
	if m.session.Dirty {
		t.Error("expected session to be clean after reload")
	}
	if got := len(m.session.File.Lines); got != 1 {
		t.Errorf("expected 1 line after reload, got %d", got)
	}
}

func TestHandleMeta_ReloadMissingFile(t *testing.T) {
	m := newTestModel(t)
	m.path = filepath.Join(t.TempDir(), "gone.txt")
	output, _ := m.handleMeta("/reload")
	if len(output) == 0 || !strings.Contains(output[0], "Reload failed") {
		t.Errorf("expected reload failure, got %v", output)
	}
}

func TestHandleMeta_Theme(t *testing.T) {
	m := newTestModel(t)

	output, _ := m.handleMeta("/theme light")
	if m.theme.name != "light" {
		t.Errorf("expected light theme, got %q", m.theme.name)
	}
	if len(output) == 0 || output[0] != "Theme: light" {
		t.Errorf("unexpected output %v", output)
	}

	output, _ = m.handleMeta("/theme neon")
	if m.theme.name != "light" {
		t.Errorf("unknown theme should not change the palette, got %q", m.theme.name)
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown theme") {
		t.Errorf("expected unknown theme message, got %v", output)
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel(t)
	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}
	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/save", "/reload", "/theme", "/quit", "list", "check", "again"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel(t)
	output, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}

// submit types input and presses enter.
func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	next, _ := m.handleEnter()
	return next.(Model)
}

func hasLine(lines []rawLine, text string) bool {
	for _, rl := range lines {
		if rl.text == text {
			return true
		}
	}
	return false
}

func TestHandleEnter_List(t *testing.T) {
	m := submit(t, newTestModel(t), "ls")

	if !hasLine(m.rawLines, "> ls") {
		t.Error("expected echoed input")
	}
	if !hasLine(m.rawLines, `  1  Mission title="Crash"`) {
		t.Errorf("expected listing, got %+v", m.rawLines)
	}
	if m.history.Len() != 1 {
		t.Errorf("expected input in history, got %d entries", m.history.Len())
	}
	if m.lastCmd != "ls" {
		t.Errorf("lastCmd = %q", m.lastCmd)
	}
}

func TestHandleEnter_Again(t *testing.T) {
	m := submit(t, newTestModel(t), "again")
	if !hasLine(m.rawLines, "Nothing to repeat.") {
		t.Error("expected nothing-to-repeat message")
	}

	m = submit(t, m, "get 2 type object")
	m = submit(t, m, "again")
	count := 0
	for _, rl := range m.rawLines {
		if rl.text == "Derrick (4)" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected repeated output twice, got %d", count)
	}
}

func TestHandleEnter_Error(t *testing.T) {
	m := submit(t, newTestModel(t), "show 99")

	var last rawLine
	for _, rl := range m.rawLines {
		if rl.text != "" {
			last = rl
		}
	}
	if !last.isSystem || !strings.Contains(last.text, "no such line") {
		t.Errorf("expected error as system message, got %+v", last)
	}
}

func TestHandleEnter_ColorSwatch(t *testing.T) {
	m := submit(t, newTestModel(t), "get 3 up color")

	var found *types.Color
	for _, rl := range m.rawLines {
		if rl.swatch != nil {
			found = rl.swatch
		}
	}
	if found == nil {
		t.Fatal("expected a colour swatch")
	}
	if *found != (types.Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("swatch colour = %+v", *found)
	}
}

func TestHandleEnter_EditMarksDirty(t *testing.T) {
	m := submit(t, newTestModel(t), "set 2 power 0.5")
	if !m.session.Dirty {
		t.Error("expected session to be dirty after set")
	}
}

func TestRenderStatusBar(t *testing.T) {
	m := newTestModel(t)
	m.width = 80

	bar := m.renderStatusBar()
	if !strings.Contains(bar, "crash.txt | 3 lines") {
		t.Errorf("status bar missing file summary: %q", bar)
	}
	if !strings.Contains(bar, "Objects: 1") {
		t.Errorf("status bar missing object count: %q", bar)
	}
	if strings.Contains(bar, "modified") {
		t.Errorf("clean session marked modified: %q", bar)
	}

	m.session.Dirty = true
	if bar := m.renderStatusBar(); !strings.Contains(bar, "modified") {
		t.Errorf("dirty session not marked: %q", bar)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before sizing = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if !m.ready {
		t.Fatal("expected model to be ready after resize")
	}
	if !strings.Contains(m.View(), "crash.txt") {
		t.Error("expected status bar in view")
	}
}
