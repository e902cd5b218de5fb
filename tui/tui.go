package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/leveldesc/inspect"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool         // echoed user input
	isSystem bool         // session messages
	swatch   *types.Color // rendered as a colour block instead of text
}

// Model is the Bubble Tea model for the level inspector.
type Model struct {
	ctx     context.Context
	session *inspect.Session
	path    string
	paths   level.PathExpander
	theme   theme

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine

	width     int
	height    int
	ready     bool
	quitting  bool
	quitArmed bool
	lastCmd   string
}

// outputMsg carries command output into the Update loop.
type outputMsg struct {
	input    string
	lines    []string
	isSystem bool
}

// Options configures a TUI session.
type Options struct {
	// Path is where /save and /reload go by default.
	Path string
	// Paths is attached to reloaded files.
	Paths level.PathExpander
	// Theme is "dark", "light" or "plain".
	Theme string
}

// New creates a TUI model over the given session.
func New(ctx context.Context, sess *inspect.Session, opts Options) Model {
	th, _ := themeByName(opts.Theme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.PromptStyle = th.prompt

	return Model{
		ctx:     ctx,
		session: sess,
		path:    opts.Path,
		paths:   opts.Paths,
		theme:   th,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, sess *inspect.Session, opts Options) error {
	m := New(ctx, sess, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init returns the initial command that lists the file.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		f := m.session.File
		lines := []string{
			fmt.Sprintf("%s: %d lines. Type help for commands, /help for session commands.", f.Name, len(f.Lines)),
			"",
		}
		lines = append(lines, m.session.Exec(m.ctx, "list").Output...)
		return outputMsg{lines: lines}
	}
}

// Update handles key presses, window resizes and command output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
			}
			return m, nil

		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tea.MouseMsg:
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd

	case outputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(outputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	m.quitArmed = false

	if strings.EqualFold(input, "again") {
		if m.lastCmd == "" {
			m = m.appendOutput(outputMsg{input: input, lines: []string{"Nothing to repeat."}, isSystem: true})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	result := m.session.Exec(m.ctx, input)
	m = m.appendOutput(outputMsg{input: input, lines: result.Output})
	if c, ok := m.colorOf(input, result); ok {
		m.rawLines = append(m.rawLines[:len(m.rawLines)-1], rawLine{swatch: &c}, rawLine{})
		m.refreshViewport()
	}
	if result.Err != nil {
		m = m.appendOutput(outputMsg{lines: []string{result.Err.Error()}, isSystem: true})
	}
	return m, nil
}

// colorOf returns the value read by a successful "get <n> <param> color".
func (m Model) colorOf(input string, result inspect.Result) (types.Color, bool) {
	if result.Err != nil {
		return types.Color{}, false
	}
	cmd := inspect.Parse(input)
	args := strings.Fields(cmd.Rest)
	if cmd.Verb != "get" || len(args) != 3 || !strings.EqualFold(args[2], "color") {
		return types.Color{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(m.session.File.Lines) {
		return types.Color{}, false
	}
	c, err := m.session.File.Lines[n-1].Param(args[1]).AsColor()
	if err != nil {
		return types.Color{}, false
	}
	return c, true
}

// appendOutput adds lines to the transcript and refreshes the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}
	// Blank separator between commands.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		switch {
		case rl.swatch != nil:
			styled = append(styled, m.theme.swatch(*rl.swatch))
		case rl.text == "":
			styled = append(styled, "")
		case rl.isInput:
			styled = append(styled, m.theme.input.Render(wordWrap(rl.text, width)))
		case rl.isSystem:
			styled = append(styled, m.theme.system.Render("["+wordWrap(rl.text, width-2)+"]"))
		case rl.kind == kindText:
			styled = append(styled, m.theme.render(wordWrap(rl.text, width), rl.kind))
		default:
			// Structured rows keep their alignment.
			styled = append(styled, m.theme.render(rl.text, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Leading indentation is kept on the first line.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	trimmed := strings.TrimLeft(text, " ")
	result.WriteString(text[:len(text)-len(trimmed)])
	lineLen := len(text) - len(trimmed)

	for i, word := range strings.Fields(trimmed) {
		wLen := len(word)
		switch {
		case i == 0:
			result.WriteString(word)
			lineLen += wLen
		case lineLen+1+wLen > width:
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		default:
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}
	return result.String()
}

// View renders the layout: viewport, status bar, input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches session commands. Returns output lines and whether
// to quit.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	if cmd != "/quit" && cmd != "/exit" {
		m.quitArmed = false
	}

	switch cmd {
	case "/quit", "/exit":
		if m.session.Dirty && !m.quitArmed {
			m.quitArmed = true
			return []string{"Unsaved changes. /save first, or /quit again to discard them."}, false
		}
		return []string{"Goodbye."}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/reload":
		return m.cmdReload(), false

	case "/theme":
		return m.cmdTheme(arg), false

	case "/help":
		return m.cmdHelp(), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdSave(path string) []string {
	if path == "" {
		path = m.path
	}
	if path == "" {
		return []string{"Save failed: no file name. Use /save <path>."}
	}
	if err := m.session.File.Save(path); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	m.session.Dirty = false
	return []string{fmt.Sprintf("Saved to %s.", path)}
}

func (m *Model) cmdReload() []string {
	if m.path == "" {
		return []string{"Reload failed: session has no file."}
	}
	f, err := level.Load(m.ctx, m.path)
	if err != nil {
		return []string{fmt.Sprintf("Reload failed: %v", err)}
	}
	f.Paths = m.paths
	m.session.File = f
	m.session.Dirty = false
	return []string{fmt.Sprintf("Reloaded %s (%d lines).", m.path, len(f.Lines))}
}

func (m *Model) cmdTheme(name string) []string {
	if name == "" {
		return []string{"Theme: " + m.theme.name}
	}
	th, ok := themeByName(name)
	if !ok {
		return []string{fmt.Sprintf("Unknown theme %q. Use dark, light or plain.", name)}
	}
	m.theme = th
	m.input.PromptStyle = th.prompt
	m.refreshViewport()
	return []string{"Theme: " + th.name}
}

func (m *Model) cmdHelp() []string {
	help := []string{
		"Session:",
		"  /save [path]   Write the file (default: where it was loaded from)",
		"  /reload        Discard edits and read the file again",
		"  /theme [name]  Switch between dark, light and plain",
		"  /quit          Exit",
		"  /help          Show this help",
		"",
		"Commands:",
	}
	for _, line := range m.session.Exec(m.ctx, "help").Output {
		help = append(help, "  "+line)
	}
	help = append(help,
		"  again                        repeat the last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	)
	return help
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
