package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/nathoo/leveldesc/types"
)

// theme holds every style the TUI renders with.
type theme struct {
	name      string
	statusBar lipgloss.Style
	prompt    lipgloss.Style
	input     lipgloss.Style
	text      lipgloss.Style
	header    lipgloss.Style
	index     lipgloss.Style
	param     lipgloss.Style
	dim       lipgloss.Style
	ok        lipgloss.Style
	warning   lipgloss.Style
	err       lipgloss.Style
	system    lipgloss.Style
}

func darkTheme() theme {
	return theme{
		name: "dark",
		statusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		input:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		index:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		param:   lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		system:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

func lightTheme() theme {
	return theme{
		name: "light",
		statusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("235")).
			Bold(true),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		input:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		index:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		param:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		system:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func plainTheme() theme {
	s := lipgloss.NewStyle()
	return theme{
		name:      "plain",
		statusBar: s.Reverse(true),
		prompt:    s, input: s, text: s, header: s, index: s, param: s,
		dim: s, ok: s, warning: s, err: s, system: s,
	}
}

// themeByName returns the named palette, falling back to dark.
func themeByName(name string) (theme, bool) {
	switch strings.ToLower(name) {
	case "dark", "":
		return darkTheme(), true
	case "light":
		return lightTheme(), true
	case "plain":
		return plainTheme(), true
	}
	return darkTheme(), false
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindText lineKind = iota
	kindHeader
	kindListing
	kindParam
	kindDefault
	kindOK
	kindWarning
	kindError
)

// classifyLine determines what kind of inspector output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "error:"):
		return kindError
	case strings.HasPrefix(line, "warning:"):
		return kindWarning
	case strings.HasPrefix(line, "ok:"):
		return kindOK
	case strings.HasSuffix(line, "(default)"):
		return kindDefault
	case strings.HasPrefix(line, "  ") && strings.Contains(line, " = "):
		return kindParam
	case isListing(line):
		return kindListing
	case strings.HasSuffix(line, ")") && strings.Contains(line, "  (") && !strings.HasPrefix(line, " "):
		return kindHeader
	default:
		return kindText
	}
}

// isListing matches the "%3d  text" rows printed by list.
func isListing(line string) bool {
	idx, rest, ok := strings.Cut(strings.TrimLeft(line, " "), "  ")
	if !ok || idx == "" || rest == "" {
		return false
	}
	for _, r := range idx {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t theme) render(line string, kind lineKind) string {
	switch kind {
	case kindHeader:
		return t.header.Render(line)
	case kindListing:
		trimmed := strings.TrimLeft(line, " ")
		pad := line[:len(line)-len(trimmed)]
		idx, rest, _ := strings.Cut(trimmed, "  ")
		return t.index.Render(pad+idx) + "  " + t.text.Render(rest)
	case kindParam:
		name, value, _ := strings.Cut(line, " = ")
		return t.param.Render(name) + " = " + t.text.Render(value)
	case kindDefault:
		return t.dim.Render(line)
	case kindOK:
		return t.ok.Render(line)
	case kindWarning:
		return t.warning.Render(line)
	case kindError:
		return t.err.Render(line)
	default:
		return t.text.Render(line)
	}
}

// swatch renders a block in the given colour followed by its hex code.
// Alpha is dropped; the terminal has nothing to blend against.
func (t theme) swatch(c types.Color) string {
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	if t.name == "plain" {
		block = "    "
	}
	return block + " " + t.text.Render(hex)
}
