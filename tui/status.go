package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/leveldesc/scene"
)

// renderStatusBar produces a full-width status line showing the file name,
// its size, the number of placed objects and whether it has unsaved edits.
func (m Model) renderStatusBar() string {
	f := m.session.File

	name := f.Name
	if name == "" {
		name = "(unnamed)"
	}
	left := fmt.Sprintf(" %s | %d lines", filepath.Base(name), len(f.Lines))

	objects := len(f.FindAll(scene.ObjectSchema.Command()))
	right := fmt.Sprintf("Objects: %d ", objects)
	if m.session.Dirty {
		candidate := fmt.Sprintf("Objects: %d | modified ", objects)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = "* "
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return m.theme.statusBar.Width(m.width).Render(bar)
}
