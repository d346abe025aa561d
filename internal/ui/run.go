package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// Run starts the Bubble Tea program for a palette model. Width/height of 0
// auto-detect the terminal size, falling back to 80x24. Extra ProgramOptions
// (e.g. custom IO for tests) can be provided to mirror tea.NewProgram.
func Run(m *Model, width, height int, opts ...tea.ProgramOption) (*Model, error) {
	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	m.width = width
	m.height = height
	opts = append(opts, tea.WithWindowSize(width, height))

	prog := tea.NewProgram(m, opts...)
	final, err := prog.Run()
	if fm, ok := final.(*Model); ok && fm != nil {
		return fm, err
	}
	return m, err
}
