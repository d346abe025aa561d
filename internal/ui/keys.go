package ui

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/palette/internal/parser"
)

type keyHandler func(*Model, tea.KeyMsg) tea.Cmd

// Key routing is an explicit dispatch table keyed by the routing context
// (menu open / picker mode / search mode), so the precedence rules stay
// auditable: an open menu always wins, Escape closes the menu before the
// palette, and unhandled keys fall through to text editing. While a menu is
// open, unhandled keys are swallowed instead.
var (
	menuKeys = map[string]keyHandler{
		"esc": func(m *Model, _ tea.KeyMsg) tea.Cmd { m.menu = nil; return nil },
		"up": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			m.menu.MoveFocus(-1)
			return nil
		},
		"down": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			m.menu.MoveFocus(1)
			return nil
		},
		"enter": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			return m.menu.Select(m)
		},
	}

	pickerKeys = map[string]keyHandler{
		"esc":       closePalette,
		"up":        func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveOptionFocus(-1); return nil },
		"down":      func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveOptionFocus(1); return nil },
		"enter":     confirmOption,
		"backspace": boundaryBackspace,
	}

	searchKeys = map[string]keyHandler{
		"esc":  closePalette,
		"up":   func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveResultFocus(-1); return nil },
		"down": func(m *Model, _ tea.KeyMsg) tea.Cmd { m.moveResultFocus(1); return nil },
		"right": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			if res := m.focusedResult(); res != nil {
				m.menu = actionMenu(m, *res)
			}
			return nil
		},
		"enter": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			if res := m.focusedResult(); res != nil {
				return m.launch(*res, LaunchModal)
			}
			return nil
		},
		"shift+enter": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			if res := m.focusedResult(); res != nil {
				return m.launch(*res, LaunchReplace)
			}
			return nil
		},
		"ctrl+o": func(m *Model, _ tea.KeyMsg) tea.Cmd {
			m.menu = settingsMenu(m)
			return nil
		},
		"backspace": boundaryBackspace,
	}
)

func closePalette(m *Model, _ tea.KeyMsg) tea.Cmd {
	return m.Close()
}

func confirmOption(m *Model, _ tea.KeyMsg) tea.Cmd {
	opts := m.visibleOptions()
	if len(opts) == 0 {
		return nil
	}
	idx := m.optionIndex
	if idx >= len(opts) {
		idx = len(opts) - 1
	}
	o := opts[idx]

	switch o.Kind {
	case OptionCommand:
		return m.setInput("/" + o.ID + " ")
	case OptionProfile, OptionScope:
		return m.setInput(parser.ConfirmedPrefix(m.state, o.ID))
	case OptionAll:
		switch st := m.state.(type) {
		case parser.Profile:
			m.skip.Profile = true
			return m.setInput("/" + parser.CommandSearch + " ")
		case parser.Scope:
			m.skip.Scope = true
			return m.setInput("/" + parser.CommandSearch + " " + st.ProfileID + " ")
		}
	}
	return nil
}

// boundaryBackspace steps a picker backward when the caret sits at the end
// of the input and the trailing segment is empty; anywhere else backspace
// is ordinary text editing. The cursor position is a rune index, so the
// end-of-input comparison must count runes, not bytes.
func boundaryBackspace(m *Model, msg tea.KeyMsg) tea.Cmd {
	if m.input.Position() == utf8.RuneCountInString(m.input.Value()) {
		if in, next, ok := parser.StepBack(m.state, m.skip); ok {
			m.skip = next
			return m.setInput(in)
		}
	}
	return m.editInput(msg)
}

func (m *Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.menu != nil {
		if h, ok := menuKeys[key]; ok {
			return m, h(m, msg)
		}
		// Menus are modal: everything else is swallowed.
		return m, nil
	}

	table := pickerKeys
	if parser.Searchable(m.state) {
		table = searchKeys
	}
	if h, ok := table[key]; ok {
		return m, h(m, msg)
	}
	return m, m.editInput(msg)
}

// editInput forwards a key to the text input and re-derives state when the
// value changed.
func (m *Model) editInput(msg tea.Msg) tea.Cmd {
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.deriveState()
		return tea.Batch(cmd, m.schedule())
	}
	return cmd
}

func (m *Model) moveOptionFocus(delta int) {
	n := len(m.visibleOptions())
	if n == 0 {
		return
	}
	m.optionIndex = ((m.optionIndex+delta)%n + n) % n
}

func (m *Model) moveResultFocus(delta int) {
	n := len(m.ordered)
	if n == 0 {
		return
	}
	m.resultIndex = ((m.resultIndex+delta)%n + n) % n
}
