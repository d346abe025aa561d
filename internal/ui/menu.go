package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/palette/internal/organize"
	"github.com/oakwood-commons/palette/internal/search"
)

// MenuEntry is one row of a transient popup menu. Disabled entries are
// focusable but not selectable; Selected draws a checkmark.
type MenuEntry struct {
	ID       string
	Label    string
	Section  string
	Disabled bool
	Selected bool
	OnSelect func(*Model) tea.Cmd
}

// Menu is a transient popup. Menus are fully rebuilt on open and own their
// focus index; at most one menu is open at a time.
type Menu struct {
	Title   string
	Entries []MenuEntry
	Focus   int
}

// MoveFocus moves the menu focus by delta with wraparound. Disabled entries
// stay focusable so the user can see why they are unavailable.
func (mn *Menu) MoveFocus(delta int) {
	n := len(mn.Entries)
	if n == 0 {
		return
	}
	mn.Focus = ((mn.Focus+delta)%n + n) % n
}

// Select executes the focused entry. Selecting a disabled entry is a no-op.
func (mn *Menu) Select(m *Model) tea.Cmd {
	if mn.Focus < 0 || mn.Focus >= len(mn.Entries) {
		return nil
	}
	e := mn.Entries[mn.Focus]
	if e.Disabled || e.OnSelect == nil {
		return nil
	}
	return e.OnSelect(m)
}

// actionMenu builds the contextual launch menu for the focused result.
// Replace stays disabled unless the host currently has a panel selected.
func actionMenu(m *Model, res search.Result) *Menu {
	replaceDisabled := m.host == nil || m.host.SelectedPanelID() == ""
	launch := func(action LaunchAction) func(*Model) tea.Cmd {
		return func(m *Model) tea.Cmd {
			m.menu = nil
			return m.launch(res, action)
		}
	}
	return &Menu{
		Title: res.Title,
		Entries: []MenuEntry{
			{ID: "open", Label: "Open", OnSelect: launch(LaunchModal)},
			{ID: "workspace", Label: "Open in workspace", OnSelect: launch(LaunchWorkspace)},
			{ID: "pin", Label: "Pin", OnSelect: launch(LaunchPin)},
			{ID: "replace", Label: "Replace current panel", Disabled: replaceDisabled, OnSelect: launch(LaunchReplace)},
		},
	}
}

// settingsMenu builds the sort/group menu: three sort options and three
// group options under two section headers, checkmark on the active choice.
func settingsMenu(m *Model) *Menu {
	sortEntry := func(id string, label string, mode organize.SortMode) MenuEntry {
		return MenuEntry{
			ID: "sort-" + id, Label: label, Section: "Sort by",
			Selected: m.sortMode == mode,
			OnSelect: func(m *Model) tea.Cmd {
				m.setSortMode(mode)
				m.menu = nil
				return nil
			},
		}
	}
	groupEntry := func(id string, label string, mode organize.GroupMode) MenuEntry {
		return MenuEntry{
			ID: "group-" + id, Label: label, Section: "Group by",
			Selected: m.groupMode == mode,
			OnSelect: func(m *Model) tea.Cmd {
				m.setGroupMode(mode)
				m.menu = nil
				return nil
			},
		}
	}
	return &Menu{
		Title: "Sort & group",
		Entries: []MenuEntry{
			sortEntry("relevance", "Relevance", organize.SortRelevance),
			sortEntry("items", "Items first", organize.SortItems),
			sortEntry("plugin", "Plugin", organize.SortPlugin),
			groupEntry("none", "None", organize.GroupNone),
			groupEntry("plugin", "Plugin", organize.GroupPlugin),
			groupEntry("type", "Type", organize.GroupType),
		},
	}
}
