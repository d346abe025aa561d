package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/palette/internal/parser"
)

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

// render assembles the palette: input line, option or result list, an
// optional menu overlay, status line, key hints.
func (m *Model) render() string {
	var b strings.Builder

	b.WriteString(m.style(m.Theme.Prompt, "❯ "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.menu != nil {
		b.WriteString(m.renderMenu())
	} else if parser.Searchable(m.state) {
		b.WriteString(m.renderResults())
	} else {
		b.WriteString(m.renderOptions())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHints())
	return b.String()
}

func (m *Model) renderOptions() string {
	opts := m.visibleOptions()
	if len(opts) == 0 {
		return m.style(m.Theme.Dimmed, "  (no matches)") + "\n"
	}
	if m.optionIndex >= len(opts) {
		m.optionIndex = len(opts) - 1
	}

	var b strings.Builder
	for i, o := range opts {
		prefix := "  "
		if i == m.optionIndex {
			prefix = "▸ "
		}
		line := prefix + o.Label
		if o.Description != "" {
			line += "  " + m.style(m.Theme.Dimmed, o.Description)
		}
		if i == m.optionIndex {
			line = m.style(m.Theme.Selected, prefix+o.Label) + descSuffix(m, o.Description)
		}
		b.WriteString(m.truncate(line))
		b.WriteString("\n")
	}
	return b.String()
}

func descSuffix(m *Model, desc string) string {
	if desc == "" {
		return ""
	}
	return "  " + m.style(m.Theme.Dimmed, desc)
}

func (m *Model) renderResults() string {
	if len(m.entries) == 0 {
		if m.loading {
			return m.style(m.Theme.Dimmed, "  Searching…") + "\n"
		}
		return m.style(m.Theme.Dimmed, "  (no results)") + "\n"
	}
	m.clampResultIndex()

	maxVisible := m.height - 7 // input, blanks, status, hints
	if maxVisible < 3 {
		maxVisible = 3
	}

	// Window the entry list so the focused result stays visible.
	focusEntry := 0
	for i, e := range m.entries {
		if !e.IsHeader() && e.Index == m.resultIndex {
			focusEntry = i
			break
		}
	}
	start := 0
	if focusEntry >= maxVisible {
		start = focusEntry - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	var b strings.Builder
	for _, e := range m.entries[start:end] {
		if e.IsHeader() {
			b.WriteString(m.style(m.Theme.Header, e.Header))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.truncate(m.renderResultRow(e.Index)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderResultRow(idx int) string {
	res := m.ordered[idx]
	focused := idx == m.resultIndex

	prefix := "  "
	if focused {
		prefix = "▸ "
	}
	icon := ""
	if m.ResolveIcon != nil {
		if ic := m.ResolveIcon(res); ic != "" {
			icon = ic + " "
		}
	}

	title := res.Title
	if focused {
		title = m.style(m.Theme.Selected, title)
	}
	line := prefix + icon + title
	if res.Subtitle != "" {
		line += m.style(m.Theme.Dimmed, " — "+res.Subtitle)
	}
	if snippet := flattenSnippet(res.Snippet); snippet != "" {
		line += m.style(m.Theme.Dimmed, "  "+snippet)
	}
	return line
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	if m.menu.Title != "" {
		b.WriteString(m.style(m.Theme.Header, m.menu.Title))
		b.WriteString("\n")
	}
	lastSection := ""
	for i, e := range m.menu.Entries {
		if e.Section != "" && e.Section != lastSection {
			b.WriteString(m.style(m.Theme.Header, e.Section))
			b.WriteString("\n")
			lastSection = e.Section
		}
		prefix := "  "
		if i == m.menu.Focus {
			prefix = "▸ "
		}
		check := "  "
		if e.Selected {
			check = m.style(m.Theme.Checkmark, "✓ ")
		}
		label := e.Label
		switch {
		case e.Disabled:
			label = m.style(m.Theme.Disabled, label)
		case i == m.menu.Focus:
			label = m.style(m.Theme.Selected, label)
		}
		b.WriteString(prefix + check + label)
		b.WriteString("\n")
	}
	body := strings.TrimRight(b.String(), "\n")
	if m.NoColor {
		return body + "\n"
	}
	return m.Theme.MenuBorder.Render(body) + "\n"
}

func (m *Model) renderStatus() string {
	switch {
	case m.statusErr:
		return m.style(m.Theme.StatusErr, m.statusMsg)
	case m.loading:
		return m.style(m.Theme.StatusInfo, "Searching…")
	case parser.Searchable(m.state) && len(m.ordered) > 0:
		return m.style(m.Theme.StatusInfo, fmt.Sprintf("%d/%d · sort: %s · group: %s",
			m.resultIndex+1, len(m.ordered), m.sortMode, m.groupMode))
	case m.statusMsg != "":
		return m.style(m.Theme.StatusInfo, m.statusMsg)
	default:
		return ""
	}
}

func (m *Model) renderHints() string {
	var hint string
	switch {
	case m.menu != nil:
		hint = "↑↓ navigate  Enter select  Esc close menu"
	case parser.Searchable(m.state):
		hint = "↑↓ navigate  Enter open  → actions  Ctrl+O sort/group  Esc close"
	default:
		hint = "↑↓ navigate  Enter confirm  Esc close"
	}
	return m.style(m.Theme.Dimmed, hint)
}

func (m *Model) truncate(line string) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	if runewidth.StringWidth(line) > width {
		return runewidth.Truncate(line, width, "…")
	}
	return line
}
