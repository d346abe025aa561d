package ui

import (
	"charm.land/lipgloss/v2"
)

// Theme holds the palette's colors. A single built-in theme keeps the
// rendering code uniform; NoColor mode bypasses styling entirely.
type Theme struct {
	Prompt     lipgloss.Style
	InputText  lipgloss.Style
	Selected   lipgloss.Style
	Dimmed     lipgloss.Style
	Header     lipgloss.Style
	StatusErr  lipgloss.Style
	StatusInfo lipgloss.Style
	MenuBorder lipgloss.Style
	Checkmark  lipgloss.Style
	Disabled   lipgloss.Style
}

// DefaultTheme returns the built-in color theme.
func DefaultTheme() Theme {
	accent := lipgloss.Color("212")
	dim := lipgloss.Color("243")
	return Theme{
		Prompt:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		InputText:  lipgloss.NewStyle(),
		Selected:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Dimmed:     lipgloss.NewStyle().Foreground(dim),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true),
		StatusErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusInfo: lipgloss.NewStyle().Foreground(dim),
		MenuBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		Checkmark:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Disabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// ThemeColors is the configurable color subset of the theme. Empty fields
// keep the built-in color.
type ThemeColors struct {
	Accent   string `yaml:"accent,omitempty"`
	Dim      string `yaml:"dim,omitempty"`
	Header   string `yaml:"header,omitempty"`
	Error    string `yaml:"error,omitempty"`
	Check    string `yaml:"check,omitempty"`
	Disabled string `yaml:"disabled,omitempty"`
}

// ApplyColors returns a copy of the theme with any non-empty overrides
// applied.
func (t Theme) ApplyColors(c ThemeColors) Theme {
	if c.Accent != "" {
		col := lipgloss.Color(c.Accent)
		t.Prompt = t.Prompt.Foreground(col)
		t.Selected = t.Selected.Foreground(col)
	}
	if c.Dim != "" {
		col := lipgloss.Color(c.Dim)
		t.Dimmed = t.Dimmed.Foreground(col)
		t.StatusInfo = t.StatusInfo.Foreground(col)
		t.MenuBorder = t.MenuBorder.BorderForeground(col)
	}
	if c.Header != "" {
		t.Header = t.Header.Foreground(lipgloss.Color(c.Header))
	}
	if c.Error != "" {
		t.StatusErr = t.StatusErr.Foreground(lipgloss.Color(c.Error))
	}
	if c.Check != "" {
		t.Checkmark = t.Checkmark.Foreground(lipgloss.Color(c.Check))
	}
	if c.Disabled != "" {
		t.Disabled = t.Disabled.Foreground(lipgloss.Color(c.Disabled))
	}
	return t
}

// style applies st unless the model runs in no-color mode.
func (m *Model) style(st lipgloss.Style, s string) string {
	if m.NoColor {
		return s
	}
	return st.Render(s)
}
