package ui

import (
	"strings"

	"github.com/oakwood-commons/palette/internal/parser"
)

// OptionKind tags what an option row confirms when selected.
type OptionKind int

const (
	OptionCommand OptionKind = iota
	OptionProfile
	OptionScope
	OptionAll // the "All" entry that skips a picker step
)

// Option is one selectable suggestion row in a picker mode. Options are
// ephemeral: the list is rebuilt from the catalog and the current filter on
// every render.
type Option struct {
	Kind        OptionKind
	ID          string
	Label       string
	Description string
	ProfileID   string // owning profile for scope options
}

// visibleOptions builds the picker list for the current state. Non-picker
// states have no options.
func (m *Model) visibleOptions() []Option {
	switch st := m.state.(type) {
	case parser.Idle, parser.Command:
		filter := ""
		if c, ok := st.(parser.Command); ok {
			filter = c.Filter
		}
		return filterOptions(commandOptions(), filter)
	case parser.Profile:
		opts := []Option{{Kind: OptionAll, ID: "all", Label: "All", Description: "Search every profile"}}
		for _, p := range m.catalog.Profiles() {
			opts = append(opts, Option{Kind: OptionProfile, ID: p.ID, Label: p.ID, Description: p.Label})
		}
		return filterOptions(opts, st.Filter)
	case parser.Scope:
		opts := []Option{{Kind: OptionAll, ID: "all", Label: "All", Description: "Search every source", ProfileID: st.ProfileID}}
		for _, s := range m.catalog.ScopesForProfile(st.ProfileID) {
			opts = append(opts, Option{Kind: OptionScope, ID: s.PluginID, Label: s.PluginID, Description: s.Label, ProfileID: st.ProfileID})
		}
		return filterOptions(opts, st.Filter)
	default:
		return nil
	}
}

func commandOptions() []Option {
	return []Option{
		{Kind: OptionCommand, ID: parser.CommandSearch, Label: "Search", Description: "Search notes, lists and other sources"},
		{Kind: OptionCommand, ID: parser.CommandPinned, Label: "Pinned", Description: "Show pinned items"},
	}
}

// filterOptions keeps options whose id starts with the typed fragment,
// case-insensitively. The "All" entry only shows on an empty filter: once
// the user types, they are narrowing to a concrete choice.
func filterOptions(opts []Option, filter string) []Option {
	if filter == "" {
		return opts
	}
	lower := strings.ToLower(filter)
	var out []Option
	for _, o := range opts {
		if o.Kind == OptionAll {
			continue
		}
		if strings.HasPrefix(strings.ToLower(o.ID), lower) {
			out = append(out, o)
		}
	}
	return out
}
