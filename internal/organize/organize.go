// Package organize reorders and groups a received result set into the flat
// display sequence the palette renders. Results are never mutated; every
// mode is a pure function of the raw slice, and all orderings are stable so
// server order survives as the tiebreak.
package organize

import (
	"sort"

	"github.com/oakwood-commons/palette/internal/search"
)

// SortMode selects the ordering applied before grouping.
type SortMode string

// GroupMode selects how the ordered list is split under headers.
type GroupMode string

const (
	SortRelevance SortMode = "relevance" // preserve server order
	SortItems     SortMode = "items"     // list items, lists, notes, other
	SortPlugin    SortMode = "plugin"    // plugin id, lexicographic

	GroupNone   GroupMode = "none"
	GroupPlugin GroupMode = "plugin"
	GroupType   GroupMode = "type"
)

// DefaultSort and DefaultGroup are the fallbacks when no valid preference
// is persisted.
const (
	DefaultSort  = SortRelevance
	DefaultGroup = GroupNone
)

// ParseSortMode validates a persisted sort mode value.
func ParseSortMode(s string) (SortMode, bool) {
	switch SortMode(s) {
	case SortRelevance, SortItems, SortPlugin:
		return SortMode(s), true
	}
	return DefaultSort, false
}

// ParseGroupMode validates a persisted group mode value.
func ParseGroupMode(s string) (GroupMode, bool) {
	switch GroupMode(s) {
	case GroupNone, GroupPlugin, GroupType:
		return GroupMode(s), true
	}
	return DefaultGroup, false
}

// Kind is the type bucket a result falls into for items-first sorting and
// by-type grouping.
type Kind int

const (
	KindItem Kind = iota // launch payload targets an individual list item
	KindList
	KindNote
	KindOther
)

// Label returns the header text for a type bucket.
func (k Kind) Label() string {
	switch k {
	case KindItem:
		return "List items"
	case KindList:
		return "Lists"
	case KindNote:
		return "Notes"
	default:
		return "Other"
	}
}

// KindOf classifies a result. A launch payload carrying an item id always
// wins over the panel type.
func KindOf(r search.Result) Kind {
	if r.Launch.ItemID() != "" {
		return KindItem
	}
	switch r.Launch.PanelType {
	case "list":
		return KindList
	case "note":
		return KindNote
	default:
		return KindOther
	}
}

// Entry is one row of the display sequence: either a header or a result.
// Result entries carry the index of the result in the returned flat order,
// which is what the focus cursor moves over.
type Entry struct {
	Header string
	Result *search.Result
	Index  int
}

// IsHeader reports whether the entry is a section header.
func (e Entry) IsHeader() bool {
	return e.Result == nil
}

// Sort returns the results reordered per the sort mode. The input slice is
// left untouched.
func Sort(results []search.Result, mode SortMode) []search.Result {
	out := make([]search.Result, len(results))
	copy(out, results)
	switch mode {
	case SortItems:
		sort.SliceStable(out, func(i, j int) bool {
			return KindOf(out[i]) < KindOf(out[j])
		})
	case SortPlugin:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PluginID < out[j].PluginID
		})
	}
	return out
}

// Group converts a sorted result list into the display sequence, returning
// the final flat result order alongside it. Grouping may pull results
// together under their header, so the flat order can differ from the sorted
// input; the focus cursor always indexes the returned flat order.
func Group(sorted []search.Result, mode GroupMode) ([]search.Result, []Entry) {
	switch mode {
	case GroupPlugin:
		return groupBy(sorted, func(r search.Result) string { return r.PluginID }, nil)
	case GroupType:
		order := []Kind{KindItem, KindList, KindNote, KindOther}
		keys := make([]string, 0, len(order))
		for _, k := range order {
			keys = append(keys, k.Label())
		}
		return groupBy(sorted, func(r search.Result) string { return KindOf(r).Label() }, keys)
	default:
		entries := make([]Entry, 0, len(sorted))
		for i := range sorted {
			entries = append(entries, Entry{Result: &sorted[i], Index: i})
		}
		return sorted, entries
	}
}

// Organize applies sort then group in one step.
func Organize(results []search.Result, s SortMode, g GroupMode) ([]search.Result, []Entry) {
	return Group(Sort(results, s), g)
}

// groupBy buckets results by key. With fixedOrder nil, headers appear in
// first-seen order; otherwise only the listed keys render, in that order,
// skipping empty groups.
func groupBy(sorted []search.Result, key func(search.Result) string, fixedOrder []string) ([]search.Result, []Entry) {
	buckets := make(map[string][]search.Result)
	var seen []string
	for _, r := range sorted {
		k := key(r)
		if _, ok := buckets[k]; !ok {
			seen = append(seen, k)
		}
		buckets[k] = append(buckets[k], r)
	}

	order := fixedOrder
	if order == nil {
		order = seen
	}

	flat := make([]search.Result, 0, len(sorted))
	entries := make([]Entry, 0, len(sorted)+len(order))
	for _, k := range order {
		group := buckets[k]
		if len(group) == 0 {
			continue
		}
		entries = append(entries, Entry{Header: k})
		for _, r := range group {
			flat = append(flat, r)
			entries = append(entries, Entry{Result: &flat[len(flat)-1], Index: len(flat) - 1})
		}
	}
	return flat, entries
}
