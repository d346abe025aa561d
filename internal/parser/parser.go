// Package parser classifies the palette's raw input line into one of six
// input modes and extracts the partial or confirmed profile/scope/query
// selections. Parsing is re-run in full on every keystroke; the rules are
// evaluated top-down so each input maps to exactly one state.
package parser

import (
	"strings"

	"github.com/oakwood-commons/palette/internal/catalog"
	"github.com/oakwood-commons/palette/internal/grammar"
)

// The two fixed slash commands. Anything else typed after "/" just filters
// this pair in the command picker.
const (
	CommandSearch = "search"
	CommandPinned = "pinned"
)

// PinnedQuery is the literal global query the /pinned command expands to.
const PinnedQuery = "tag:pinned"

// Skip records the per-session "All" selections that bypass a picker step.
// Flags persist until the palette closes or the user backspaces past the
// skipped segment.
type Skip struct {
	Profile bool
	Scope   bool
}

// Parse derives the current input state from the raw input line, the scope
// catalog, and the session's skip flags. A token counts as confirmed only
// when more input follows it or it is immediately followed by whitespace;
// until then the user is still mid-word and the mode does not advance.
func Parse(input string, cat *catalog.Catalog, skip Skip) State {
	if input == "" {
		return Command{}
	}
	if !strings.HasPrefix(input, "/") {
		return Global{Text: input}
	}

	cmd, rest, trailing := grammar.FirstToken(input[1:])
	if cmd == "" {
		return Command{}
	}
	lower := strings.ToLower(cmd)

	if strings.HasPrefix(CommandPinned, lower) {
		if lower == CommandPinned {
			return Global{Text: PinnedQuery}
		}
		// Still typing "pinned"; keep the suggestion list up.
		return Command{Filter: cmd}
	}

	if !strings.HasPrefix(CommandSearch, lower) {
		return Command{Filter: cmd}
	}
	confirmed := lower == CommandSearch && (rest != "" || trailing)
	if !confirmed {
		return Command{Filter: cmd}
	}

	return parseSearch(rest, cat, skip)
}

// parseSearch handles everything after a confirmed "/search ".
func parseSearch(rest string, cat *catalog.Catalog, skip Skip) State {
	if skip.Profile {
		return Query{Text: strings.TrimSpace(rest)}
	}

	profTok, afterProfile, trailing := grammar.FirstToken(rest)
	if profTok == "" {
		return Profile{}
	}
	profileID, known := cat.MatchProfile(profTok)
	profileConfirmed := known && (afterProfile != "" || trailing)
	if !profileConfirmed {
		return Profile{Filter: profTok}
	}

	return parseScope(profileID, afterProfile, cat, skip)
}

// parseScope handles everything after a confirmed profile token.
func parseScope(profileID, rest string, cat *catalog.Catalog, skip Skip) State {
	if skip.Scope {
		return Query{ProfileID: profileID, Text: strings.TrimSpace(rest)}
	}

	scopeTok, afterScope, trailing := grammar.FirstToken(rest)
	if scopeTok == "" {
		return Scope{ProfileID: profileID}
	}
	scopeID, known := cat.MatchScope(profileID, scopeTok)
	scopeConfirmed := known && (afterScope != "" || trailing)
	if !scopeConfirmed {
		return Scope{ProfileID: profileID, Filter: scopeTok}
	}

	tokens, _ := grammar.Tokenize(afterScope)
	return Query{ProfileID: profileID, ScopeID: scopeID, Text: grammar.JoinRest(tokens, 0)}
}

// ConfirmedPrefix returns the input line that confirms the given selection,
// i.e. what the input is rewritten to when a picker option is chosen with
// Enter. The trailing space is what makes the token confirmed on re-parse.
func ConfirmedPrefix(st State, selection string) string {
	switch s := st.(type) {
	case Command, Idle:
		return "/" + selection + " "
	case Profile:
		return "/" + CommandSearch + " " + selection + " "
	case Scope:
		return "/" + CommandSearch + " " + s.ProfileID + " " + selection + " "
	default:
		return ""
	}
}

// StepBack computes the backspace-at-boundary rewrite: the previous
// confirmed prefix, plus which skip flag (if any) the step clears. It
// applies only when the state's trailing segment is empty; otherwise
// backspace is ordinary text editing and handled=false.
func StepBack(st State, skip Skip) (input string, next Skip, handled bool) {
	next = skip
	switch s := st.(type) {
	case Profile:
		if s.Filter != "" {
			return "", skip, false
		}
		// Reopen the command picker with /search still typed but unconfirmed.
		return "/" + CommandSearch, next, true
	case Scope:
		if s.Filter != "" {
			return "", skip, false
		}
		return "/" + CommandSearch + " ", next, true
	case Query:
		if s.Text != "" {
			return "", skip, false
		}
		switch {
		case s.ScopeID != "":
			// Drop the confirmed scope token, reopening the scope picker.
			return "/" + CommandSearch + " " + s.ProfileID + " ", next, true
		case skip.Scope && s.ProfileID != "":
			next.Scope = false
			return "/" + CommandSearch + " " + s.ProfileID + " ", next, true
		case skip.Profile:
			next.Profile = false
			return "/" + CommandSearch + " ", next, true
		case s.ProfileID != "":
			// Scoped only by profile with no skip on record; fall back to
			// the scope picker for that profile.
			return "/" + CommandSearch + " " + s.ProfileID + " ", next, true
		default:
			return "/" + CommandSearch + " ", next, true
		}
	default:
		return "", skip, false
	}
}
