package search

import (
	"github.com/oakwood-commons/palette/internal/parser"
)

// PlanKind classifies what the UI must do after a state re-derivation.
type PlanKind int

const (
	// PlanNone: identity key unchanged, keep whatever is on screen.
	PlanNone PlanKind = iota
	// PlanClear: drop results synchronously; no fetch is justified.
	PlanClear
	// PlanFetch: mark loading and fetch under Plan.Token after the debounce.
	PlanFetch
)

// Plan is the scheduler's decision for one re-derivation.
type Plan struct {
	Kind    PlanKind
	Token   int
	Request Request
}

// Scheduler linearizes search requests. Every new identity key bumps a
// monotonically increasing token; a response (or debounce expiry) may only
// be applied while its token is still current. Superseded responses are
// silently dropped, never merged.
type Scheduler struct {
	token   int
	lastKey string
	hasKey  bool
}

// NewScheduler returns a scheduler with no request history.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Plan decides what to do for the freshly parsed state. Calling it again
// with an unchanged derived state is a no-op, so idempotent re-renders never
// refetch.
func (s *Scheduler) Plan(st parser.State) Plan {
	if !parser.Searchable(st) {
		if !s.hasKey && s.lastKey == "" {
			return Plan{Kind: PlanNone}
		}
		s.supersede()
		return Plan{Kind: PlanClear}
	}

	req := requestFor(st)
	key := Key(req.Query, req.Profile, req.Plugin)
	if s.hasKey && key == s.lastKey {
		return Plan{Kind: PlanNone}
	}

	s.token++
	s.lastKey = key
	s.hasKey = true

	// A fully empty, fully unscoped query never fetches. An empty query with
	// a confirmed profile or scope runs as a browse request.
	if req.Query == "" && req.Profile == "" && req.Plugin == "" {
		return Plan{Kind: PlanClear, Token: s.token}
	}
	return Plan{Kind: PlanFetch, Token: s.token, Request: req}
}

// Accept reports whether a response carrying the given token may still be
// applied. Strict at-most-one-applied: only the most recently issued request
// ever mutates visible state.
func (s *Scheduler) Accept(token int) bool {
	return token == s.token
}

// Reset clears all scheduling state on palette close. The token is bumped so
// any response still in flight is dropped on arrival.
func (s *Scheduler) Reset() {
	s.supersede()
}

func (s *Scheduler) supersede() {
	s.token++
	s.lastKey = ""
	s.hasKey = false
}

func requestFor(st parser.State) Request {
	switch v := st.(type) {
	case parser.Query:
		return Request{Query: v.Text, Profile: v.ProfileID, Plugin: v.ScopeID}
	case parser.Global:
		return Request{Query: v.Text}
	default:
		return Request{}
	}
}
