// Package search defines the wire types exchanged with the search provider
// and the scheduling state machine that debounces and cancels in-flight
// requests. The scheduler is deliberately timer-free: it decides what should
// happen (nothing, clear, fetch under a new token) and the UI layer owns the
// actual debounce delay, so supersession invariants stay unit-testable.
package search

import "fmt"

// Request is the provider-facing search request. Profile and Plugin narrow
// the search when the corresponding picker step was confirmed; empty means
// unscoped.
type Request struct {
	Query   string
	Profile string
	Plugin  string
}

// Launch describes how a result opens in the host workspace.
type Launch struct {
	PanelType string            `yaml:"panelType"`
	Payload   map[string]string `yaml:"payload,omitempty"`
}

// ItemID returns the list-item id from the launch payload, or "" when the
// result does not target an individual item.
func (l Launch) ItemID() string {
	return l.Payload["itemId"]
}

// Result is a single search hit as delivered by the provider. Results are
// immutable once received; the engine only reorders and groups them.
type Result struct {
	PluginID   string  `yaml:"pluginId"`
	InstanceID string  `yaml:"instanceId"`
	ID         string  `yaml:"id"`
	Title      string  `yaml:"title"`
	Subtitle   string  `yaml:"subtitle,omitempty"`
	Snippet    string  `yaml:"snippet,omitempty"`
	Score      float64 `yaml:"score,omitempty"`
	Launch     Launch  `yaml:"launch"`
}

// Response is the provider's answer to one request.
type Response struct {
	Results  []Result
	TimingMs int64
}

// Key builds the identity key used to deduplicate scheduling. Two derived
// states with equal keys must never trigger a second fetch.
func Key(query, profile, plugin string) string {
	return fmt.Sprintf("%s::%s::%s", query, profile, plugin)
}
