// Package catalog derives the profile and plugin-scope vocabulary that the
// mode parser and pickers operate on. The raw scope list comes from the
// search provider; profiles are the union of instance ids across all scopes,
// and a scope belongs to a profile when one of its instances carries that
// profile id.
package catalog

import (
	"sort"
	"strings"
)

// Instance is a named instance namespace (e.g. a user workspace) exposed by
// a searchable scope.
type Instance struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Scope is a plugin-provided searchable source (e.g. "notes", "lists").
type Scope struct {
	PluginID  string     `yaml:"pluginId"`
	Label     string     `yaml:"label"`
	Instances []Instance `yaml:"instances"`
}

// Catalog holds the derived profile/scope vocabulary for one palette
// session. It is rebuilt whenever the provider's scope list is refetched.
type Catalog struct {
	scopes   []Scope
	profiles []Instance // distinct instances, first-seen labels, sorted by id
}

// New derives a catalog from the provider's scope list. A nil or empty list
// yields an empty catalog; the pickers then simply show no matches.
func New(scopes []Scope) *Catalog {
	c := &Catalog{scopes: scopes}
	seen := make(map[string]int)
	for _, s := range scopes {
		for _, inst := range s.Instances {
			if inst.ID == "" {
				continue
			}
			key := strings.ToLower(inst.ID)
			if _, ok := seen[key]; !ok {
				seen[key] = len(c.profiles)
				c.profiles = append(c.profiles, inst)
			}
		}
	}
	sort.Slice(c.profiles, func(i, j int) bool {
		return strings.ToLower(c.profiles[i].ID) < strings.ToLower(c.profiles[j].ID)
	})
	return c
}

// Profiles returns the distinct profiles, sorted by id.
func (c *Catalog) Profiles() []Instance {
	return c.profiles
}

// Scopes returns the raw scope list the catalog was built from.
func (c *Catalog) Scopes() []Scope {
	return c.scopes
}

// MatchProfile resolves a typed token to a profile id, case-insensitively.
// The returned id is the canonical (as-declared) spelling.
func (c *Catalog) MatchProfile(token string) (string, bool) {
	for _, p := range c.profiles {
		if strings.EqualFold(p.ID, token) {
			return p.ID, true
		}
	}
	return "", false
}

// ScopesForProfile returns the scopes that have an instance matching the
// given profile id, preserving provider order.
func (c *Catalog) ScopesForProfile(profileID string) []Scope {
	var out []Scope
	for _, s := range c.scopes {
		if scopeHasInstance(s, profileID) {
			out = append(out, s)
		}
	}
	return out
}

// MatchScope resolves a typed token to a plugin scope belonging to the given
// profile, case-insensitively against the plugin id. The returned id is the
// canonical spelling.
func (c *Catalog) MatchScope(profileID, token string) (string, bool) {
	for _, s := range c.ScopesForProfile(profileID) {
		if strings.EqualFold(s.PluginID, token) {
			return s.PluginID, true
		}
	}
	return "", false
}

func scopeHasInstance(s Scope, profileID string) bool {
	for _, inst := range s.Instances {
		if strings.EqualFold(inst.ID, profileID) {
			return true
		}
	}
	return false
}
