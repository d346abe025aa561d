// Package prefs persists the palette's sort and group preferences in a
// small on-disk key-value store. Values are validated against the organize
// enums on load; unknown or corrupt values fall back to the defaults
// silently, so a bad store never surfaces to the user.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/peterbourgon/diskv/v3"

	"github.com/oakwood-commons/palette/internal/organize"
)

const (
	sortKey  = "sort-mode"
	groupKey = "group-mode"
)

// Store wraps a diskv store holding the two preference keys.
type Store struct {
	d   *diskv.Diskv
	log logr.Logger
}

// Open creates a store rooted at basePath, creating the directory lazily on
// first write.
func Open(basePath string, log logr.Logger) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 4 * 1024,
		}),
		log: log,
	}
}

// DefaultBasePath returns the per-user preference directory, falling back to
// a relative path when the user config dir cannot be resolved.
func DefaultBasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".palette", "prefs")
	}
	return filepath.Join(dir, "palette", "prefs")
}

// Load reads both preferences, applying defaults for missing or invalid
// values.
func (s *Store) Load() (organize.SortMode, organize.GroupMode) {
	sortMode := organize.DefaultSort
	groupMode := organize.DefaultGroup

	if raw, err := s.d.Read(sortKey); err == nil {
		if m, ok := organize.ParseSortMode(string(raw)); ok {
			sortMode = m
		} else {
			s.log.V(1).Info("ignoring invalid persisted sort mode", "value", string(raw))
		}
	}
	if raw, err := s.d.Read(groupKey); err == nil {
		if m, ok := organize.ParseGroupMode(string(raw)); ok {
			groupMode = m
		} else {
			s.log.V(1).Info("ignoring invalid persisted group mode", "value", string(raw))
		}
	}
	return sortMode, groupMode
}

// SetSort persists the sort mode. Write failures are logged, never fatal.
func (s *Store) SetSort(m organize.SortMode) {
	if err := s.d.Write(sortKey, []byte(m)); err != nil {
		s.log.Error(err, "persist sort mode", "value", string(m))
	}
}

// SetGroup persists the group mode.
func (s *Store) SetGroup(m organize.GroupMode) {
	if err := s.d.Write(groupKey, []byte(m)); err != nil {
		s.log.Error(err, "persist group mode", "value", string(m))
	}
}
