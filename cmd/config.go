package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/palette/internal/ui"
)

// fileConfig is the on-disk YAML config. All fields are optional; pointer
// fields distinguish "absent" from a zero value so CLI flags can take
// precedence only when explicitly set.
type fileConfig struct {
	DebounceMs *int           `yaml:"debounce_ms,omitempty"`
	NoColor    *bool          `yaml:"no_color,omitempty"`
	Corpus     string         `yaml:"corpus,omitempty"`
	Theme      ui.ThemeColors `yaml:"theme,omitempty"`
}

// resolveConfigPath returns the explicit path if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/palette/config.yaml) or ~/.config/palette/config.yaml if
// present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, "palette", "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", "palette", "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadConfig reads and decodes a config file. An empty path yields the zero
// config; a present but unreadable or malformed file is an error so typos do
// not silently disable settings.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
