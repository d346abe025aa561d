package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/palette/internal/search"
	"github.com/oakwood-commons/palette/internal/ui"
)

// cliHost is the workspace stand-in for the standalone binary: there are no
// real panels, so it records the launch the user picked and the command
// prints it as a directive after the TUI exits.
type cliHost struct {
	panelID string

	pending *launchDirective
}

type launchDirective struct {
	Action    string            `yaml:"action"`
	PluginID  string            `yaml:"pluginId"`
	ID        string            `yaml:"id"`
	Title     string            `yaml:"title"`
	PanelType string            `yaml:"panelType"`
	Payload   map[string]string `yaml:"payload,omitempty"`
	Panel     string            `yaml:"panel,omitempty"`
}

func (h *cliHost) SelectedPanelID() string { return h.panelID }

func (h *cliHost) Launch(res search.Result, action ui.LaunchAction) bool {
	h.pending = &launchDirective{
		Action:    string(action),
		PluginID:  res.PluginID,
		ID:        res.ID,
		Title:     res.Title,
		PanelType: res.Launch.PanelType,
		Payload:   res.Launch.Payload,
	}
	if action == ui.LaunchReplace {
		h.pending.Panel = h.panelID
	}
	return true
}

// printPending writes the recorded launch directive to w, if any. Called
// after the program exits so the output lands on the normal screen.
func (h *cliHost) printPending(w io.Writer) error {
	if h.pending == nil {
		return nil
	}
	data, err := yaml.Marshal(h.pending)
	if err != nil {
		return fmt.Errorf("encode launch directive: %w", err)
	}
	_, err = w.Write(data)
	return err
}
