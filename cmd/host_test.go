package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/palette/internal/search"
	"github.com/oakwood-commons/palette/internal/ui"
)

func TestCliHostRecordsLaunch(t *testing.T) {
	h := &cliHost{}
	res := search.Result{
		PluginID: "notes",
		ID:       "n1",
		Title:    "Milk run",
		Launch:   search.Launch{PanelType: "note"},
	}

	require.True(t, h.Launch(res, ui.LaunchModal))
	require.NotNil(t, h.pending)
	assert.Equal(t, "modal", h.pending.Action)
	assert.Equal(t, "n1", h.pending.ID)
	assert.Empty(t, h.pending.Panel)
}

func TestCliHostReplaceCarriesPanel(t *testing.T) {
	h := &cliHost{panelID: "main"}
	res := search.Result{PluginID: "lists", ID: "l1", Launch: search.Launch{PanelType: "list"}}

	require.True(t, h.Launch(res, ui.LaunchReplace))
	assert.Equal(t, "main", h.pending.Panel)
}

func TestPrintPending(t *testing.T) {
	h := &cliHost{}

	var empty strings.Builder
	require.NoError(t, h.printPending(&empty))
	assert.Empty(t, empty.String())

	h.Launch(search.Result{
		PluginID: "lists",
		ID:       "l1",
		Title:    "Groceries",
		Launch:   search.Launch{PanelType: "list", Payload: map[string]string{"itemId": "i3"}},
	}, ui.LaunchWorkspace)

	var out strings.Builder
	require.NoError(t, h.printPending(&out))
	s := out.String()
	assert.Contains(t, s, "action: workspace")
	assert.Contains(t, s, "pluginId: lists")
	assert.Contains(t, s, "itemId: i3")
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "corpus", "panel", "no-color", "log-level", "debounce-ms", "width", "height"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.NotEmpty(t, rootCmd.Version)
}
