package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/palette/internal/prefs"
	"github.com/oakwood-commons/palette/internal/source"
	"github.com/oakwood-commons/palette/internal/ui"
	"github.com/oakwood-commons/palette/pkg/logger"
	"github.com/oakwood-commons/palette/pkg/settings"
)

var (
	params     = settings.NewCliParams()
	configFile string
	corpusPath string
	panelID    string
	debugLog   bool

	rootCtx = context.Background()
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [corpus.yaml]",
	Short: "Keyboard-driven command palette over pluggable search sources",
	Long: `palette is a keyboard-only command palette. Free text searches every
source; "/" opens the command picker, and /search walks profile and scope
pickers before the query. Results arrive debounced, sorted and grouped per
your persisted preference, and open via Enter or the action menu (right
arrow).

Without a corpus file the embedded demo corpus is used.`,
	Example: "\n  palette\n  palette notes.yaml\n  palette --no-color --debounce-ms 50\n  palette --panel main-panel   # enables the Replace action\n",
	Args:    cobra.MaximumNArgs(1),
	Version: fmt.Sprintf("%s (commit %s, built %s)",
		settings.VersionInformation.BuildVersion,
		settings.VersionInformation.Commit,
		settings.VersionInformation.BuildTime),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := params.MinLogLevel
		if debugLog {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = settings.IntoContext(logger.WithLogger(context.Background(), lgr), params)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lgr := logger.FromContext(rootCtx)

		cfg, err := loadConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		if cfg.DebounceMs != nil && !cmd.Flags().Changed("debounce-ms") {
			params.DebounceMs = *cfg.DebounceMs
		}
		if cfg.NoColor != nil && !cmd.Flags().Changed("no-color") {
			params.NoColor = *cfg.NoColor
		}

		params.CorpusPath = corpusPath
		if len(args) == 1 {
			params.CorpusPath = args[0]
		}
		if params.CorpusPath == "" {
			params.CorpusPath = cfg.Corpus
		}

		var src *source.Source
		if params.CorpusPath != "" {
			src, err = source.LoadFile(params.CorpusPath)
		} else {
			src, err = source.Demo()
		}
		if err != nil {
			return err
		}

		store := prefs.Open(prefs.DefaultBasePath(), *lgr)
		host := &cliHost{panelID: panelID}

		model := ui.New(src, host, store, *lgr)
		model.QuitOnClose = true
		model.NoColor = params.NoColor
		model.Theme = model.Theme.ApplyColors(cfg.Theme)
		if params.DebounceMs > 0 {
			model.SetDebounce(time.Duration(params.DebounceMs) * time.Millisecond)
		}

		lgr.V(1).Info("starting palette",
			"corpus", params.CorpusPath,
			"debounce_ms", params.DebounceMs,
			"no_color", params.NoColor)

		if _, err := ui.Run(&model, params.Width, params.Height); err != nil {
			return fmt.Errorf("run palette: %w", err)
		}
		return host.printPending(os.Stdout)
	},
}

func init() {
	// Accept underscore spellings (debounce_ms) alongside the dashed forms.
	rootCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file (colors, debounce, corpus)")
	rootCmd.Flags().StringVar(&corpusPath, "corpus", "", "path to a YAML search corpus (default: embedded demo)")
	rootCmd.Flags().StringVar(&panelID, "panel", "", "id of the workspace panel to treat as selected (enables Replace)")
	rootCmd.Flags().BoolVar(&params.NoColor, "no-color", false, "disable color output")
	rootCmd.Flags().Int8Var(&params.MinLogLevel, "log-level", 0, "minimum zap log level (-1 enables debug)")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "shorthand for --log-level=-1")
	rootCmd.Flags().IntVar(&params.DebounceMs, "debounce-ms", 0, "search debounce delay in milliseconds (0 = default 150)")
	rootCmd.Flags().IntVar(&params.Width, "width", 0, "forced terminal width in columns (0 = auto-detect)")
	rootCmd.Flags().IntVar(&params.Height, "height", 0, "forced terminal height in rows (0 = auto-detect)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
