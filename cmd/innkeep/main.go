package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/innkeep/am"
	"github.com/teranos/innkeep/cmd/innkeep/commands"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/logger"
	"github.com/teranos/innkeep/sym"
)

var rootCmd = &cobra.Command{
	Use:   "innkeep",
	Short: "innkeep - Room type and bed configuration tooling",
	Long: `innkeep - Room type and bed configuration tooling for hotel content teams.

Available commands:
  bed     - Parse, format and edit bed descriptions
  room    - Browse, check and edit room types
  am      - Manage innkeep configuration ("I am")
  version - Show version information

Examples:
  innkeep bed format "2张1.5米双床 or 1张1.8米大床"
  innkeep room ls --catalog rooms.yaml
  innkeep am show`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithVerbosity(cfg.Log.JSON, verbosity+cfg.Log.Verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("Configuration loaded",
			logger.FieldComponent, "cli",
			"verbosity", logger.LevelName(verbosity+cfg.Log.Verbosity),
			"config", cfg.String())
		if logger.ShouldLogTrace(verbosity + cfg.Log.Verbosity) {
			logger.Debugw("Configuration sources", logger.FieldComponent, "cli", "paths", am.ConfigPaths())
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	// Add commands
	rootCmd.AddCommand(commands.BedCmd)
	rootCmd.AddCommand(commands.RoomCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)

	// Glyph aliases: innkeep ⊞ format ...
	for _, c := range rootCmd.Commands() {
		if glyph, ok := sym.CommandToSymbol(c.Name()); ok {
			c.Aliases = append(c.Aliases, glyph)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
