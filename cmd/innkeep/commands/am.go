package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/innkeep/am"
	"github.com/teranos/innkeep/display"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/sym"
	"gopkg.in/yaml.v3"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: sym.AM + " Manage innkeep configuration",
	Long: sym.AM + ` am: Manage innkeep configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (INNKEEP_* prefix)
3. Project config (innkeep.toml, searched upwards from the working directory)
4. User config (~/.innkeep/am.toml)
5. System config (/etc/innkeep/am.toml)
6. Default values

Examples:
  innkeep am show                         # Show current configuration
  innkeep am show --format yaml           # Show configuration as YAML
  innkeep am get editor.id_strategy       # Get specific config value
  innkeep am set room.catalog rooms.yaml  # Write a value to ~/.innkeep/am.toml`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		format, _ := cmd.Flags().GetString("format")
		if display.ShouldOutputJSON(cmd) {
			format = "json"
		}
		return showConfig(cmd, cfg, format)
	},
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., editor.id_strategy, room.catalog)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !am.GetViper().IsSet(key) {
			return errors.NewNotFoundError("configuration key %q", key)
		}
		fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
		return nil
	},
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a configuration value to the user config",
	Long:  "Write section.field = value to ~/.innkeep/am.toml, keeping up to three backups",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := am.UpdateUserSetting(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s (%s)\n", args[0], args[1], am.UserConfigPath())
		return nil
	},
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := am.Load(); err != nil {
			return errors.Wrap(err, "configuration validation failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
		return nil
	},
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration files (later overrides earlier):")
		for _, path := range am.ConfigPaths() {
			status := "missing"
			if _, err := os.Stat(path); err == nil {
				status = "found"
			}
			fmt.Fprintf(out, "  %-8s %s\n", status, path)
		}
		fmt.Fprintln(out, "Environment variables with the INNKEEP_ prefix override every file.")
		return nil
	},
}

func init() {
	amShowCmd.Flags().String("format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func showConfig(cmd *cobra.Command, cfg *am.Config, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return display.OutputJSON(out, cfg)
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# innkeep configuration\n%s", data)
	case "toml":
		data, err := am.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# innkeep configuration\n%s", data)
	default:
		return errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}
