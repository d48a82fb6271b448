package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/crazywolf132/statscmd/internal/config"
	"github.com/crazywolf132/statscmd/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage statscmd settings",
		Long: `Settings are stored in config.toml in the statscmd config directory.
A STATSCMD_* environment variable or a flag overrides the stored value.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Args:  cobra.ExactArgs(1),
			Short: "Get a config value",
			RunE: func(cmd *cobra.Command, args []string) error {
				val := config.Get(args[0])
				if val == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Gray("not set"))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), val)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Args:  cobra.ExactArgs(2),
			Short: "Set a config value",
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if key == config.KeyCopy {
					if _, err := strconv.ParseBool(value); err != nil {
						return errors.Errorf("%s must be true or false, got %q", key, value)
					}
				}
				if !config.IsKnown(key) {
					ui.Warnf("%s is not a setting statscmd uses\n", key)
				}
				if err := config.Set(key, value); err != nil {
					return errors.Wrapf(err, "failed to set %s", key)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s=%s\n", ui.Green("Set"), key, displayValue(key, value))
				return nil
			},
		},
		&cobra.Command{
			Use:   "unset <key>",
			Args:  cobra.ExactArgs(1),
			Short: "Remove a config value",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.Unset(args[0]); err != nil {
					return errors.Wrapf(err, "failed to unset %s", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Green("Unset"), args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Args:    cobra.NoArgs,
			Short:   "List settings and their values",
			RunE: func(cmd *cobra.Command, args []string) error {
				listConfig(cmd)
				return nil
			},
		},
	)
	return configCmd
}

func listConfig(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	stored := config.All()

	for _, k := range config.KnownKeys {
		val, ok := stored[k.Key]
		delete(stored, k.Key)

		shown := ui.Gray("not set")
		switch {
		case ok:
			shown = displayValue(k.Key, val)
		case k.Default != "":
			shown = ui.Gray(k.Default + " (default)")
		}
		fmt.Fprintf(w, "%s %s\n", ui.Bold(fmt.Sprintf("%-16s", k.Key)), shown)
		fmt.Fprintf(w, "%-16s %s\n", "", ui.Gray(k.Description))
	}

	for _, key := range config.Keys() {
		if val, ok := stored[key]; ok {
			fmt.Fprintf(w, "%s %s\n", ui.Yellow(fmt.Sprintf("%-16s", key)), displayValue(key, val))
		}
	}

	if p, err := config.Path(); err == nil {
		fmt.Fprintf(w, "\n%s\n", ui.Gray("file: "+p))
	}
}

// displayValue hides secrets.
func displayValue(key, value string) string {
	if config.IsSensitive(key) && value != "" {
		return strings.Repeat("*", 8)
	}
	return value
}
