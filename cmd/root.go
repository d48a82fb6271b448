package cmd

import (
	"io"
	"strings"

	"emperror.dev/errors"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/crazywolf132/statscmd/internal/app"
	"github.com/crazywolf132/statscmd/internal/config"
	"github.com/crazywolf132/statscmd/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// viper keys for the persistent flags
const (
	keyInteractive = "interactive"
	keyNoCopy      = "no-copy"
	keyExplain     = "explain"
)

// clipboard is replaced in tests.
var clipboard ui.Clipboard = ui.SystemClipboard{}

// NewRootCmd builds a fresh command tree. Each call has its own viper
// instance, so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "statscmd",
		Short: "Build command lines for the GitHub statistics scripts",
		Long: `statscmd writes the command line for github_stats.py and the monthly
contributor script so you don't have to remember their flags.

Run it without arguments to pick an analysis and fill in a form, or use one
of the analysis commands directly. Flags left at their defaults are not
written to the command.`,
		Example: `  statscmd
  statscmd org microsoft --top 25
  statscmd contributors tarento --company "Tarento" -i`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadAllConfigs(); err != nil {
				ui.Warnf("Failed to load config: %v\n", err)
			}
			loadSettings(v)
			setupLogging(cmd.ErrOrStderr(), v.GetBool(keyExplain))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ui.AskMode()
			if err != nil {
				if isInterrupt(err) {
					ui.Warning("Aborted")
					return nil
				}
				return errors.Wrap(err, "failed to pick an analysis")
			}
			return runGenerate(cmd, v, mode, nil, true)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP(keyInteractive, "i", false, "Fill in the fields with a form")
	flags.Bool(keyNoCopy, false, "Don't copy the command to the clipboard")
	flags.Bool(keyExplain, false, "Log which fields were left out and why")
	flags.String(config.KeyPython, "", "Interpreter placed before the script (default \"python\")")

	for _, key := range []string{keyInteractive, keyNoCopy, keyExplain, config.KeyPython} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	v.SetEnvPrefix("STATSCMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newReposCmd(v),
		newOrgCmd(v),
		newRankCmd(v),
		newContributorsCmd(v),
		newMonthlyCmd(v),
		newConfigCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)

	rootCmd.SetUsageTemplate(ui.ColorHeadings(rootCmd.UsageTemplate()))
	return rootCmd
}

// Execute is the root entrypoint
func Execute() error {
	return NewRootCmd().Execute()
}

// loadSettings makes the config file the fallback for every setting that has
// no flag or STATSCMD_* variable.
func loadSettings(v *viper.Viper) {
	for _, k := range config.KnownKeys {
		if config.IsSensitive(k.Key) {
			continue
		}
		if val := config.Get(k.Key); val != "" {
			v.SetDefault(k.Key, val)
		} else {
			v.SetDefault(k.Key, k.Default)
		}
	}
}

func setupLogging(w io.Writer, explain bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if explain {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, app.ErrAborted) || errors.Is(err, terminal.InterruptErr)
}
