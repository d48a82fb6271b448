package cmd

import (
	"os"
	"strings"

	"github.com/crazywolf132/statscmd/internal/app"
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/crazywolf132/statscmd/internal/config"
	"github.com/crazywolf132/statscmd/internal/history"
	"github.com/crazywolf132/statscmd/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newModeCmd builds an analysis command whose flags come from the mode's
// field table.
func newModeCmd(v *viper.Viper, mode builder.Mode, cmd *cobra.Command) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, v, mode, fieldValues(cmd, mode, args), v.GetBool(keyInteractive))
	}
	addFieldFlags(cmd, mode)
	return cmd
}

func addFieldFlags(cmd *cobra.Command, mode builder.Mode) {
	for _, f := range mode.Flags() {
		if f.CLIFlag == "" {
			continue
		}
		name := strings.TrimPrefix(f.CLIFlag, "--")
		usage := f.Title
		if f.Help != "" {
			usage += ". " + f.Help
		}

		switch f.Kind {
		case builder.KindBool:
			cmd.Flags().Bool(name, false, usage)
		case builder.KindSelect:
			cmd.Flags().String(name, f.Default, usage+" ("+strings.Join(f.Options, "|")+")")
		default:
			cmd.Flags().String(name, f.Default, usage)
		}
	}
}

// fieldValues collects the positional arguments and every flag the user set.
// Flags left alone stay empty so the form can offer its own defaults.
func fieldValues(cmd *cobra.Command, mode builder.Mode, args []string) builder.FieldValues {
	values := builder.FieldValues{}
	for _, f := range mode.Flags() {
		if f.CLIFlag == "" {
			switch {
			case f.Kind == builder.KindRepoList:
				values[f.Name] = strings.Join(args, "\n")
			case len(args) > 0:
				values[f.Name] = args[0]
			}
			continue
		}
		flag := cmd.Flags().Lookup(strings.TrimPrefix(f.CLIFlag, "--"))
		if flag != nil && flag.Changed {
			values[f.Name] = flag.Value.String()
		}
	}
	return values
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, mode builder.Mode, values builder.FieldValues, interactive bool) error {
	dir, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Debug("no working directory")
	}

	_, err = app.Generate(newDeps(cmd, v), app.GenerateOptions{
		Mode:        mode,
		Values:      values,
		Interactive: interactive,
		Copy:        v.GetBool(config.KeyCopy) && !v.GetBool(keyNoCopy),
		Explain:     v.GetBool(keyExplain),
		Dir:         dir,
		Token:       config.Get(config.KeyToken),
	})
	if err != nil && isInterrupt(err) {
		ui.Warning("Aborted")
		return nil
	}
	return err
}

func newDeps(cmd *cobra.Command, v *viper.Viper) app.Deps {
	deps := app.Deps{
		Builder: builder.New(
			builder.WithInterpreter(v.GetString(config.KeyPython)),
			builder.WithStatsScript(v.GetString(config.KeyStatsScript)),
			builder.WithMonthlyScript(v.GetString(config.KeyMonthlyScript)),
		),
		Clipboard: clipboard,
		Out:       cmd.OutOrStdout(),
	}
	if store, err := historyStore(); err == nil {
		deps.History = store
	} else {
		logrus.WithError(err).Debug("history disabled")
	}
	return deps
}

func historyStore() (history.Store, error) {
	p, err := history.DefaultPath()
	if err != nil {
		return history.Store{}, err
	}
	return history.Store{Path: p}, nil
}
