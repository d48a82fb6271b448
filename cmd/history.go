package cmd

import (
	"strconv"

	"emperror.dev/errors"
	"github.com/crazywolf132/statscmd/internal/app"
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/crazywolf132/statscmd/internal/ui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		lastN    int
		modeName string
		yes      bool
	)

	historyCmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "Show previously generated commands",
		Long: `List the commands statscmd generated, newest first. Tokens are never
saved; they show up as *** in the list.

Examples:
  statscmd history            # Show every saved command
  statscmd history -n 5       # Show the last 5
  statscmd history --mode org # Only organization analyses
  statscmd history copy 2     # Copy the second entry again`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := ""
			if modeName != "" {
				m, err := builder.ParseMode(modeName)
				if err != nil {
					return err
				}
				mode = m.String()
			}
			store, err := historyStore()
			if err != nil {
				return err
			}
			return app.ListHistory(cmd.OutOrStdout(), store, mode, lastN)
		},
	}
	historyCmd.Flags().IntVarP(&lastN, "limit", "n", 0, "Show only the last n commands")
	historyCmd.Flags().StringVar(&modeName, "mode", "", "Only show commands of this analysis (repos|org|rank|contributors|monthly)")

	copyCmd := &cobra.Command{
		Use:   "copy <n>",
		Short: "Copy entry n of the history to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("%q is not an entry number", args[0])
			}
			store, err := historyStore()
			if err != nil {
				return err
			}
			_, err = app.CopyHistory(app.Deps{Clipboard: clipboard, Out: cmd.OutOrStdout()}, store, n)
			return err
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := ui.Confirm("Delete the command history?", false)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			store, err := historyStore()
			if err != nil {
				return err
			}
			if err := app.ClearHistory(store); err != nil {
				return err
			}
			ui.Success("History cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Don't ask for confirmation")

	historyCmd.AddCommand(copyCmd, clearCmd)
	return historyCmd
}
