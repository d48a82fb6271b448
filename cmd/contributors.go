package cmd

import (
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newContributorsCmd(v *viper.Viper) *cobra.Command {
	return newModeCmd(v, builder.ContributorRanking, &cobra.Command{
		Use:     "contributors [organization]",
		Aliases: []string{"contrib"},
		Short:   "Rank the contributors of an organization",
		Long: `Build a "contributors" command that ranks an organization's
contributors over the last months, optionally only those whose profile
names a company.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  statscmd contributors tarento --company "Tarento"
  statscmd contributors tarento --months 6 --min-contributions 5`,
	})
}
