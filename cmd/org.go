package cmd

import (
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newOrgCmd(v *viper.Viper) *cobra.Command {
	return newModeCmd(v, builder.OrganizationAnalysis, &cobra.Command{
		Use:     "org [organization]",
		Aliases: []string{"organization"},
		Short:   "Analyze every repository of an organization",
		Args:    cobra.MaximumNArgs(1),
		Example: `  statscmd org microsoft
  statscmd org microsoft --type sources --top 25 --no-summary`,
	})
}
