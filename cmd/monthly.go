package cmd

import (
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMonthlyCmd(v *viper.Viper) *cobra.Command {
	return newModeCmd(v, builder.MonthlyAnalysis, &cobra.Command{
		Use:   "monthly [organization]",
		Short: "Month-by-month contributor analysis",
		Long: `Build a command for the monthly contributor script. The report is
always written to monthly_analysis_YYYY-MM.json for the current month.`,
		Args:    cobra.MaximumNArgs(1),
		Example: `  statscmd monthly tarento --company "Tarento"`,
	})
}
