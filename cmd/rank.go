package cmd

import (
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRankCmd(v *viper.Viper) *cobra.Command {
	return newModeCmd(v, builder.RepositoryRanking, &cobra.Command{
		Use:     "rank [owner/repo ...]",
		Short:   "Rank repositories against each other",
		Example: `  statscmd rank golang/go rust-lang/rust --top 5`,
	})
}
