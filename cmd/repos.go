package cmd

import (
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReposCmd(v *viper.Viper) *cobra.Command {
	return newModeCmd(v, builder.RepositoryAnalysis, &cobra.Command{
		Use:   "repos [owner/repo ...]",
		Short: "Analyze one or more repositories",
		Long: `Build a "repos" command that collects statistics for each listed
repository.`,
		Example: `  statscmd repos microsoft/vscode facebook/react --output stats.json
  statscmd repos -i`,
	})
}
