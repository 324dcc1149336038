package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/gyani/internal/util"
	"github.com/mithrel/gyani/pkg/models"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "generate bash|zsh|fish",
		Short:     "Generate completions for a shell",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			default:
				return cmd.Root().GenFishCompletion(out, true)
			}
		},
	})

	return cmd
}

const maxModelCompletions = 10

// completeFrom returns a flag completion over a fixed set of values.
func completeFrom(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return util.ScoreCompletions(toComplete, values, len(values)), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeModels ranks catalog ids by fuzzy match. It runs before
// PersistentPreRunE, so it reads the catalog directly.
func completeModels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ms := models.Default().Models()
	if toComplete == "" {
		out := make([]string, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.ID+"\t"+m.Name)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
	ranked := util.ScoreModels(toComplete, ms, maxModelCompletions)
	out := make([]string, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, m.ID+"\t"+m.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}
