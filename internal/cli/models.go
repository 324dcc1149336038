package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models you can generate with",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			current := app.Cfg.GetString("model")
			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(app.Catalog.Models())
			case "", "plain":
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, m := range app.Catalog.Models() {
					mark := " "
					if m.ID == current {
						mark = "*"
					}
					_, _ = fmt.Fprintf(tw, "%s %s\t%s\n", mark, m.ID, m.Name)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("invalid --output: %s (want plain or json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output format: plain|json")
	_ = cmd.RegisterFlagCompletionFunc("output", completeFrom([]string{"plain", "json"}))
	return cmd
}
