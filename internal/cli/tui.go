package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/gyani/internal/config"
	"github.com/mithrel/gyani/internal/present/format"
	"github.com/mithrel/gyani/internal/present/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [prompt...]",
		Short: "Open the interactive research page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, "", strings.Join(args, " "))
		},
	}
}

// runTUI opens the research page. An empty model falls back to the configured one.
func runTUI(cmd *cobra.Command, model, prompt string) error {
	app := getApp(cmd)
	// stderr logging would tear through the alternate screen
	app.Quiet()
	if model == "" {
		model = app.Cfg.GetString("model")
	}
	return tui.Run(cmd.Context(), tui.Options{
		Controller: app.NewController(),
		Model:      model,
		Prompt:     prompt,
		Pretty: format.PrettyOptions{
			Style:    app.Cfg.GetString("render.style"),
			WordWrap: app.Cfg.GetInt("render.word_wrap"),
		},
		NoticeDuration: config.Duration(app.Cfg, "notice.duration", 0),
		EditorCommand:  app.Cfg.GetString("editor.command"),
		Log:            app.Log,
	})
}
