package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mithrel/gyani/internal/config"
	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/editor"
	"github.com/mithrel/gyani/internal/present"
	"github.com/mithrel/gyani/internal/wire"
	"github.com/mithrel/gyani/pkg/api"
)

func newAskCmd() *cobra.Command {
	var (
		output  string
		copyOut bool
		edit    bool
		noPager bool
	)
	cmd := &cobra.Command{
		Use:   "ask [prompt...]",
		Short: "Generate research content for a prompt and print it",
		Long: `Send a prompt to the generation API and print the formatted result.

The prompt is taken from the arguments, else from stdin when it is piped,
else from $EDITOR.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			model := app.Cfg.GetString("model")

			prompt := strings.Join(args, " ")
			if prompt == "" && !edit {
				p, interactive, err := readPipedPrompt(cmd.InOrStdin())
				if err != nil {
					return err
				}
				prompt = p
				edit = interactive
			}
			if edit {
				id, p, err := composeInEditor(app, model, prompt)
				if err != nil {
					return err
				}
				prompt = p
				if id != "" {
					model = id
				}
			}

			if output == "" {
				output = app.Cfg.GetString("output")
			}
			mode, ok := present.ParseMode(output)
			if !ok {
				return fmt.Errorf("invalid --output: %s", output)
			}

			ctrl := app.NewController()
			genErr := ctrl.Generate(cmd.Context(), prompt, model)

			var verr *controller.ValidationError
			if errors.As(genErr, &verr) {
				printNotices(cmd.ErrOrStderr(), ctrl)
				return genErr
			}

			if err := renderRegion(cmd, app, ctrl.Region(), mode, noPager); err != nil {
				return err
			}
			if genErr != nil {
				return genErr
			}
			if copyOut {
				err := ctrl.CopyCurrentOutput()
				printNotices(cmd.ErrOrStderr(), ctrl)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: pretty|plain|html|markdown|json")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the generated text to the clipboard")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "compose the prompt in $EDITOR")
	cmd.Flags().BoolVar(&noPager, "no-pager", false, "never pipe output through $PAGER")
	_ = cmd.RegisterFlagCompletionFunc("output", completeFrom(config.OutputModes))
	return cmd
}

// readPipedPrompt reads the prompt from in unless in is a terminal, in which
// case interactive is true and nothing is read.
func readPipedPrompt(in io.Reader) (prompt string, interactive bool, err error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", true, nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("read prompt from stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), false, nil
}

func composeInEditor(app *wire.App, model, prompt string) (string, string, error) {
	path, err := editor.PathForRequest(api.NewID())
	if err != nil {
		return "", "", err
	}
	defer os.Remove(path)
	out, _, err := editor.OpenAt(app.Cfg.GetString("editor.command"), path, []byte(editor.ComposePrompt(model, prompt)))
	if err != nil {
		return "", "", fmt.Errorf("editor: %w", err)
	}
	id, p := editor.ParsePrompt(string(out))
	return id, p, nil
}

func renderRegion(cmd *cobra.Command, app *wire.App, r controller.Region, mode present.Mode, noPager bool) error {
	out := cmd.OutOrStdout()
	opts := present.Options{
		Mode:       mode,
		JSONIndent: true,
		Style:      app.Cfg.GetString("render.style"),
		WordWrap:   app.Cfg.GetInt("render.word_wrap"),
	}
	// glamour output is only useful on a terminal
	if mode == present.ModePretty && !isTerminal(out) {
		opts.Mode = present.ModePlain
	}
	if noPager || opts.Mode != present.ModePretty {
		return present.RenderRegion(out, r, opts)
	}
	return withPager(cmd.Context(), out, cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderRegion(w, r, opts)
	})
}

func printNotices(w io.Writer, ctrl *controller.Controller) {
	for {
		n, ok := ctrl.TakeNotice()
		if !ok {
			return
		}
		_, _ = fmt.Fprintln(w, n.Text)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
