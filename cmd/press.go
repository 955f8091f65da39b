package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/vcalc/internal/adapters/render/display"
	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newPressCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		quiet  bool
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "press <token>...",
		Short: "Press calculator keys and show the result",
		Long: "Press calculator keys in order. Tokens are digits, '.', + - * /, sin cos tan log sqrt square, pi e, mc m+ m- mr, clear, equals (or '='), random. " +
			"Numbers may be written whole: press 12.5 x 4 =",
		Example: "  vcalc press 2 + 3 =\n  vcalc press '1200 + 34.5 ='\n  vcalc press 9 sqrt --json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := domain.ParseTokens(args)
			if err != nil {
				return err
			}

			session, err := app.newSession(cmd.Context(), app.sessionSpeaker(quiet), mode)
			if err != nil {
				return err
			}

			out, err := session.PressAll(cmd.Context(), tokens)
			if err != nil {
				return err
			}

			return writeOutputs(cmd, app, session.Settings(), asJSON, out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not speak")
	cmd.Flags().StringVar(&mode, "mode", "", "Calculator mode for this run (simple|scientific)")

	return cmd
}

func writeOutputs(cmd *cobra.Command, app *app, settings domain.Settings, asJSON bool, outputs ...application.Output) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if len(outputs) == 1 {
			return enc.Encode(outputs[0])
		}
		return enc.Encode(outputs)
	}

	rendered, err := app.renderer(display.RenderOptions{RoundingDigits: settings.RoundingDigits}, outputs...)
	if err != nil {
		return fmt.Errorf("render display: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
