package cmd

import (
	"fmt"

	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/spf13/cobra"
)

const maxRandomCount = 100

func newRandomCmd(app *app) *cobra.Command {
	var (
		count  int
		asJSON bool
		quiet  bool
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Run random calculations within the configured range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 || count > maxRandomCount {
				return fmt.Errorf("count must be between 1 and %d", maxRandomCount)
			}

			session, err := app.newSession(cmd.Context(), app.sessionSpeaker(quiet), mode)
			if err != nil {
				return err
			}

			outputs := make([]application.Output, 0, count)
			for i := 0; i < count; i++ {
				out, err := session.Press(cmd.Context(), domain.TokenRandom)
				if err != nil {
					return err
				}
				outputs = append(outputs, out)
			}

			if asJSON {
				return writeOutputs(cmd, app, session.Settings(), true, outputs...)
			}

			for _, out := range outputs {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", out.Expression, out.Display); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many calculations to run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not speak")
	cmd.Flags().StringVar(&mode, "mode", "", "Calculator mode for this run (simple|scientific)")

	return cmd
}
