package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change calculator settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsResetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.newSession(cmd.Context(), nil, "")
			if err != nil {
				return err
			}

			return writeSettings(cmd, app, session.Settings(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var (
		roundingDigits int
		randomMin      int
		randomMax      int
		voice          bool
		mode           string
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Change one or more settings",
		Example: "  vcalc settings set --rounding-digits 2\n  vcalc settings set --random-min 1 --random-max 12 --mode scientific\n  vcalc settings set --voice=false",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update application.SettingsUpdate
			flags := cmd.Flags()
			if flags.Changed("rounding-digits") {
				update.RoundingDigits = &roundingDigits
			}
			if flags.Changed("random-min") {
				update.RandomMin = &randomMin
			}
			if flags.Changed("random-max") {
				update.RandomMax = &randomMax
			}
			if flags.Changed("voice") {
				update.VoiceEnabled = &voice
			}
			if flags.Changed("mode") {
				parsed, err := domain.ParseMode(mode)
				if err != nil {
					return err
				}
				update.Mode = &parsed
			}
			if update.Empty() {
				return fmt.Errorf("nothing to change: pass at least one of --rounding-digits, --random-min, --random-max, --voice, --mode")
			}

			session, err := app.newSession(cmd.Context(), nil, "")
			if err != nil {
				return err
			}

			settings, err := session.UpdateSettings(cmd.Context(), update)
			if err != nil {
				return err
			}

			return writeSettings(cmd, app, settings, false)
		},
	}

	cmd.Flags().IntVar(&roundingDigits, "rounding-digits", 0, "Fraction digits shown (0-15)")
	cmd.Flags().IntVar(&randomMin, "random-min", 0, "Lower bound for random operands")
	cmd.Flags().IntVar(&randomMax, "random-max", 0, "Upper bound for random operands")
	cmd.Flags().BoolVar(&voice, "voice", true, "Speak keys and results")
	cmd.Flags().StringVar(&mode, "mode", "", "Calculator mode (simple|scientific)")

	return cmd
}

func newSettingsResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.newSession(cmd.Context(), nil, "")
			if err != nil {
				return err
			}

			settings, err := session.ResetSettings(cmd.Context())
			if err != nil {
				return err
			}

			return writeSettings(cmd, app, settings, false)
		},
	}
}

func writeSettings(cmd *cobra.Command, app *app, settings domain.Settings, asJSON bool) error {
	view := application.NewSettingsView(settings)
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "rounding_digits\t%d\n", view.RoundingDigits)
	_, _ = fmt.Fprintf(w, "random_min\t%d\n", view.RandomMin)
	_, _ = fmt.Fprintf(w, "random_max\t%d\n", view.RandomMax)
	_, _ = fmt.Fprintf(w, "voice_enabled\t%t\n", view.VoiceEnabled)
	_, _ = fmt.Fprintf(w, "mode\t%s\n", view.Mode)
	_, _ = fmt.Fprintf(w, "file\t%s\n", app.repo.Path())

	return w.Flush()
}
