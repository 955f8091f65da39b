package cmd

import (
	"fmt"

	"github.com/bnema/vcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newFormatCmd(app *app) *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:     "format <value>",
		Short:   "Format a number the way the display shows it",
		Example: "  vcalc format 1234567.891011\n  vcalc format 2.345 --digits 1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("digits") {
				settings, err := app.repo.Load(cmd.Context())
				if err != nil {
					return fmt.Errorf("load settings: %w", err)
				}
				digits = settings.RoundingDigits
				if settings.Validate() != nil {
					digits = domain.DefaultSettings().RoundingDigits
				}
			}
			if digits < 0 || digits > domain.MaxRoundingDigits {
				return fmt.Errorf("digits must be between 0 and %d", domain.MaxRoundingDigits)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.FormatDisplay(args[0], digits))
			return err
		},
	}

	cmd.Flags().IntVarP(&digits, "digits", "d", 0, "Maximum fraction digits (default: rounding setting)")

	return cmd
}
