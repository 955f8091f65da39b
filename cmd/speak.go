package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/vcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newSpeakCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "speak [text]",
		Short: "Test the calculator voice",
		Long:  "Speak text through the configured speech command. Without text it says \"" + domain.PhraseVoiceTest + "\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := domain.PhraseVoiceTest
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}

			engine, err := app.voice.Engine()
			if err != nil {
				return err
			}

			// The exec speaker directly, so a broken voice setup is reported
			// instead of falling back to the log.
			session, err := app.newSession(cmd.Context(), app.voice, "")
			if err != nil {
				return err
			}
			if err := session.Speak(cmd.Context(), text); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "spoke %q with %s\n", text, engine)
			return err
		},
	}
}
