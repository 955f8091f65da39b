package cmd

import (
	"fmt"

	tomlrepo "github.com/bnema/vcalc/internal/adapters/repo/toml"
	"github.com/bnema/vcalc/internal/adapters/tui"
	queuespeaker "github.com/bnema/vcalc/internal/adapters/voice/queue"
	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/ports"
	"github.com/spf13/cobra"
)

func newTUICmd(app *app) *cobra.Command {
	var (
		quiet bool
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator",
		Long:  "Open the interactive calculator. Press ? for keys. Tab switches between simple and scientific mode; h holds the random key down.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Speech runs behind a queue so keys never wait for audio.
			var speaker ports.Speaker
			if !quiet {
				queue := queuespeaker.NewSpeaker(app.speaker, 0, app.logger)
				defer func() { _ = queue.Close() }()
				speaker = queue
			}

			session, err := app.newSession(cmd.Context(), speaker, "")
			if err != nil {
				return err
			}

			opts := tui.Options{
				Repeat: application.DefaultRepeatConfig(),
				Logger: app.logger,
			}
			if !quiet {
				opts.Hush = app.voice.Cancel
			}
			if watch {
				opts.Watcher = tomlrepo.NewWatcher(app.repo.Path(), app.logger)
			}

			if err := tui.Run(cmd.Context(), session, opts); err != nil {
				return fmt.Errorf("tui: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not speak")
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload settings when the settings file changes")

	return cmd
}
