package cmd

import (
	"errors"

	"github.com/bnema/vcalc/internal/logs"
	"github.com/spf13/cobra"
)

func Execute() error {
	return execute(newRootCmd())
}

// execute closes the wired adapters whether or not the command succeeded;
// cobra skips post-run hooks after a RunE error.
func execute(rootCmd *cobra.Command, app *app) error {
	err := rootCmd.Execute()
	return errors.Join(err, app.close())
}

func newRootCmd() (*cobra.Command, *app) {
	var opts rootOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "vcalc",
		Short:         "vcalc: a talking calculator for the terminal",
		Long:          "vcalc is a calculator that speaks each key and result. Run expressions from the command line, open the interactive calculator, or serve it to MCP clients.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}

			wired, err := wireApp(config, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired

			ctx, id := logs.WithSession(cmd.Context())
			cmd.SetContext(ctx)
			app.logger.DebugContext(ctx, "command started", "command", cmd.CommandPath(), "session", id)

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default ~/.vcalc/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")
	flags.StringVar(&opts.settings, "settings", "", "Settings file (default ~/.vcalc/settings.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPressCmd(app),
		newRandomCmd(app),
		newFormatCmd(app),
		newSettingsCmd(app),
		newTUICmd(app),
		newSpeakCmd(app),
		newMCPCmd(app),
	)

	return rootCmd, app
}
