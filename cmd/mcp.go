package cmd

import (
	"github.com/bnema/vcalc/internal/adapters/mcp"
	"github.com/bnema/vcalc/internal/version"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.newSession(cmd.Context(), app.sessionSpeaker(quiet), "")
			if err != nil {
				return err
			}

			server := mcp.NewServer(session, version.Version, app.logger.With("component", "mcp"))
			app.logger.InfoContext(cmd.Context(), "serving mcp over stdio")

			return server.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", true, "Do not speak tool calls")

	return cmd
}
