package cli

import (
	"github.com/evanharte/pinboard/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the board tool contract over MCP on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcpserver.New(mcpserver.Deps{
				Boards:         app.Boards,
				Log:            app.Log,
				DefaultBoardID: app.BoardID,
				ActorUserID:    app.ActorUserID,
			})
			return srv.ServeStdio()
		},
	}
}
