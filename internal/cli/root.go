// Package cli implements the pinboard command-line interface.
package cli

import (
	"github.com/evanharte/pinboard/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by all CLI commands.
type App struct {
	Boards *store.BoardService
	Log    zerolog.Logger

	// BoardID is the board targeted by commands; set from the --board
	// flag or the PINBOARD_BOARD environment variable.
	BoardID string
	// ActorUserID is stamped as creator on objects made from the CLI.
	ActorUserID string
}

// NewRootCmd creates the top-level "pinboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pinboard",
		Short: "AI-editable shared diagram boards",
	}

	root.PersistentFlags().StringVar(&app.BoardID, "board", app.BoardID, "board ID to operate on")

	root.AddCommand(
		newShowCmd(app),
		newApplyCmd(app),
		newUndoCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}
