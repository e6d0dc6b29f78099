package cli

import (
	"errors"
	"fmt"

	"github.com/evanharte/pinboard/internal/cli/formatter"
	"github.com/evanharte/pinboard/internal/store"
	"github.com/spf13/cobra"
)

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the board's most recent transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Boards.Undo(cmd.Context(), app.BoardID, app.ActorUserID)
			if err != nil {
				if errors.Is(err, store.ErrNoTransactions) {
					cmd.Println(formatter.Dim("nothing to undo"))
					return nil
				}
				return err
			}
			cmd.Print(formatter.FormatResult(res))
			if !res.OK {
				return fmt.Errorf("undo not applied")
			}
			return nil
		},
	}
}
