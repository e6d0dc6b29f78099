package cli

import (
	"github.com/evanharte/pinboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the board's applied transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := app.Boards.History(cmd.Context(), app.BoardID, limit)
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatHistory(txs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum transactions to list")
	return cmd
}
