package cli

import (
	"encoding/json"
	"fmt"

	"github.com/evanharte/pinboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current board state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.Boards.Snapshot(cmd.Context(), app.BoardID)
			if err != nil {
				return fmt.Errorf("loading board: %w", err)
			}
			if asJSON {
				data, err := json.MarshalIndent(snapshot, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}
			cmd.Print(formatter.FormatBoard(app.BoardID, snapshot))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON snapshot")
	return cmd
}
