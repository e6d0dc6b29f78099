package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/evanharte/pinboard/internal/cli/formatter"
	"github.com/evanharte/pinboard/internal/engine"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	var message string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Compile and apply a batch of tool calls",
		Long: `Reads a JSON array of tool calls ([{"name": ..., "input": {...}}, ...])
from the given file, or from stdin when no file is given, compiles it into
a plan, and applies the plan to the board atomically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			previews, err := readPreviews(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if dryRun {
				plan, err := app.Boards.Compile(ctx, app.BoardID, app.ActorUserID, message, previews)
				if err != nil {
					return fmt.Errorf("compiling plan: %w", err)
				}
				data, err := json.MarshalIndent(plan, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			res, err := app.Boards.CompileAndApply(ctx, app.BoardID, app.ActorUserID, message, previews)
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatResult(res))
			if !res.OK {
				return fmt.Errorf("plan not applied")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message recorded on the plan")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compile and print the plan without applying it")
	return cmd
}

func readPreviews(args []string) ([]engine.Preview, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading tool calls: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading tool calls from stdin: %w", err)
		}
	}

	var previews []engine.Preview
	if err := json.Unmarshal(data, &previews); err != nil {
		return nil, fmt.Errorf("parsing tool calls: %w", err)
	}
	return previews, nil
}
