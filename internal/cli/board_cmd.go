package cli

import (
	"context"
	"fmt"

	"github.com/RogueFF/shiftboard/internal/cli/formatter"
	"github.com/RogueFF/shiftboard/internal/contract"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var date string
	var window int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the scoreboard for a production day",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewScoreboardRequest()
			req.Date = date
			if cmd.Flags().Changed("window") {
				req.RateWindowDays = window
			}

			resp, err := app.Scoreboard.GetScoreboard(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatBoard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Production day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&window, "window", 2, "Trailing production days feeding the target rate")

	return cmd
}
