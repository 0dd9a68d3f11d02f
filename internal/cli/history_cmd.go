package cli

import (
	"context"
	"fmt"

	"github.com/RogueFF/shiftboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show daily totals, rates, and labor cost for recent days",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.History.DailyTotals(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(summaries))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many trailing days to include")

	return cmd
}
