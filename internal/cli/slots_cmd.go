package cli

import (
	"fmt"

	"github.com/RogueFF/shiftboard/internal/cli/formatter"
	"github.com/RogueFF/shiftboard/internal/scoreboard"
	"github.com/spf13/cobra"
)

func newSlotsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "Show the shift schedule and capacity weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatSlots(scoreboard.DefaultSchedule()))
			return nil
		},
	}
}
