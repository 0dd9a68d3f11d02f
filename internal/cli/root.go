package cli

import (
	"github.com/RogueFF/shiftboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Scoreboard service.ScoreboardService
	Entries    service.EntryService
	History    service.HistoryService

	// IsInteractive reports whether stdin is a terminal; interactive-only
	// surfaces (the log form, the watch view) check it before starting.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "shiftboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shiftboard",
		Short: "Hourly production scoreboard for the trim floor",
	}

	root.AddCommand(
		newBoardCmd(app),
		newLogCmd(app),
		newWatchCmd(app),
		newHistoryCmd(app),
		newSlotsCmd(app),
		newImportCmd(app),
	)

	return root
}
