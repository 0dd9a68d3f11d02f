package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RogueFF/shiftboard/internal/cli"
	"github.com/RogueFF/shiftboard/internal/db"
	"github.com/RogueFF/shiftboard/internal/repository"
	"github.com/RogueFF/shiftboard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.shiftboard/shiftboard.db
	dbPath := os.Getenv("SHIFTBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shiftboard", "shiftboard.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)

	app := &cli.App{
		Scoreboard: service.NewScoreboardService(entryRepo, configRepo),
		Entries:    service.NewEntryService(entryRepo, configRepo),
		History:    service.NewHistoryService(entryRepo, configRepo),
	}

	// Detect interactive terminal for the log form and watch view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
