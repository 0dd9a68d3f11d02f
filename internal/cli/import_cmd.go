package cli

import (
	"context"
	"fmt"

	"github.com/RogueFF/shiftboard/internal/cli/formatter"
	"github.com/RogueFF/shiftboard/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a day sheet of hourly entries from CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := importer.LoadDaySheet(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateRows(rows); len(errs) > 0 {
				fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("%d problem(s) found:", len(errs))))
				for _, e := range errs {
					fmt.Printf("  %s\n", e)
				}
				return fmt.Errorf("import aborted")
			}

			entries := importer.Convert(rows)
			if dryRun {
				fmt.Printf("%s %d entries parse cleanly; nothing written.\n",
					formatter.StyleGreen.Render("✔"), len(entries))
				return nil
			}

			ctx := context.Background()
			for _, e := range entries {
				if err := app.Entries.Log(ctx, e); err != nil {
					return fmt.Errorf("importing %s %s: %w", e.Date, e.TimeSlot, err)
				}
			}
			fmt.Printf("%s Imported %d entries.\n", formatter.StyleGreen.Render("✔"), len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the sheet without writing anything")

	return cmd
}
