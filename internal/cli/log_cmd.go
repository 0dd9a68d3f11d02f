package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/RogueFF/shiftboard/internal/domain"
	"github.com/RogueFF/shiftboard/internal/scoreboard"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var (
		date              string
		slot              string
		cultivar          string
		tops              float64
		smalls            float64
		trimmers          float64
		effectiveTrimmers float64
		buckers           float64
		notes             string
		remove            bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log or update one hour of production",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			if remove {
				if slot == "" {
					return fmt.Errorf("--slot is required with --delete")
				}
				if err := app.Entries.Remove(ctx, date, scoreboard.NormalizeSlot(slot)); err != nil {
					return err
				}
				fmt.Printf("Removed %s %s\n", date, slot)
				return nil
			}

			e := &domain.ProductionEntry{
				Date:      date,
				TimeSlot:  slot,
				Cultivar:  cultivar,
				TopsLbs:   tops,
				SmallsLbs: smalls,
				Trimmers:  trimmers,
				Buckers:   buckers,
				Notes:     notes,
			}
			// Changed() distinguishes an explicit zero from an unset flag; an
			// explicit zero means the crew was pulled off the line, not "use
			// the raw headcount".
			if cmd.Flags().Changed("effective-trimmers") {
				e.EffectiveTrimmers = domain.Float64Ptr(effectiveTrimmers)
			}

			if slot == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--slot is required (or run from a terminal for the form)")
				}
				if err := runLogForm(e); err != nil {
					return err
				}
			}

			if err := app.Entries.Log(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Logged %s %s: %.1f lbs tops, %g trimmers\n", e.Date, e.TimeSlot, e.TopsLbs, e.Trimmers)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Production day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&slot, "slot", "", "Time slot, e.g. \"7:00 AM - 8:00 AM\"")
	cmd.Flags().StringVar(&cultivar, "cultivar", "", "Cultivar being run")
	cmd.Flags().Float64Var(&tops, "tops", 0, "Tops weight in lbs")
	cmd.Flags().Float64Var(&smalls, "smalls", 0, "Smalls weight in lbs")
	cmd.Flags().Float64Var(&trimmers, "trimmers", 0, "Trimmers on the line")
	cmd.Flags().Float64Var(&effectiveTrimmers, "effective-trimmers", 0, "Override effective trimmer count for this slot")
	cmd.Flags().Float64Var(&buckers, "buckers", 0, "Buckers on the line")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note for the hour")
	cmd.Flags().BoolVar(&remove, "delete", false, "Delete the entry for --date/--slot instead of logging")

	return cmd
}

// runLogForm collects the entry fields interactively. Values already set from
// flags become the form defaults.
func runLogForm(e *domain.ProductionEntry) error {
	sched := scoreboard.DefaultSchedule()
	slotOptions := make([]huh.Option[string], 0, len(sched.StandardSlots))
	for _, s := range sched.StandardSlots {
		slotOptions = append(slotOptions, huh.NewOption(s, s))
	}

	topsStr := strconv.FormatFloat(e.TopsLbs, 'f', -1, 64)
	smallsStr := strconv.FormatFloat(e.SmallsLbs, 'f', -1, 64)
	trimmersStr := strconv.FormatFloat(e.Trimmers, 'f', -1, 64)
	buckersStr := strconv.FormatFloat(e.Buckers, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Hour?").
				Options(slotOptions...).
				Value(&e.TimeSlot),
			huh.NewInput().
				Title("Cultivar").
				Placeholder("Lifter").
				Value(&e.Cultivar),
		),
		huh.NewGroup(
			numberInput("Tops (lbs)", &topsStr),
			numberInput("Smalls (lbs)", &smallsStr),
			numberInput("Trimmers", &trimmersStr),
			numberInput("Buckers", &buckersStr),
			huh.NewInput().
				Title("Notes (blank for none)").
				Value(&e.Notes),
		),
	).WithTheme(shiftboardHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	e.TopsLbs = parseFormFloat(topsStr)
	e.SmallsLbs = parseFormFloat(smallsStr)
	e.Trimmers = parseFormFloat(trimmersStr)
	e.Buckers = parseFormFloat(buckersStr)
	return nil
}

func numberInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateNonNegativeNumber)
}

func validateNonNegativeNumber(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func parseFormFloat(s string) float64 {
	n, _ := strconv.ParseFloat(s, 64)
	return n
}
