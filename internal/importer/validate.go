package importer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/RogueFF/shiftboard/internal/scoreboard"
)

// ValidateRows checks day-sheet rows before conversion. Returns every problem
// found rather than stopping at the first.
func ValidateRows(rows []RowImport) []error {
	var errs []error

	seen := make(map[string]int)
	for _, row := range rows {
		prefix := fmt.Sprintf("line %d", row.Line)

		if row.Date == "" {
			errs = append(errs, fmt.Errorf("%s: date is required", prefix))
		} else if _, err := time.Parse("2006-01-02", row.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", prefix, row.Date))
		}

		slot := scoreboard.NormalizeSlot(row.TimeSlot)
		if slot == "" {
			errs = append(errs, fmt.Errorf("%s: time_slot is required", prefix))
		} else if _, _, ok := scoreboard.SlotBounds(slot); !ok {
			errs = append(errs, fmt.Errorf("%s: time_slot %q is not a clock range like \"7:00 AM - 8:00 AM\"", prefix, row.TimeSlot))
		}

		if row.Date != "" && slot != "" {
			key := row.Date + "|" + slot
			if prev, dup := seen[key]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate of line %d (%s %s)", prefix, prev, row.Date, slot))
			} else {
				seen[key] = row.Line
			}
		}

		errs = append(errs, validateNumber(prefix+": tops_lbs", row.TopsLbs, false)...)
		errs = append(errs, validateNumber(prefix+": smalls_lbs", row.SmallsLbs, true)...)
		errs = append(errs, validateNumber(prefix+": trimmers", row.Trimmers, false)...)
		errs = append(errs, validateNumber(prefix+": effective_trimmers", row.EffectiveTrimmers, true)...)
		errs = append(errs, validateNumber(prefix+": buckers", row.Buckers, true)...)
	}

	return errs
}

func validateNumber(field, value string, optional bool) []error {
	if value == "" {
		if optional {
			return nil
		}
		return []error{fmt.Errorf("%s is required", field)}
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return []error{fmt.Errorf("%s: invalid number %q", field, value)}
	}
	if n < 0 {
		return []error{fmt.Errorf("%s: must not be negative", field)}
	}
	return nil
}
