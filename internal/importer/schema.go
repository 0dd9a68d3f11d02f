package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RowImport is one line of a day-sheet CSV, still in string form. Validation
// and conversion happen in later passes so a bad sheet reports every problem
// at once instead of stopping at the first.
type RowImport struct {
	Line              int // 1-based line number in the source file
	Date              string
	TimeSlot          string
	Cultivar          string
	TopsLbs           string
	SmallsLbs         string
	Trimmers          string
	EffectiveTrimmers string
	Buckers           string
	Notes             string
}

// columnSetters maps header names to row fields. Headers are matched
// case-insensitively with surrounding whitespace ignored.
var columnSetters = map[string]func(*RowImport, string){
	"date":               func(r *RowImport, v string) { r.Date = v },
	"time_slot":          func(r *RowImport, v string) { r.TimeSlot = v },
	"cultivar":           func(r *RowImport, v string) { r.Cultivar = v },
	"tops_lbs":           func(r *RowImport, v string) { r.TopsLbs = v },
	"smalls_lbs":         func(r *RowImport, v string) { r.SmallsLbs = v },
	"trimmers":           func(r *RowImport, v string) { r.Trimmers = v },
	"effective_trimmers": func(r *RowImport, v string) { r.EffectiveTrimmers = v },
	"buckers":            func(r *RowImport, v string) { r.Buckers = v },
	"notes":              func(r *RowImport, v string) { r.Notes = v },
}

// LoadDaySheet reads a day-sheet CSV file into rows. The first record must be
// a header naming at least date, time_slot, tops_lbs, and trimmers; the
// remaining columns are optional and may appear in any order.
func LoadDaySheet(path string) ([]RowImport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDaySheet(f)
}

// ReadDaySheet parses day-sheet CSV content.
func ReadDaySheet(r io.Reader) ([]RowImport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	setters := make([]func(*RowImport, string), len(header))
	seen := make(map[string]bool)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		setter, ok := columnSetters[key]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[key] = true
		setters[i] = setter
	}
	for _, required := range []string{"date", "time_slot", "tops_lbs", "trimmers"} {
		if !seen[required] {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var rows []RowImport
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row := RowImport{Line: line}
		for i, value := range record {
			setters[i](&row, strings.TrimSpace(value))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
