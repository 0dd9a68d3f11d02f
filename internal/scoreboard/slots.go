package scoreboard

import (
	"regexp"
	"sort"
	"strings"
)

// Slot labels come in from spreadsheets, hand entry, and imports, so the
// separator between the two clock times shows up as a hyphen, en dash, or em
// dash depending on the source. Everything in this package compares slots by
// their normalized form.

// slotSeparator is the canonical separator between the start and end time.
const slotSeparator = "–"

var dashReplacer = strings.NewReplacer("-", slotSeparator, "—", slotSeparator)

var clockRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// unparseableStart sorts any label that has no readable start time after every
// real slot of the day.
const unparseableStart = 9999

// NormalizeSlot trims a slot label and maps every dash variant to the
// canonical separator. Two labels naming the same interval normalize equal.
func NormalizeSlot(label string) string {
	return dashReplacer.Replace(strings.TrimSpace(label))
}

// ParseClock parses a 12-hour clock time like "7:00 AM" into minutes since
// midnight. The meridiem is case-insensitive; surrounding whitespace is
// ignored. Returns ok=false for anything that is not exactly a clock time.
// 12:00 AM parses to 0 and 12:00 PM to 720.
func ParseClock(s string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	hours := atoi(m[1])
	minutes := atoi(m[2])
	meridiem := strings.ToUpper(m[3])
	if meridiem == "PM" && hours != 12 {
		hours += 12
	}
	if meridiem == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + minutes, true
}

// atoi converts clockRe digit captures. The regexp guarantees digits only.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// SlotBounds parses both halves of a slot label into start and end minutes
// since midnight. Returns ok=false unless both halves parse.
func SlotBounds(label string) (start, end int, ok bool) {
	parts := strings.SplitN(NormalizeSlot(label), slotSeparator, 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, sok := ParseClock(parts[0])
	end, eok := ParseClock(parts[1])
	if !sok || !eok {
		return 0, 0, false
	}
	return start, end, true
}

// SlotEndText returns the trimmed text after the separator, or "" if the label
// has no separator. Slots are matched by this end text where a dynamic slot
// stands in for a standard one, so "7:44 AM – 8:00 AM" substitutes for
// "7:00 AM – 8:00 AM".
func SlotEndText(label string) string {
	parts := strings.SplitN(NormalizeSlot(label), slotSeparator, 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// slotStartMinutes returns the parsed start time of a slot label, or
// unparseableStart when the label does not begin with a clock time.
func slotStartMinutes(label string) int {
	parts := strings.SplitN(NormalizeSlot(label), slotSeparator, 2)
	if start, ok := ParseClock(parts[0]); ok {
		return start
	}
	return unparseableStart
}

// SortSlotsChronologically returns a new slice of the given slot labels
// ordered by parsed start time. Naive string ordering puts "10:00 AM" before
// "7:00 AM"; this does not. Labels that fail to parse sort after all
// parseable ones. The input slice is not modified.
func SortSlotsChronologically(slots []string) []string {
	sorted := make([]string, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return slotStartMinutes(sorted[i]) < slotStartMinutes(sorted[j])
	})
	return sorted
}
