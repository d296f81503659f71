// Package calendar owns the single week-numbering convention used across weekgrid.
//
// Weeks are ISO-8601 weeks: they start on Monday, and week 1 is the week holding the
// year's first Thursday (equivalently, January 4th). An ISO year has 52 or 53 weeks and
// its first and last days may belong to a neighbouring Gregorian year. Day indexes are
// Monday-first (0=Mon ... 6=Sun). No other package computes week numbers.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/julianstephens/weekgrid/internal/constants"
)

// ErrInvalidWeekKey is returned when a week key cannot be parsed or is out of range.
var ErrInvalidWeekKey = errors.New("invalid week key")

var weekKeyRe = regexp.MustCompile(`^(\d{4})(?:-W|-|_|W)(\d{1,2})$`)

// WeekKey identifies one ISO week.
type WeekKey struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// ToWeekKey returns the ISO week containing the calendar date of t.
func ToWeekKey(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// ParseWeekKey accepts "2025-W03", "2025-03", "2025W03" and the export file form "2025_03".
func ParseWeekKey(s string) (WeekKey, error) {
	m := weekKeyRe.FindStringSubmatch(s)
	if m == nil {
		return WeekKey{}, fmt.Errorf("%w: %q", ErrInvalidWeekKey, s)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	k := WeekKey{Year: year, Week: week}
	if !k.Valid() {
		return WeekKey{}, fmt.Errorf("%w: %q has no week %d (year has %d weeks)", ErrInvalidWeekKey, s, week, WeeksInYear(year))
	}
	return k, nil
}

// WeeksInYear returns 52 or 53. December 28th always falls in the last ISO week.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// Valid reports whether the key names an existing ISO week.
func (k WeekKey) Valid() bool {
	return k.Year > 0 && k.Week >= 1 && k.Week <= WeeksInYear(k.Year)
}

// IsZero reports whether the key is unset.
func (k WeekKey) IsZero() bool {
	return k.Year == 0 && k.Week == 0
}

// String returns the canonical "YYYY-Wnn" form.
func (k WeekKey) String() string {
	return fmt.Sprintf(constants.WeekKeyFormat, k.Year, k.Week)
}

// Start returns Monday 00:00 UTC of the week.
func (k WeekKey) Start() time.Time {
	jan4 := time.Date(k.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -DayIndexOf(jan4))
	return monday.AddDate(0, 0, (k.Week-1)*7)
}

// DateRange returns the Monday and Sunday (both at 00:00 UTC) bounding the week.
func (k WeekKey) DateRange() (time.Time, time.Time) {
	start := k.Start()
	return start, start.AddDate(0, 0, 6)
}

// Date returns the calendar date of the given Monday-first day index.
func (k WeekKey) Date(dayIndex int) time.Time {
	return k.Start().AddDate(0, 0, dayIndex)
}

// Contains reports whether the calendar date of t falls inside the week.
func (k WeekKey) Contains(t time.Time) bool {
	return ToWeekKey(t) == k
}

// AddWeeks moves the key by n weeks, crossing year boundaries as needed.
func (k WeekKey) AddWeeks(n int) WeekKey {
	return ToWeekKey(k.Start().AddDate(0, 0, 7*n))
}

// Next returns the following week.
func (k WeekKey) Next() WeekKey { return k.AddWeeks(1) }

// Prev returns the preceding week.
func (k WeekKey) Prev() WeekKey { return k.AddWeeks(-1) }

// Compare returns -1, 0 or 1.
func (k WeekKey) Compare(other WeekKey) int {
	switch {
	case k.Year < other.Year:
		return -1
	case k.Year > other.Year:
		return 1
	case k.Week < other.Week:
		return -1
	case k.Week > other.Week:
		return 1
	default:
		return 0
	}
}

// Before reports whether k is earlier than other.
func (k WeekKey) Before(other WeekKey) bool { return k.Compare(other) < 0 }

// After reports whether k is later than other.
func (k WeekKey) After(other WeekKey) bool { return k.Compare(other) > 0 }

// WeekKeyToDateRange is the free-function form of WeekKey.DateRange.
func WeekKeyToDateRange(k WeekKey) (time.Time, time.Time) {
	return k.DateRange()
}

// Trailing returns n week keys ending at end, newest first.
func Trailing(end WeekKey, n int) []WeekKey {
	if n <= 0 {
		return nil
	}
	keys := make([]WeekKey, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, end.AddWeeks(-i))
	}
	return keys
}

// Between returns every week from "from" through "to" inclusive, oldest first.
func Between(from, to WeekKey) []WeekKey {
	var keys []WeekKey
	for k := from; !k.After(to); k = k.Next() {
		keys = append(keys, k)
	}
	return keys
}
