package csvcodec

import (
	"regexp"
	"strings"
	"time"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/constants"
)

// Dialect names one historical revision of the grid CSV grammar.
type Dialect string

const (
	// DialectCanonical is the current grammar and the only one Encode writes.
	// Day headers are ISO dates or day names; cells are category:activity:notes.
	DialectCanonical Dialect = "canonical"
	// DialectSpreadsheet is the spreadsheet export: datetime day headers, often
	// below title rows, and cells holding a category letter plus free notes.
	DialectSpreadsheet Dialect = "spreadsheet"
	// DialectUSExport is the Sunday-first US export: M/D/YYYY day headers and
	// two-part cells whose second part is notes.
	DialectUSExport Dialect = "us-export"
	// DialectPositional is the oldest grammar: day headers carry no day
	// information and columns are Monday..Sunday by position.
	DialectPositional Dialect = "positional"
)

// Dialects lists every dialect in detection order.
var Dialects = []Dialect{DialectSpreadsheet, DialectUSExport, DialectCanonical, DialectPositional}

// Lossy reports whether decoding the dialect cannot preserve the activity/notes split.
func (d Dialect) Lossy() bool {
	return d == DialectSpreadsheet
}

type headerKind int

const (
	headerOther headerKind = iota
	headerEmpty
	headerISODate
	headerDateTime
	headerUSDate
	headerDayName
)

var (
	isoDateRe  = regexp.MustCompile(`^(?:[A-Za-z]+,?\s+)?(\d{4}-\d{2}-\d{2})$`)
	dateTimeRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T]\d{1,2}:\d{2}(?::\d{2})?$`)
	usDateRe   = regexp.MustCompile(`^(?:[A-Za-z]+,?\s+)?(\d{1,2}/\d{1,2}/\d{4})$`)
)

var dayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "weds": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// headerCell is one classified day header.
type headerCell struct {
	column   int
	kind     headerKind
	dayIndex int
	date     time.Time
}

func (h headerCell) dated() bool {
	return h.kind == headerISODate || h.kind == headerDateTime || h.kind == headerUSDate
}

func classifyHeader(column int, raw string) headerCell {
	s := strings.TrimSpace(raw)
	cell := headerCell{column: column, kind: headerOther, dayIndex: -1}

	if s == "" {
		cell.kind = headerEmpty
		return cell
	}
	if m := dateTimeRe.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse(constants.DateFormat, m[1]); err == nil {
			cell.kind, cell.date, cell.dayIndex = headerDateTime, t, calendar.DayIndexOf(t)
		}
		return cell
	}
	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse(constants.DateFormat, m[1]); err == nil {
			cell.kind, cell.date, cell.dayIndex = headerISODate, t, calendar.DayIndexOf(t)
		}
		return cell
	}
	if m := usDateRe.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse(constants.USDateFormat, m[1]); err == nil {
			cell.kind, cell.date, cell.dayIndex = headerUSDate, t, calendar.DayIndexOf(t)
		}
		return cell
	}
	if wd, ok := dayNames[strings.ToLower(strings.TrimSuffix(s, "."))]; ok {
		cell.kind, cell.dayIndex = headerDayName, calendar.WeekdayIndex(wd)
	}
	return cell
}

// headerShape is everything the detectors look at. Title rows above the
// header say nothing about the grammar; only the day headers do.
type headerShape struct {
	cells []headerCell
}

func (h headerShape) has(kind headerKind) bool {
	for _, c := range h.cells {
		if c.kind == kind {
			return true
		}
	}
	return false
}

type detector struct {
	dialect Dialect
	matches func(headerShape) bool
}

// detectors run in order; the last one always matches.
var detectors = []detector{
	{DialectSpreadsheet, func(h headerShape) bool {
		return h.has(headerDateTime)
	}},
	{DialectUSExport, func(h headerShape) bool {
		return h.has(headerUSDate)
	}},
	{DialectCanonical, func(h headerShape) bool {
		return h.has(headerISODate) || h.has(headerDayName)
	}},
	{DialectPositional, func(headerShape) bool {
		return true
	}},
}

func detect(h headerShape) Dialect {
	for _, d := range detectors {
		if d.matches(h) {
			return d.dialect
		}
	}
	return DialectPositional
}

// columnMap assigns record columns to day indexes. Columns that carry no usable
// day, repeat a day already taken, or are dated outside week are dropped and
// counted. A Sunday-first export's leading Sunday belongs to the previous ISO
// week, so it is one of those.
func columnMap(d Dialect, h headerShape, week *calendar.WeekKey) (map[int]int, int) {
	cols := make(map[int]int, calendar.DaysPerWeek)
	taken := make(map[int]bool, calendar.DaysPerWeek)
	ignored := 0

	if d == DialectPositional {
		for day := 0; day < calendar.DaysPerWeek; day++ {
			cols[day+1] = day
		}
		for _, c := range h.cells {
			if c.column > calendar.DaysPerWeek && c.kind != headerEmpty {
				ignored++
			}
		}
		return cols, ignored
	}

	for _, c := range h.cells {
		if c.dayIndex < 0 {
			if c.kind != headerEmpty {
				ignored++
			}
			continue
		}
		if c.dated() && week != nil && !week.Contains(c.date) {
			ignored++
			continue
		}
		if taken[c.dayIndex] {
			ignored++
			continue
		}
		taken[c.dayIndex] = true
		cols[c.column] = c.dayIndex
	}
	return cols, ignored
}

// weekOf derives the ISO week from the Wednesday column, else the first dated column.
func weekOf(h headerShape) *calendar.WeekKey {
	var first *headerCell
	for i := range h.cells {
		c := h.cells[i]
		if !c.dated() {
			continue
		}
		if c.dayIndex == 2 {
			k := calendar.ToWeekKey(c.date)
			return &k
		}
		if first == nil {
			first = &h.cells[i]
		}
	}
	if first == nil {
		return nil
	}
	k := calendar.ToWeekKey(first.date)
	return &k
}
