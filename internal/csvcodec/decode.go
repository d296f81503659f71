// Package csvcodec converts week grids to and from their CSV interchange form.
//
// Decode accepts every historical dialect of the format and sniffs which one a
// document uses from its header row. Encode only ever writes the canonical
// dialect, so a decoded-then-encoded week is migrated forward.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/models"
)

// Summary describes what Decode saw while building the grid.
type Summary struct {
	TotalBlocks    int                     `json:"total_blocks"` // non-empty cells
	CategoryCounts map[models.Category]int `json:"category_counts"`
	SkippedRows    int                     `json:"skipped_rows"`
	IgnoredColumns int                     `json:"ignored_columns"`
}

// Result is a decoded document.
type Result struct {
	Grid    models.WeekGrid   `json:"grid"`
	Summary Summary           `json:"summary"`
	Dialect Dialect           `json:"dialect"`
	Week    *calendar.WeekKey `json:"week,omitempty"` // nil when the header carries no dates
}

var (
	slotRe        = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	slotSecondsRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):\d{2}$`)
)

type record struct {
	line   int
	fields []string
}

func (r record) blank() bool {
	for _, f := range r.fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (r record) text() string {
	return strings.Join(r.fields, ",")
}

// Decode parses a week grid. A document without a "Time" header row is the
// only failure; everything else that cannot be read is skipped and counted.
func Decode(text string) (Result, error) {
	records := readRecords(strings.TrimPrefix(text, "\ufeff"))

	header := -1
	for i, rec := range records {
		if rec.blank() {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rec.fields[0]), constants.TimeColumnMarker) {
			header = i
			break
		}
	}
	if header < 0 {
		return Result{}, noHeaderError(records)
	}

	var shape headerShape
	for col, raw := range records[header].fields {
		if col == 0 {
			continue
		}
		shape.cells = append(shape.cells, classifyHeader(col, raw))
	}
	dialect := detect(shape)
	week := weekOf(shape)
	columns, ignored := columnMap(dialect, shape, week)

	type row struct {
		slot  string
		cells map[int]models.TimeBlock
	}
	var rows []row
	skipped := 0
	last := -1

	for _, rec := range records[header+1:] {
		if rec.blank() {
			continue
		}
		minute, ok := parseSlot(dialect, rec.fields[0])
		if !ok || minute <= last {
			skipped++
			continue
		}
		last = minute

		r := row{slot: models.FormatSlot(minute), cells: make(map[int]models.TimeBlock)}
		for col, day := range columns {
			if col >= len(rec.fields) {
				continue
			}
			if b := ParseCell(dialect, rec.fields[col]); !b.IsEmpty() {
				r.cells[day] = b
			}
		}
		rows = append(rows, r)
	}

	slots := make([]string, len(rows))
	for i, r := range rows {
		slots[i] = r.slot
	}
	grid := models.NewWeekGrid(slots)
	summary := Summary{
		CategoryCounts: make(map[models.Category]int),
		SkippedRows:    skipped,
		IgnoredColumns: ignored,
	}
	for i, r := range rows {
		for day, b := range r.cells {
			grid.Set(day, i, b)
			summary.TotalBlocks++
			if b.IsTracked() {
				summary.CategoryCounts[b.Category]++
			}
		}
	}

	return Result{
		Grid:    grid,
		Summary: summary,
		Dialect: dialect,
		Week:    week,
	}, nil
}

// readRecords parses every line as its own CSV record. A grid row never spans
// lines, so an unbalanced quote can only damage the row it appears in.
func readRecords(text string) []record {
	var out []record
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r := csv.NewReader(strings.NewReader(line))
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		fields, err := r.Read()
		if err != nil && !errors.Is(err, io.EOF) {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				continue
			}
		}
		if len(fields) > 0 {
			out = append(out, record{line: i + 1, fields: fields})
		}
	}
	return out
}

func noHeaderError(records []record) *FormatError {
	for _, rec := range records {
		if !rec.blank() {
			return &FormatError{
				Line:    rec.line,
				Context: rec.text(),
				Reason:  `no header row starting with "Time"`,
				Err:     ErrNoHeader,
			}
		}
	}
	return &FormatError{Reason: "empty document", Err: ErrNoHeader}
}

// parseSlot reads a row's time label. Spreadsheet exports render clock cells
// with seconds, so that dialect also accepts HH:MM:SS.
func parseSlot(d Dialect, raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	m := slotRe.FindStringSubmatch(s)
	if m == nil && d == DialectSpreadsheet {
		m = slotSecondsRe.FindStringSubmatch(s)
	}
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 || mm > 59 {
		return 0, false
	}
	return h*60 + mm, true
}
