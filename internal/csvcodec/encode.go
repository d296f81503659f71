package csvcodec

import (
	"encoding/csv"
	"strings"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/models"
)

// Encode writes the grid in the canonical dialect with LF line endings.
// The output depends only on the grid, byte for byte.
func Encode(grid models.WeekGrid) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := make([]string, 0, calendar.DaysPerWeek+1)
	header = append(header, constants.TimeColumnMarker)
	for day := 0; day < calendar.DaysPerWeek; day++ {
		header = append(header, calendar.DayName(day))
	}
	_ = w.Write(header)

	for i, slot := range grid.Slots {
		rec := make([]string, 0, calendar.DaysPerWeek+1)
		rec = append(rec, slot)
		for day := 0; day < calendar.DaysPerWeek; day++ {
			var cell string
			if i < len(grid.Days[day]) {
				cell = FormatCell(grid.Days[day][i])
			}
			rec = append(rec, cell)
		}
		_ = w.Write(rec)
	}

	// strings.Builder never fails a write
	w.Flush()
	return b.String()
}
