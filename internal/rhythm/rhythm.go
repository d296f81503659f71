// Package rhythm builds the day by time-of-day heatmap averaged over weeks.
package rhythm

import (
	"github.com/julianstephens/weekgrid/internal/models"
)

// Buckets returns the start minute of every bucket in the configured span.
func Buckets(cfg models.AnalyticsConfig) []int {
	d := models.DefaultAnalyticsConfig()
	start, end, width := cfg.RhythmStartHour, cfg.RhythmEndHour, cfg.RhythmBucketMinutes
	if width <= 0 {
		width = d.RhythmBucketMinutes
	}
	if start < 0 || end > 24 || end <= start {
		start, end = d.RhythmStartHour, d.RhythmEndHour
	}

	var buckets []int
	for m := start * 60; m < end*60; m += width {
		buckets = append(buckets, m)
	}
	return buckets
}

// Build averages category hours per (day, bucket) over the weeks that have
// data for that cell. A week has data for a cell when its time axis reaches
// into the bucket and the day holds at least one tracked block; other weeks
// are left out of both the sum and the divisor.
func Build(grids []models.WeekGrid, cfg models.AnalyticsConfig) []models.RhythmCell {
	buckets := Buckets(cfg)
	width := cfg.RhythmBucketMinutes
	if width <= 0 {
		width = models.DefaultAnalyticsConfig().RhythmBucketMinutes
	}
	hours := cfg.SlotHours()

	// slot indexes of each grid per bucket
	slotsIn := make([][][]int, len(grids))
	for g, grid := range grids {
		slotsIn[g] = make([][]int, len(buckets))
		for i, label := range grid.Slots {
			minute, ok := models.SlotMinute(label)
			if !ok {
				continue
			}
			for b, start := range buckets {
				if minute >= start && minute < start+width {
					slotsIn[g][b] = append(slotsIn[g][b], i)
					break
				}
			}
		}
	}

	cells := make([]models.RhythmCell, 0, models.DaysPerWeek*len(buckets))
	for day := 0; day < models.DaysPerWeek; day++ {
		for b, start := range buckets {
			cell := models.RhythmCell{
				DayIndex:      day,
				Bucket:        models.FormatSlot(start),
				CategoryHours: models.NewCategoryHours(),
			}
			for g, grid := range grids {
				if len(slotsIn[g][b]) == 0 || !grid.HasTrackedDay(day) {
					continue
				}
				cell.Weeks++
				for _, i := range slotsIn[g][b] {
					if i >= len(grid.Days[day]) {
						continue
					}
					if blk := grid.Days[day][i]; blk.IsTracked() {
						cell.CategoryHours[blk.Category] += hours
					}
				}
			}
			if cell.Weeks > 0 {
				for _, c := range models.Categories {
					cell.CategoryHours[c] /= float64(cell.Weeks)
				}
			}
			cell.TotalHours = cell.CategoryHours.Total()
			cell.Dominant = cell.CategoryHours.Dominant()
			cells = append(cells, cell)
		}
	}
	return cells
}

// Cell finds the cell for a day and bucket label.
func Cell(cells []models.RhythmCell, day int, bucket string) (models.RhythmCell, bool) {
	for _, c := range cells {
		if c.DayIndex == day && c.Bucket == bucket {
			return c, true
		}
	}
	return models.RhythmCell{}, false
}
