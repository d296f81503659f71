// Package aggregator derives the weekly summary and the goal metrics from a
// single week grid. Untracked blocks (no category) never contribute hours.
package aggregator

import (
	"math"
	"sort"

	"github.com/julianstephens/weekgrid/internal/models"
)

// Summarize computes the WeeklySummary of one grid.
func Summarize(grid models.WeekGrid, cfg models.AnalyticsConfig) models.WeeklySummary {
	hours := cfg.SlotHours()
	topN := cfg.TopN
	if topN <= 0 {
		topN = models.DefaultAnalyticsConfig().TopN
	}

	s := models.WeeklySummary{
		CategoryHours:    models.NewCategoryHours(),
		CategoryAverages: models.NewCategoryHours(),
	}

	type group struct {
		category models.Category
		name     string
		blocks   int
	}
	var groups []*group
	index := make(map[models.Category]map[string]*group)

	patterns := make([]models.SlotPattern, len(grid.Slots))
	for i, slot := range grid.Slots {
		patterns[i] = models.SlotPattern{Time: slot, CategoryCounts: make(map[models.Category]int)}
	}

	for day := 0; day < models.DaysPerWeek; day++ {
		ds := models.DaySummary{DayIndex: day, CategoryHours: models.NewCategoryHours()}
		for i, b := range grid.Days[day] {
			if !b.IsTracked() {
				continue
			}
			ds.CategoryHours[b.Category] += hours
			s.CategoryHours[b.Category] += hours

			if i < len(patterns) {
				patterns[i].CategoryCounts[b.Category]++
				patterns[i].Total++
			}

			name := b.DisplayName()
			byName, ok := index[b.Category]
			if !ok {
				byName = make(map[string]*group)
				index[b.Category] = byName
			}
			g, ok := byName[name]
			if !ok {
				g = &group{category: b.Category, name: name}
				byName[name] = g
				groups = append(groups, g)
			}
			g.blocks++
		}
		ds.TotalHours = ds.CategoryHours.Total()
		if ds.TotalHours > 0 {
			s.TrackedDays++
		}
		s.DailyBreakdown[day] = ds
	}

	s.TotalHours = s.CategoryHours.Total()
	if s.TrackedDays > 0 {
		for _, c := range models.Categories {
			s.CategoryAverages[c] = s.CategoryHours[c] / float64(s.TrackedDays)
		}
	}

	// groups is in first-seen order; the stable sort keeps it for ties
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].blocks > groups[j].blocks
	})
	if len(groups) > topN {
		groups = groups[:topN]
	}
	s.TopActivities = make([]models.ActivityStat, 0, len(groups))
	for _, g := range groups {
		h := float64(g.blocks) * hours
		stat := models.ActivityStat{
			Category: g.category,
			Name:     g.name,
			Blocks:   g.blocks,
			Hours:    h,
		}
		if s.TotalHours > 0 {
			stat.Percentage = round(h/s.TotalHours*100, 2)
		}
		s.TopActivities = append(s.TopActivities, stat)
	}

	s.TimeSlotPatterns = patterns
	return s
}

// PeakSlot returns the slot holding the most blocks in the given category set.
// Ties go to the earliest slot; ok is false when no slot has any.
func PeakSlot(summary models.WeeklySummary, set []models.Category) (models.SlotPattern, bool) {
	best := -1
	bestCount := 0
	for i, p := range summary.TimeSlotPatterns {
		n := 0
		for _, c := range set {
			n += p.CategoryCounts[c]
		}
		if n > bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		return models.SlotPattern{}, false
	}
	return summary.TimeSlotPatterns[best], true
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
