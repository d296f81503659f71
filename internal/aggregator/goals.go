package aggregator

import (
	"github.com/julianstephens/weekgrid/internal/models"
)

// WorkGoal compares the week's Work hours with the configured weekly target.
func WorkGoal(summary models.WeeklySummary, cfg models.AnalyticsConfig) models.WorkGoalMetrics {
	m := models.WorkGoalMetrics{
		TargetHours: cfg.WorkGoalHours,
		ActualHours: summary.CategoryHours[models.CategoryWork],
	}
	if m.TargetHours <= 0 {
		m.Met = true
		return m
	}
	m.ProgressPct = round(m.ActualHours/m.TargetHours*100, 1)
	if m.ActualHours < m.TargetHours {
		m.RemainingHours = m.TargetHours - m.ActualHours
	}
	m.Met = m.ActualHours >= m.TargetHours
	return m
}

// Procrastination measures hours spent in the procrastination categories inside
// the weekday work window. WindowHours is the tracked time inside the window,
// so untracked slots do not dilute the percentage.
func Procrastination(grid models.WeekGrid, cfg models.AnalyticsConfig) models.ProcrastinationMetrics {
	d := models.DefaultAnalyticsConfig()
	start, ok := models.SlotMinute(cfg.WorkWindowStart)
	if !ok {
		start, _ = models.SlotMinute(d.WorkWindowStart)
	}
	end, ok := models.SlotMinute(cfg.WorkWindowEnd)
	if !ok || end <= start {
		start, _ = models.SlotMinute(d.WorkWindowStart)
		end, _ = models.SlotMinute(d.WorkWindowEnd)
	}
	categories := cfg.ProcrastinationCategories
	if len(categories) == 0 {
		categories = d.ProcrastinationCategories
	}
	hours := cfg.SlotHours()

	var m models.ProcrastinationMetrics
	for i, slot := range grid.Slots {
		minute, ok := models.SlotMinute(slot)
		if !ok || minute < start || minute >= end {
			continue
		}
		for day := 0; day < len(m.ByDay); day++ {
			if i >= len(grid.Days[day]) {
				continue
			}
			b := grid.Days[day][i]
			if !b.IsTracked() {
				continue
			}
			m.WindowHours += hours
			if b.Category.In(categories) {
				m.Hours += hours
				m.ByDay[day] += hours
			}
		}
	}
	if m.WindowHours > 0 {
		m.Percentage = round(m.Hours/m.WindowHours*100, 1)
	}
	return m
}
