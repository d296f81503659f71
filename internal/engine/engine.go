// Package engine is the entry point to the analytics core. Every function is
// pure: the same input always yields the same output and nothing is cached.
package engine

import (
	"sort"
	"time"

	"github.com/julianstephens/weekgrid/internal/aggregator"
	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/csvcodec"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/rhythm"
	"github.com/julianstephens/weekgrid/internal/streak"
	"github.com/julianstephens/weekgrid/internal/trend"
)

// Week is one grid together with the ISO week it belongs to.
type Week struct {
	Key  calendar.WeekKey `json:"key"`
	Grid models.WeekGrid  `json:"grid"`
}

// Engine runs the analytics with a fixed configuration.
type Engine struct {
	cfg models.AnalyticsConfig
}

// New returns an engine for the given configuration.
func New(cfg models.AnalyticsConfig) Engine {
	return Engine{cfg: cfg}
}

// Default returns an engine with the built-in configuration.
func Default() Engine {
	return New(models.DefaultAnalyticsConfig())
}

// Config returns a copy of the engine's configuration.
func (e Engine) Config() models.AnalyticsConfig {
	return e.cfg
}

// DecodeWeekCSV decodes a week grid in any supported dialect.
func (e Engine) DecodeWeekCSV(text string) (csvcodec.Result, error) {
	return csvcodec.Decode(text)
}

// EncodeWeekCSV encodes a grid in the canonical dialect.
func (e Engine) EncodeWeekCSV(grid models.WeekGrid) string {
	return csvcodec.Encode(grid)
}

// SummarizeWeek computes the weekly summary of one grid.
func (e Engine) SummarizeWeek(grid models.WeekGrid) models.WeeklySummary {
	return aggregator.Summarize(grid, e.cfg)
}

// SummarizeTrend builds a TrendSummary from summaries ordered newest first.
// Streaks span the given weeks, rebuilt from each summary's daily breakdown;
// the rhythm needs grids and is left to Analyze.
func (e Engine) SummarizeTrend(summaries []models.WeeklySummary, keys []calendar.WeekKey) models.TrendSummary {
	res := trend.Compute(summaries, keys, e.cfg)

	var records []streak.DayRecord
	for i := len(keys) - 1; i >= 0; i-- {
		if i < len(summaries) {
			records = append(records, streak.SummaryRecords(keys[i], summaries[i])...)
		}
	}

	return models.TrendSummary{
		Weeks:           append([]calendar.WeekKey{}, keys...),
		PerWeek:         res.PerWeek,
		CategoryTrends:  res.CategoryTrends,
		StreakMetrics:   streak.ComputeOver(records, streak.RuleFrom(e.cfg), e.cfg.SkipBudget),
		WorkLifeBalance: trend.Balance(summaries),
	}
}

// ComputeStreaks runs the streak walk over a day-ordered productivity series.
func (e Engine) ComputeStreaks(series []bool) models.StreakMetrics {
	return streak.Compute(series, e.cfg.SkipBudget)
}

// WorkGoal compares the week's Work hours with the weekly target.
func (e Engine) WorkGoal(summary models.WeeklySummary) models.WorkGoalMetrics {
	return aggregator.WorkGoal(summary, e.cfg)
}

// Procrastination measures non-work time inside the weekday work window.
func (e Engine) Procrastination(grid models.WeekGrid) models.ProcrastinationMetrics {
	return aggregator.Procrastination(grid, e.cfg)
}

// PeakSlot returns the slot with the most blocks in the productive categories.
func (e Engine) PeakSlot(summary models.WeeklySummary) (models.SlotPattern, bool) {
	return aggregator.PeakSlot(summary, e.cfg.ProductiveCategories)
}

// Rhythm averages the grids into the day by time-of-day matrix.
func (e Engine) Rhythm(grids []models.WeekGrid) []models.RhythmCell {
	return rhythm.Build(grids, e.cfg)
}

// DayRecords flattens weeks into per-day streak records, oldest first.
func (e Engine) DayRecords(weeks []Week) []streak.DayRecord {
	ordered := dedupe(weeks)
	records := make([]streak.DayRecord, 0, len(ordered)*calendar.DaysPerWeek)
	for i := len(ordered) - 1; i >= 0; i-- {
		records = append(records, streak.DailyRecords(ordered[i].Key, ordered[i].Grid, e.cfg)...)
	}
	return records
}

// Analyze assembles a full TrendSummary. The trend, rhythm and balance cover
// the newest TrendWindowWeeks weeks; streaks cover every week given and run
// through now.
func (e Engine) Analyze(weeks []Week, now time.Time) models.TrendSummary {
	ordered := dedupe(weeks)

	window := ordered
	if n := e.cfg.TrendWindowWeeks; n > 0 && len(window) > n {
		window = window[:n]
	}

	keys := make([]calendar.WeekKey, len(window))
	grids := make([]models.WeekGrid, len(window))
	summaries := make([]models.WeeklySummary, len(window))
	for i, w := range window {
		keys[i] = w.Key
		grids[i] = w.Grid
		summaries[i] = e.SummarizeWeek(w.Grid)
	}

	out := e.SummarizeTrend(summaries, keys)
	out.RhythmGrid = e.Rhythm(grids)
	out.StreakMetrics = streak.ComputeAsOf(e.DayRecords(weeks), now, streak.RuleFrom(e.cfg), e.cfg.SkipBudget)
	return out
}

// dedupe orders weeks newest first; a key given twice keeps its last grid.
func dedupe(weeks []Week) []Week {
	byKey := make(map[calendar.WeekKey]int, len(weeks))
	var out []Week
	for _, w := range weeks {
		if i, ok := byKey[w.Key]; ok {
			out[i] = w
			continue
		}
		byKey[w.Key] = len(out)
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key.After(out[j].Key)
	})
	return out
}

var defaultEngine = Default()

// DecodeWeekCSV decodes a week grid in any supported dialect.
func DecodeWeekCSV(text string) (csvcodec.Result, error) {
	return defaultEngine.DecodeWeekCSV(text)
}

// EncodeWeekCSV encodes a grid in the canonical dialect.
func EncodeWeekCSV(grid models.WeekGrid) string {
	return defaultEngine.EncodeWeekCSV(grid)
}

// SummarizeWeek summarizes a grid with the default configuration.
func SummarizeWeek(grid models.WeekGrid) models.WeeklySummary {
	return defaultEngine.SummarizeWeek(grid)
}

// SummarizeTrend summarizes newest-first weekly summaries with the default configuration.
func SummarizeTrend(summaries []models.WeeklySummary, keys []calendar.WeekKey) models.TrendSummary {
	return defaultEngine.SummarizeTrend(summaries, keys)
}

// ComputeStreaks applies the default skip budget to a productivity series.
func ComputeStreaks(series []bool) models.StreakMetrics {
	return defaultEngine.ComputeStreaks(series)
}
