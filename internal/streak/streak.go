// Package streak turns tracked days into productivity streaks.
//
// A streak counts productive days. Up to the skip budget of consecutive
// non-productive days are tolerated without breaking it; the budget refills
// after every productive day.
package streak

import (
	"time"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/models"
)

// Rule decides whether a single day was productive.
type Rule struct {
	WeekdayHours     float64
	WeekendHours     float64
	IncludeMandatory bool
}

// RuleFrom extracts the productivity rule from the analytics config.
func RuleFrom(cfg models.AnalyticsConfig) Rule {
	return Rule{
		WeekdayHours:     cfg.WeekdayHours,
		WeekendHours:     cfg.WeekendHours,
		IncludeMandatory: cfg.IncludeMandatory,
	}
}

// DayRecord is the raw material for one calendar day.
type DayRecord struct {
	Date           time.Time `json:"date"`
	WorkHours      float64   `json:"work_hours"`
	MandatoryHours float64   `json:"mandatory_hours"`
	Tracked        bool      `json:"tracked"` // false when the day holds no tracked block
}

// Day is one entry of a dense series.
type Day struct {
	Date       time.Time `json:"date"`
	Tracked    bool      `json:"tracked"`
	Productive bool      `json:"productive"`
}

// Threshold returns the hour bar for the given date.
func (r Rule) Threshold(date time.Time) float64 {
	if calendar.IsWeekend(calendar.DayIndexOf(date)) {
		return r.WeekendHours
	}
	return r.WeekdayHours
}

// Productive applies the rule. An untracked day is never productive.
func (r Rule) Productive(d DayRecord) bool {
	if !d.Tracked {
		return false
	}
	hours := d.WorkHours
	if r.IncludeMandatory {
		hours += d.MandatoryHours
	}
	return hours >= r.Threshold(d.Date)
}

// DailyRecords turns one week grid into seven records, Monday first.
func DailyRecords(week calendar.WeekKey, grid models.WeekGrid, cfg models.AnalyticsConfig) []DayRecord {
	hours := cfg.SlotHours()
	records := make([]DayRecord, 0, calendar.DaysPerWeek)
	for day := 0; day < calendar.DaysPerWeek; day++ {
		rec := DayRecord{Date: week.Date(day)}
		for _, b := range grid.Days[day] {
			if !b.IsTracked() {
				continue
			}
			rec.Tracked = true
			switch b.Category {
			case models.CategoryWork:
				rec.WorkHours += hours
			case models.CategoryMandatory:
				rec.MandatoryHours += hours
			}
		}
		records = append(records, rec)
	}
	return records
}

// SummaryRecords rebuilds the seven daily records of a week from its summary.
func SummaryRecords(week calendar.WeekKey, summary models.WeeklySummary) []DayRecord {
	records := make([]DayRecord, 0, calendar.DaysPerWeek)
	for day, ds := range summary.DailyBreakdown {
		records = append(records, DayRecord{
			Date:           week.Date(day),
			WorkHours:      ds.CategoryHours[models.CategoryWork],
			MandatoryHours: ds.CategoryHours[models.CategoryMandatory],
			Tracked:        ds.TotalHours > 0,
		})
	}
	return records
}

// Series lays the records out over every calendar day in [from, to]. Dates
// with no record are untracked; a date recorded twice keeps the last record.
func Series(records []DayRecord, from, to time.Time, rule Rule) []Day {
	from, to = calendar.StartOfDay(from), calendar.StartOfDay(to)
	if to.Before(from) {
		return nil
	}

	byDate := make(map[string]DayRecord, len(records))
	for _, r := range records {
		byDate[r.Date.Format(constants.DateFormat)] = r
	}

	var days []Day
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := Day{Date: d}
		if r, ok := byDate[d.Format(constants.DateFormat)]; ok {
			r.Date = d
			day.Tracked = r.Tracked
			day.Productive = rule.Productive(r)
		}
		days = append(days, day)
	}
	return days
}

// Productivity projects a series onto its productive flags.
func Productivity(days []Day) []bool {
	out := make([]bool, len(days))
	for i, d := range days {
		out[i] = d.Productive
	}
	return out
}

// Compute walks the sequence oldest to newest. A non-productive day is
// tolerated while the current gap is below budget and a streak is live;
// otherwise the counter resets.
func Compute(productive []bool, budget int) models.StreakMetrics {
	m := models.StreakMetrics{TotalDays: len(productive)}
	if budget < 0 {
		budget = 0
	}

	counter, gap := 0, 0
	for _, p := range productive {
		switch {
		case p:
			m.ProductiveDays++
			counter++
			gap = 0
			if counter > m.LongestStreak {
				m.LongestStreak = counter
			}
		case counter > 0 && gap < budget:
			gap++
			m.SkippedDays++
		default:
			counter, gap = 0, 0
		}
	}
	m.CurrentStreak = counter
	return m
}

// ComputeAsOf runs the series from the oldest record through now, so a
// tracker left unused for longer than the budget reports no current streak.
// Records dated after now are ignored unless every record is.
func ComputeAsOf(records []DayRecord, now time.Time, rule Rule, budget int) models.StreakMetrics {
	if len(records) == 0 {
		return models.StreakMetrics{}
	}
	from, latest := span(records)
	to := now
	if calendar.StartOfDay(to).Before(calendar.StartOfDay(from)) {
		to = latest
	}
	return Compute(Productivity(Series(records, from, to, rule)), budget)
}

// ComputeOver runs the series from the oldest record to the newest.
func ComputeOver(records []DayRecord, rule Rule, budget int) models.StreakMetrics {
	if len(records) == 0 {
		return models.StreakMetrics{}
	}
	from, to := span(records)
	return Compute(Productivity(Series(records, from, to, rule)), budget)
}

func span(records []DayRecord) (time.Time, time.Time) {
	from, to := records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(from) {
			from = r.Date
		}
		if r.Date.After(to) {
			to = r.Date
		}
	}
	return from, to
}
