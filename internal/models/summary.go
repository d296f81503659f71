package models

import "github.com/julianstephens/weekgrid/internal/calendar"

// DaySummary is the per-day slice of a WeeklySummary.
type DaySummary struct {
	DayIndex      int           `json:"day_index"`
	CategoryHours CategoryHours `json:"category_hours"`
	TotalHours    float64       `json:"total_hours"`
}

// ActivityStat is one ranked activity.
type ActivityStat struct {
	Category   Category `json:"category"`
	Name       string   `json:"name"`
	Blocks     int      `json:"blocks"`
	Hours      float64  `json:"hours"`
	Percentage float64  `json:"percentage"`
}

// SlotPattern counts categories at one time label across the week.
type SlotPattern struct {
	Time           string           `json:"time"`
	CategoryCounts map[Category]int `json:"category_counts"`
	Total          int              `json:"total"`
}

// WeeklySummary is derived from a single WeekGrid.
type WeeklySummary struct {
	CategoryHours    CategoryHours           `json:"category_hours"`
	CategoryAverages CategoryHours           `json:"category_averages"`
	TotalHours       float64                 `json:"total_hours"`
	TrackedDays      int                     `json:"tracked_days"`
	DailyBreakdown   [DaysPerWeek]DaySummary `json:"daily_breakdown"`
	TopActivities    []ActivityStat          `json:"top_activities"`
	TimeSlotPatterns []SlotPattern           `json:"time_slot_patterns"`
}

// WorkGoalMetrics compares tracked work hours against the weekly goal.
type WorkGoalMetrics struct {
	TargetHours    float64 `json:"target_hours"`
	ActualHours    float64 `json:"actual_hours"`
	ProgressPct    float64 `json:"progress_pct"`
	RemainingHours float64 `json:"remaining_hours"`
	Met            bool    `json:"met"`
}

// ProcrastinationMetrics measures non-work time spent inside the weekday work window.
type ProcrastinationMetrics struct {
	Hours       float64    `json:"hours"`
	WindowHours float64    `json:"window_hours"`
	Percentage  float64    `json:"percentage"`
	ByDay       [5]float64 `json:"by_day"`
}

// StreakMetrics is derived from a day-ordered productivity sequence.
type StreakMetrics struct {
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
	ProductiveDays int `json:"productive_days"`
	TotalDays      int `json:"total_days"`
	SkippedDays    int `json:"skipped_days"`
}

// RhythmCell is one (day, time bucket) cell averaged over several weeks.
type RhythmCell struct {
	DayIndex      int           `json:"day_index"`
	Bucket        string        `json:"bucket"` // HH:MM start of the bucket
	CategoryHours CategoryHours `json:"category_hours"`
	TotalHours    float64       `json:"total_hours"`
	Weeks         int           `json:"weeks"`
	Dominant      Category      `json:"dominant,omitempty"`
}

// Direction classifies a multi-week slope.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

// CategoryTrend summarizes one category over the trend window.
type CategoryTrend struct {
	Average   float64   `json:"average"`
	Direction Direction `json:"direction"`
	ChangePct float64   `json:"change_pct"`
}

// WeekPoint is one week of the trend window.
type WeekPoint struct {
	Week          calendar.WeekKey `json:"week"`
	CategoryHours CategoryHours    `json:"category_hours"`
	TotalHours    float64          `json:"total_hours"`
}

// BalanceAssessment names the outcome of a work/life comparison.
type BalanceAssessment string

const (
	BalanceBalanced  BalanceAssessment = "balanced"
	BalanceWorkHeavy BalanceAssessment = "work-heavy"
	BalanceLifeHeavy BalanceAssessment = "life-heavy"
	BalanceUntracked BalanceAssessment = "untracked"
)

// WorkLifeBalance compares average weekly work hours with rest, growth and personal time.
type WorkLifeBalance struct {
	WorkHours  float64           `json:"work_hours"`
	LifeHours  float64           `json:"life_hours"`
	Ratio      float64           `json:"ratio"`
	Score      float64           `json:"score"`
	Assessment BalanceAssessment `json:"assessment"`
}

// TrendSummary is derived over an ordered list of weeks, newest first.
type TrendSummary struct {
	Weeks           []calendar.WeekKey         `json:"weeks"`
	PerWeek         []WeekPoint                `json:"per_week"`
	CategoryTrends  map[Category]CategoryTrend `json:"category_trends"`
	StreakMetrics   StreakMetrics              `json:"streak_metrics"`
	RhythmGrid      []RhythmCell               `json:"rhythm_grid"`
	WorkLifeBalance WorkLifeBalance            `json:"work_life_balance"`
}
