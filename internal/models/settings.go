package models

import "github.com/julianstephens/weekgrid/internal/constants"

// AnalyticsConfig holds every tunable used by the analytics engine.
type AnalyticsConfig struct {
	SlotMinutes               int        `json:"slot_minutes" yaml:"slot_minutes"`                             // width of one grid slot
	TopN                      int        `json:"top_n" yaml:"top_n"`                                           // number of ranked activities
	WeekdayHours              float64    `json:"weekday_hours" yaml:"weekday_hours"`                           // productive-day bar, Mon-Fri
	WeekendHours              float64    `json:"weekend_hours" yaml:"weekend_hours"`                           // productive-day bar, Sat-Sun
	IncludeMandatory          bool       `json:"include_mandatory" yaml:"include_mandatory"`                   // count M hours toward the bar
	SkipBudget                int        `json:"skip_budget" yaml:"skip_budget"`                               // tolerated consecutive misses
	RhythmStartHour           int        `json:"rhythm_start_hour" yaml:"rhythm_start_hour"`                   // first rhythm bucket
	RhythmEndHour             int        `json:"rhythm_end_hour" yaml:"rhythm_end_hour"`                       // exclusive end of the last bucket
	RhythmBucketMinutes       int        `json:"rhythm_bucket_minutes" yaml:"rhythm_bucket_minutes"`           // bucket width
	ProductiveCategories      []Category `json:"productive_categories" yaml:"productive_categories"`           // used for the peak slot
	TrendDeadBandPct          float64    `json:"trend_dead_band_pct" yaml:"trend_dead_band_pct"`               // |change| at or below this is stable
	TrendWindowWeeks          int        `json:"trend_window_weeks" yaml:"trend_window_weeks"`                 // trailing weeks in a trend
	WorkGoalHours             float64    `json:"work_goal_hours" yaml:"work_goal_hours"`                       // weekly work target
	WorkWindowStart           string     `json:"work_window_start" yaml:"work_window_start"`                   // HH:MM
	WorkWindowEnd             string     `json:"work_window_end" yaml:"work_window_end"`                       // HH:MM, exclusive
	ProcrastinationCategories []Category `json:"procrastination_categories" yaml:"procrastination_categories"` // counted inside the work window
}

// DefaultAnalyticsConfig returns the built-in configuration.
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		SlotMinutes:               constants.DefaultSlotMinutes,
		TopN:                      constants.DefaultTopN,
		WeekdayHours:              constants.DefaultWeekdayHours,
		WeekendHours:              constants.DefaultWeekendHours,
		IncludeMandatory:          constants.DefaultIncludeMandatory,
		SkipBudget:                constants.DefaultSkipBudget,
		RhythmStartHour:           constants.DefaultRhythmStartHour,
		RhythmEndHour:             constants.DefaultRhythmEndHour,
		RhythmBucketMinutes:       constants.DefaultRhythmBucketMinutes,
		ProductiveCategories:      ParseCategorySet(constants.DefaultProductiveCategories),
		TrendDeadBandPct:          constants.DefaultTrendDeadBandPct,
		TrendWindowWeeks:          constants.DefaultTrendWindowWeeks,
		WorkGoalHours:             constants.DefaultWorkGoalHours,
		WorkWindowStart:           constants.DefaultWorkWindowStart,
		WorkWindowEnd:             constants.DefaultWorkWindowEnd,
		ProcrastinationCategories: ParseCategorySet(constants.DefaultProcrastinationCategories),
	}
}

// SlotHours is the configured slot width in hours.
func (c AnalyticsConfig) SlotHours() float64 {
	if c.SlotMinutes <= 0 {
		return float64(constants.DefaultSlotMinutes) / 60.0
	}
	return float64(c.SlotMinutes) / 60.0
}

// Settings represents application-wide settings
type Settings struct {
	Timezone  string          `json:"timezone" yaml:"timezone"` // IANA timezone name, or "Local"
	Analytics AnalyticsConfig `json:"analytics" yaml:"analytics"`
}
