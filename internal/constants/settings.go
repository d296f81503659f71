package constants

const (
	// General Settings
	SettingTimezone    = "timezone"
	SettingSlotMinutes = "slot_minutes"
	SettingTopN        = "top_activities"

	// Streak Settings
	SettingWeekdayHours     = "streak_weekday_hours"
	SettingWeekendHours     = "streak_weekend_hours"
	SettingIncludeMandatory = "streak_include_mandatory"
	SettingSkipBudget       = "streak_skip_budget"

	// Rhythm Settings
	SettingRhythmStartHour     = "rhythm_start_hour"
	SettingRhythmEndHour       = "rhythm_end_hour"
	SettingRhythmBucketMinutes = "rhythm_bucket_minutes"

	// Goal / Trend Settings
	SettingProductiveCategories      = "productive_categories"
	SettingTrendDeadBandPct          = "trend_dead_band_pct"
	SettingTrendWindowWeeks          = "trend_window_weeks"
	SettingWorkGoalHours             = "work_goal_hours"
	SettingWorkWindowStart           = "work_window_start"
	SettingWorkWindowEnd             = "work_window_end"
	SettingProcrastinationCategories = "procrastination_categories"

	// Default Settings Values
	DefaultTimezone                  = "Local" // Use system local timezone by default
	DefaultSlotMinutes               = 30
	DefaultTopN                      = 10
	DefaultWeekdayHours              = 4.0
	DefaultWeekendHours              = 2.0
	DefaultIncludeMandatory          = true
	DefaultSkipBudget                = 2
	DefaultRhythmStartHour           = 6
	DefaultRhythmEndHour             = 23
	DefaultRhythmBucketMinutes       = 60
	DefaultProductiveCategories      = "WG"
	DefaultTrendDeadBandPct          = 5.0
	DefaultTrendWindowWeeks          = 4
	DefaultWorkGoalHours             = 40.0
	DefaultWorkWindowStart           = "09:00"
	DefaultWorkWindowEnd             = "17:00"
	DefaultProcrastinationCategories = "RP"
)
