package models

import (
	"fmt"

	"github.com/julianstephens/weekgrid/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Keys that are absent keep their zero value; call ApplyDefaultSettings afterwards.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}
	a := &settings.Analytics

	for key, value := range data {
		var err error
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingSlotMinutes:
			_, err = fmt.Sscanf(value, "%d", &a.SlotMinutes)
		case constants.SettingTopN:
			_, err = fmt.Sscanf(value, "%d", &a.TopN)
		case constants.SettingWeekdayHours:
			_, err = fmt.Sscanf(value, "%g", &a.WeekdayHours)
		case constants.SettingWeekendHours:
			_, err = fmt.Sscanf(value, "%g", &a.WeekendHours)
		case constants.SettingIncludeMandatory:
			a.IncludeMandatory = value == "true"
		case constants.SettingSkipBudget:
			_, err = fmt.Sscanf(value, "%d", &a.SkipBudget)
		case constants.SettingRhythmStartHour:
			_, err = fmt.Sscanf(value, "%d", &a.RhythmStartHour)
		case constants.SettingRhythmEndHour:
			_, err = fmt.Sscanf(value, "%d", &a.RhythmEndHour)
		case constants.SettingRhythmBucketMinutes:
			_, err = fmt.Sscanf(value, "%d", &a.RhythmBucketMinutes)
		case constants.SettingProductiveCategories:
			a.ProductiveCategories = ParseCategorySet(value)
		case constants.SettingTrendDeadBandPct:
			_, err = fmt.Sscanf(value, "%g", &a.TrendDeadBandPct)
		case constants.SettingTrendWindowWeeks:
			_, err = fmt.Sscanf(value, "%d", &a.TrendWindowWeeks)
		case constants.SettingWorkGoalHours:
			_, err = fmt.Sscanf(value, "%g", &a.WorkGoalHours)
		case constants.SettingWorkWindowStart:
			a.WorkWindowStart = value
		case constants.SettingWorkWindowEnd:
			a.WorkWindowEnd = value
		case constants.SettingProcrastinationCategories:
			a.ProcrastinationCategories = ParseCategorySet(value)
		}
		if err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	a := settings.Analytics
	return map[string]string{
		constants.SettingTimezone:                  settings.Timezone,
		constants.SettingSlotMinutes:               fmt.Sprintf("%d", a.SlotMinutes),
		constants.SettingTopN:                      fmt.Sprintf("%d", a.TopN),
		constants.SettingWeekdayHours:              fmt.Sprintf("%g", a.WeekdayHours),
		constants.SettingWeekendHours:              fmt.Sprintf("%g", a.WeekendHours),
		constants.SettingIncludeMandatory:          fmt.Sprintf("%v", a.IncludeMandatory),
		constants.SettingSkipBudget:                fmt.Sprintf("%d", a.SkipBudget),
		constants.SettingRhythmStartHour:           fmt.Sprintf("%d", a.RhythmStartHour),
		constants.SettingRhythmEndHour:             fmt.Sprintf("%d", a.RhythmEndHour),
		constants.SettingRhythmBucketMinutes:       fmt.Sprintf("%d", a.RhythmBucketMinutes),
		constants.SettingProductiveCategories:      FormatCategorySet(a.ProductiveCategories),
		constants.SettingTrendDeadBandPct:          fmt.Sprintf("%g", a.TrendDeadBandPct),
		constants.SettingTrendWindowWeeks:          fmt.Sprintf("%d", a.TrendWindowWeeks),
		constants.SettingWorkGoalHours:             fmt.Sprintf("%g", a.WorkGoalHours),
		constants.SettingWorkWindowStart:           a.WorkWindowStart,
		constants.SettingWorkWindowEnd:             a.WorkWindowEnd,
		constants.SettingProcrastinationCategories: FormatCategorySet(a.ProcrastinationCategories),
	}
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		Timezone:  constants.DefaultTimezone,
		Analytics: DefaultAnalyticsConfig(),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
// A false IncludeMandatory is a legitimate value and is left alone.
func ApplyDefaultSettings(settings *Settings) {
	d := DefaultAnalyticsConfig()
	a := &settings.Analytics

	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if a.SlotMinutes <= 0 {
		a.SlotMinutes = d.SlotMinutes
	}
	if a.TopN <= 0 {
		a.TopN = d.TopN
	}
	if a.WeekdayHours <= 0 {
		a.WeekdayHours = d.WeekdayHours
	}
	if a.WeekendHours <= 0 {
		a.WeekendHours = d.WeekendHours
	}
	if a.SkipBudget < 0 {
		a.SkipBudget = d.SkipBudget
	}
	if a.RhythmBucketMinutes <= 0 {
		a.RhythmBucketMinutes = d.RhythmBucketMinutes
	}
	if a.RhythmEndHour <= a.RhythmStartHour {
		a.RhythmStartHour = d.RhythmStartHour
		a.RhythmEndHour = d.RhythmEndHour
	}
	if len(a.ProductiveCategories) == 0 {
		a.ProductiveCategories = d.ProductiveCategories
	}
	if a.TrendDeadBandPct <= 0 {
		a.TrendDeadBandPct = d.TrendDeadBandPct
	}
	if a.TrendWindowWeeks <= 0 {
		a.TrendWindowWeeks = d.TrendWindowWeeks
	}
	if a.WorkGoalHours <= 0 {
		a.WorkGoalHours = d.WorkGoalHours
	}
	if a.WorkWindowStart == "" {
		a.WorkWindowStart = d.WorkWindowStart
	}
	if a.WorkWindowEnd == "" {
		a.WorkWindowEnd = d.WorkWindowEnd
	}
	if len(a.ProcrastinationCategories) == 0 {
		a.ProcrastinationCategories = d.ProcrastinationCategories
	}
}
