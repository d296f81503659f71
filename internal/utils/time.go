package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// WallDate re-anchors the calendar date of t at midnight UTC, so week math
// sees the user's local date rather than the UTC one.
func WallDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayFromSettings returns the user's current calendar date as a UTC midnight.
func TodayFromSettings(settings models.Settings) (time.Time, error) {
	now, err := NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return WallDate(now), nil
}

// CurrentWeek returns the ISO week containing today in the configured timezone.
func CurrentWeek(settings models.Settings) (calendar.WeekKey, error) {
	today, err := TodayFromSettings(settings)
	if err != nil {
		return calendar.WeekKey{}, err
	}
	return calendar.ToWeekKey(today), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
