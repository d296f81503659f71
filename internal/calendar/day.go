package calendar

import "time"

// DaysPerWeek is the number of day columns in a grid.
const DaysPerWeek = 7

// sundayFirst maps a Monday-first storage index to its Sunday-first display position.
var sundayFirst = [DaysPerWeek]int{1, 2, 3, 4, 5, 6, 0}

// mondayFirst is the inverse of sundayFirst.
var mondayFirst = [DaysPerWeek]int{6, 0, 1, 2, 3, 4, 5}

// DayIndexOf returns the Monday-first index (0=Mon ... 6=Sun) of t's weekday.
func DayIndexOf(t time.Time) int {
	return WeekdayIndex(t.Weekday())
}

// WeekdayIndex converts a time.Weekday (Sunday=0) to the Monday-first index.
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// IndexWeekday converts a Monday-first index back to a time.Weekday.
func IndexWeekday(dayIndex int) time.Weekday {
	return time.Weekday((dayIndex + 1) % 7)
}

// IsWeekend reports whether the Monday-first index is Saturday or Sunday.
func IsWeekend(dayIndex int) bool {
	return dayIndex == 5 || dayIndex == 6
}

// ToSundayFirst converts a storage index to a Sunday-first display index.
// Out-of-range input is returned unchanged.
func ToSundayFirst(dayIndex int) int {
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return dayIndex
	}
	return sundayFirst[dayIndex]
}

// FromSundayFirst converts a Sunday-first display index to the storage index.
func FromSundayFirst(displayIndex int) int {
	if displayIndex < 0 || displayIndex >= DaysPerWeek {
		return displayIndex
	}
	return mondayFirst[displayIndex]
}

// DayName returns the short English name used in canonical CSV headers.
func DayName(dayIndex int) string {
	return IndexWeekday(dayIndex).String()[:3]
}

// StartOfDay truncates t to midnight UTC of its calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
