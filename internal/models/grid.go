package models

import (
	"strings"
	"time"

	"github.com/julianstephens/weekgrid/internal/constants"
)

// DaysPerWeek is the number of day sequences in every grid.
const DaysPerWeek = 7

// ActivityRef points at a user-defined subcategory. Slot is the 1-based slot
// index; 0 marks a bare name carried over from older exports.
type ActivityRef struct {
	Slot int    `json:"slot,omitempty"`
	Name string `json:"name"`
}

// TimeBlock is one cell of the grid.
type TimeBlock struct {
	Time     string       `json:"time"`      // HH:MM format
	DayIndex int          `json:"day_index"` // 0=Mon ... 6=Sun
	Category Category     `json:"category,omitempty"`
	Activity *ActivityRef `json:"activity,omitempty"`
	Notes    string       `json:"notes,omitempty"`
}

// ActivityName returns the activity name, or "" when the block has none.
func (b TimeBlock) ActivityName() string {
	if b.Activity == nil {
		return ""
	}
	return b.Activity.Name
}

// DisplayName is the activity name, falling back to the notes text.
func (b TimeBlock) DisplayName() string {
	if name := b.ActivityName(); name != "" {
		return name
	}
	return strings.TrimSpace(b.Notes)
}

// IsTracked reports whether the block counts toward hour totals.
func (b TimeBlock) IsTracked() bool {
	return b.Category.IsValid()
}

// IsEmpty reports whether the cell carries nothing at all.
func (b TimeBlock) IsEmpty() bool {
	return b.Category == CategoryUnset && b.ActivityName() == "" && b.Notes == ""
}

// Equal compares two blocks by value.
func (b TimeBlock) Equal(other TimeBlock) bool {
	return b.Time == other.Time &&
		b.DayIndex == other.DayIndex &&
		b.Category == other.Category &&
		b.ActivityName() == other.ActivityName() &&
		activitySlot(b.Activity) == activitySlot(other.Activity) &&
		b.Notes == other.Notes
}

func activitySlot(a *ActivityRef) int {
	if a == nil {
		return 0
	}
	return a.Slot
}

// WeekGrid is one tracked week. Every day holds exactly len(Slots) blocks, in
// slot order; untracked cells are empty blocks.
type WeekGrid struct {
	Slots []string                 `json:"slots"`
	Days  [DaysPerWeek][]TimeBlock `json:"days"`
}

// NewWeekGrid builds an all-empty grid over the given time axis.
func NewWeekGrid(slots []string) WeekGrid {
	g := WeekGrid{Slots: append([]string{}, slots...)}
	for d := 0; d < DaysPerWeek; d++ {
		g.Days[d] = make([]TimeBlock, len(slots))
		for i, slot := range slots {
			g.Days[d][i] = TimeBlock{Time: slot, DayIndex: d}
		}
	}
	return g
}

// Set replaces the block at (day, slot index). The block's time and day index
// are forced to match its position.
func (g *WeekGrid) Set(day, slot int, b TimeBlock) {
	b.DayIndex = day
	b.Time = g.Slots[slot]
	g.Days[day][slot] = b
}

// Block returns the block at (day, slot index).
func (g WeekGrid) Block(day, slot int) TimeBlock {
	return g.Days[day][slot]
}

// TrackedBlocks counts blocks with a category.
func (g WeekGrid) TrackedBlocks() int {
	n := 0
	for d := 0; d < DaysPerWeek; d++ {
		for _, b := range g.Days[d] {
			if b.IsTracked() {
				n++
			}
		}
	}
	return n
}

// HasTrackedDay reports whether the given day holds at least one tracked block.
func (g WeekGrid) HasTrackedDay(day int) bool {
	for _, b := range g.Days[day] {
		if b.IsTracked() {
			return true
		}
	}
	return false
}

// Equal compares two grids by value.
func (g WeekGrid) Equal(other WeekGrid) bool {
	if len(g.Slots) != len(other.Slots) {
		return false
	}
	for i := range g.Slots {
		if g.Slots[i] != other.Slots[i] {
			return false
		}
	}
	for d := 0; d < DaysPerWeek; d++ {
		if len(g.Days[d]) != len(other.Days[d]) {
			return false
		}
		for i := range g.Days[d] {
			if !g.Days[d][i].Equal(other.Days[d][i]) {
				return false
			}
		}
	}
	return true
}

// SlotMinute parses an HH:MM label (1-2 digit hour) into minutes from midnight.
func SlotMinute(label string) (int, bool) {
	t, err := time.Parse(constants.TimeFormat, label)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FormatSlot renders minutes from midnight as HH:MM.
func FormatSlot(minute int) string {
	return time.Date(0, 1, 1, minute/60, minute%60, 0, 0, time.UTC).Format(constants.TimeFormat)
}
