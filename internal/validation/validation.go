package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/csvcodec"
	"github.com/julianstephens/weekgrid/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictUnequalDays     ConflictType = "unequal_days"
	ConflictInvalidSlot     ConflictType = "invalid_slot"
	ConflictUnorderedSlots  ConflictType = "unordered_slots"
	ConflictSlotMismatch    ConflictType = "slot_mismatch"
	ConflictDayMismatch     ConflictType = "day_mismatch"
	ConflictInvalidCategory ConflictType = "invalid_category"
	ConflictSlotWidth       ConflictType = "slot_width"
	ConflictWeekMismatch    ConflictType = "week_mismatch"
	ConflictInvalidWeek     ConflictType = "invalid_week"
)

// Conflict represents a detected problem in a grid
type Conflict struct {
	Type        ConflictType
	Description string
	Day         int    // Monday-first day index, -1 when not tied to a day
	Slot        string // HH:MM label (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of the given type
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks week grids for structural problems
type Validator struct {
	slotMinutes int
}

// New creates a new Validator. slotMinutes is the expected axis step; 0
// disables the step check.
func New(slotMinutes int) *Validator {
	return &Validator{slotMinutes: slotMinutes}
}

// ValidateGrid checks the shape of a grid: one strictly increasing HH:MM axis
// shared by all seven days, blocks stamped with their own position, and only
// known categories.
func (v *Validator) ValidateGrid(grid models.WeekGrid) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	last := -1
	for i, label := range grid.Slots {
		minute, ok := models.SlotMinute(label)
		if !ok || models.FormatSlot(minute) != label {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidSlot,
				Description: fmt.Sprintf("Slot %d has invalid time label: %q", i, label),
				Day:         -1,
				Slot:        label,
			})
			continue
		}
		if minute <= last {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnorderedSlots,
				Description: fmt.Sprintf("Slot %s does not follow %s", label, models.FormatSlot(last)),
				Day:         -1,
				Slot:        label,
			})
		} else if last >= 0 && v.slotMinutes > 0 && (minute-last)%v.slotMinutes != 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictSlotWidth,
				Description: fmt.Sprintf("Slot %s is not a multiple of %d minutes after %s", label, v.slotMinutes, models.FormatSlot(last)),
				Day:         -1,
				Slot:        label,
			})
		}
		if minute > last {
			last = minute
		}
	}

	for day := 0; day < models.DaysPerWeek; day++ {
		blocks := grid.Days[day]
		if len(blocks) != len(grid.Slots) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnequalDays,
				Description: fmt.Sprintf("%s holds %d blocks but the axis has %d slots", calendar.DayName(day), len(blocks), len(grid.Slots)),
				Day:         day,
			})
		}
		for i, b := range blocks {
			if i < len(grid.Slots) && b.Time != grid.Slots[i] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictSlotMismatch,
					Description: fmt.Sprintf("%s block %d is stamped %q, expected %q", calendar.DayName(day), i, b.Time, grid.Slots[i]),
					Day:         day,
					Slot:        b.Time,
				})
			}
			if b.DayIndex != day {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDayMismatch,
					Description: fmt.Sprintf("%s %s block carries day index %d", calendar.DayName(day), b.Time, b.DayIndex),
					Day:         day,
					Slot:        b.Time,
				})
			}
			if b.Category != models.CategoryUnset && !b.Category.IsValid() {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidCategory,
					Description: fmt.Sprintf("%s %s has unknown category %q", calendar.DayName(day), b.Time, string(b.Category)),
					Day:         day,
					Slot:        b.Time,
				})
			}
		}
	}

	return result
}

// ValidateImport checks a decoded document against the week it is about to be
// stored under, then validates its grid.
func (v *Validator) ValidateImport(res csvcodec.Result, week calendar.WeekKey) ValidationResult {
	result := v.ValidateGrid(res.Grid)

	if !week.Valid() {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidWeek,
			Description: fmt.Sprintf("Invalid week: %s", week),
			Day:         -1,
		})
	} else if res.Week != nil && *res.Week != week {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictWeekMismatch,
			Description: fmt.Sprintf("Header dates belong to %s, not %s", res.Week, week),
			Day:         -1,
		})
	}
	return result
}
