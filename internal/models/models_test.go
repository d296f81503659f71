package models

import (
	"testing"

	"github.com/julianstephens/weekgrid/internal/constants"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"W", CategoryWork, true},
		{"M", CategoryMandatory, true},
		{"w", CategoryUnset, false},
		{"X", CategoryUnset, false},
		{"", CategoryUnset, false},
		{"WG", CategoryUnset, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseCategory(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}

	if c, ok := ParseCategoryFold("g"); !ok || c != CategoryGrowth {
		t.Errorf("Expected folded g to be Growth, got %q", c)
	}
}

func TestCategorySet(t *testing.T) {
	set := ParseCategorySet("gwxW")
	if len(set) != 2 || set[0] != CategoryGrowth || set[1] != CategoryWork {
		t.Fatalf("Expected [G W], got %v", set)
	}
	if got := FormatCategorySet(set); got != "GW" {
		t.Errorf("Expected GW, got %s", got)
	}
	if !CategoryWork.In(set) || CategoryRest.In(set) {
		t.Error("Unexpected set membership")
	}
}

func TestCategory_RankAndLabel(t *testing.T) {
	if CategoryRest.Rank() != 0 || CategoryMandatory.Rank() != 4 {
		t.Errorf("Unexpected ranks: R=%d M=%d", CategoryRest.Rank(), CategoryMandatory.Rank())
	}
	if CategoryUnset.Rank() != len(Categories) {
		t.Errorf("Expected unset to rank last, got %d", CategoryUnset.Rank())
	}
	if CategoryPersonal.Label() != "Personal" || CategoryUnset.Label() != "Unset" {
		t.Errorf("Unexpected labels: %s, %s", CategoryPersonal.Label(), CategoryUnset.Label())
	}
}

func TestCategoryHours_Dominant(t *testing.T) {
	h := NewCategoryHours()
	if len(h) != len(Categories) {
		t.Fatalf("Expected a zero for every category, got %v", h)
	}
	if h.Dominant() != CategoryUnset {
		t.Errorf("Expected no dominant category for an empty map, got %q", h.Dominant())
	}

	h[CategoryWork] = 3
	h[CategoryGrowth] = 3
	if h.Dominant() != CategoryWork {
		t.Errorf("Expected the tie to go to Work, got %q", h.Dominant())
	}
	h[CategoryPersonal] = 4.5
	if h.Dominant() != CategoryPersonal {
		t.Errorf("Expected Personal, got %q", h.Dominant())
	}
	if h.Total() != 10.5 {
		t.Errorf("Expected total 10.5, got %g", h.Total())
	}
}

func TestWeekGrid(t *testing.T) {
	g := NewWeekGrid([]string{"09:00", "09:30"})
	for d := 0; d < DaysPerWeek; d++ {
		if len(g.Days[d]) != 2 {
			t.Fatalf("Expected 2 blocks on day %d, got %d", d, len(g.Days[d]))
		}
	}
	if g.TrackedBlocks() != 0 || !g.Block(3, 1).IsEmpty() {
		t.Error("Expected a new grid to be empty")
	}

	g.Set(2, 1, TimeBlock{Time: "23:00", DayIndex: 6, Category: CategoryWork, Activity: &ActivityRef{Slot: 1, Name: "email"}})
	b := g.Block(2, 1)
	if b.Time != "09:30" || b.DayIndex != 2 {
		t.Errorf("Expected the block to take its position, got %s day %d", b.Time, b.DayIndex)
	}
	if g.TrackedBlocks() != 1 || !g.HasTrackedDay(2) || g.HasTrackedDay(0) {
		t.Error("Unexpected tracked counts")
	}

	other := NewWeekGrid([]string{"09:00", "09:30"})
	if g.Equal(other) {
		t.Error("Expected grids to differ")
	}
	other.Set(2, 1, TimeBlock{Category: CategoryWork, Activity: &ActivityRef{Slot: 1, Name: "email"}})
	if !g.Equal(other) {
		t.Error("Expected grids to be equal")
	}
}

func TestTimeBlock_DisplayName(t *testing.T) {
	tests := []struct {
		name  string
		block TimeBlock
		want  string
	}{
		{"activity", TimeBlock{Activity: &ActivityRef{Name: "reading"}, Notes: "ch. 3"}, "reading"},
		{"notes fallback", TimeBlock{Notes: "  dentist "}, "dentist"},
		{"empty", TimeBlock{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.DisplayName(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSlotMinute(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"09:30", 570, true},
		{"9:30", 570, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"noon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := SlotMinute(tt.label)
			if got != tt.want || ok != tt.ok {
				t.Errorf("SlotMinute(%q) = %d, %v; want %d, %v", tt.label, got, ok, tt.want, tt.ok)
			}
		})
	}
	if got := FormatSlot(570); got != "09:30" {
		t.Errorf("Expected 09:30, got %s", got)
	}
}

func TestSettingsMapRoundTrip(t *testing.T) {
	settings := DefaultSettings()
	settings.Timezone = "Europe/Berlin"
	settings.Analytics.WorkGoalHours = 32.5
	settings.Analytics.ProductiveCategories = []Category{CategoryGrowth}

	got, err := MapToSettings(SettingsToMap(settings))
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if got.Timezone != "Europe/Berlin" || got.Analytics.WorkGoalHours != 32.5 {
		t.Errorf("Unexpected settings: %+v", got)
	}
	if FormatCategorySet(got.Analytics.ProductiveCategories) != "G" {
		t.Errorf("Expected productive categories G, got %v", got.Analytics.ProductiveCategories)
	}

	if _, err := MapToSettings(map[string]string{constants.SettingTopN: "many"}); err == nil {
		t.Error("Expected error for a non-numeric top_n")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	settings := Settings{}
	settings.Analytics.RhythmStartHour = 20
	settings.Analytics.RhythmEndHour = 8
	ApplyDefaultSettings(&settings)

	d := DefaultSettings()
	if settings.Timezone != d.Timezone {
		t.Errorf("Expected default timezone, got %q", settings.Timezone)
	}
	if settings.Analytics.WorkGoalHours != constants.DefaultWorkGoalHours {
		t.Errorf("Expected default work goal, got %g", settings.Analytics.WorkGoalHours)
	}
	if settings.Analytics.RhythmStartHour != d.Analytics.RhythmStartHour || settings.Analytics.RhythmEndHour != d.Analytics.RhythmEndHour {
		t.Errorf("Expected an inverted rhythm window to reset, got %d-%d", settings.Analytics.RhythmStartHour, settings.Analytics.RhythmEndHour)
	}
	if FormatCategorySet(settings.Analytics.ProductiveCategories) != constants.DefaultProductiveCategories {
		t.Errorf("Expected default productive categories, got %v", settings.Analytics.ProductiveCategories)
	}
	if settings.Analytics.SlotHours() != float64(constants.DefaultSlotMinutes)/60.0 {
		t.Errorf("Unexpected slot hours %g", settings.Analytics.SlotHours())
	}
}
