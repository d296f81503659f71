package calendar

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToWeekKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want WeekKey
	}{
		{"mid year", date(2025, time.March, 12), WeekKey{2025, 11}},
		{"dec 29 belongs to next iso year", date(2025, time.December, 29), WeekKey{2026, 1}},
		{"jan 1 belongs to previous iso year", date(2021, time.January, 1), WeekKey{2020, 53}},
		{"53rd week", date(2026, time.December, 31), WeekKey{2026, 53}},
		{"leap day", date(2024, time.February, 29), WeekKey{2024, 9}},
		{"sunday closes the week", date(2025, time.January, 12), WeekKey{2025, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToWeekKey(tt.date); got != tt.want {
				t.Errorf("ToWeekKey(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestWeekKeyRoundTripOverRange(t *testing.T) {
	start := date(2018, time.January, 1)
	end := date(2032, time.December, 31)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		k := ToWeekKey(d)
		from, to := WeekKeyToDateRange(k)
		if d.Before(from) || d.After(to) {
			t.Fatalf("%s: range of %v is [%s, %s]", d.Format("2006-01-02"), k, from.Format("2006-01-02"), to.Format("2006-01-02"))
		}
		if from.Weekday() != time.Monday || to.Weekday() != time.Sunday {
			t.Fatalf("%v: range does not run Monday..Sunday", k)
		}
		if ToWeekKey(from) != k || ToWeekKey(to) != k {
			t.Fatalf("%v: range endpoints map to other weeks", k)
		}
		if got := k.Date(DayIndexOf(d)); !got.Equal(d) {
			t.Fatalf("%v.Date(%d) = %s, want %s", k, DayIndexOf(d), got.Format("2006-01-02"), d.Format("2006-01-02"))
		}
	}
}

func TestWeeksInYear(t *testing.T) {
	tests := map[int]int{2015: 53, 2019: 52, 2020: 53, 2024: 52, 2025: 52, 2026: 53}
	for year, want := range tests {
		if got := WeeksInYear(year); got != want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestParseWeekKey(t *testing.T) {
	tests := []struct {
		input   string
		want    WeekKey
		wantErr bool
	}{
		{"2025-W03", WeekKey{2025, 3}, false},
		{"2025-03", WeekKey{2025, 3}, false},
		{"2025_03", WeekKey{2025, 3}, false},
		{"2025W3", WeekKey{2025, 3}, false},
		{"2026-W53", WeekKey{2026, 53}, false},
		{"2025-W53", WeekKey{}, true},
		{"2025-W00", WeekKey{}, true},
		{"25-W03", WeekKey{}, true},
		{"", WeekKey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeekKey) {
					t.Errorf("error %v does not wrap ErrInvalidWeekKey", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseWeekKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if back, err := ParseWeekKey(got.String()); err != nil || back != got {
				t.Errorf("String() %q does not parse back: %v %v", got.String(), back, err)
			}
		})
	}
}

func TestWeekKeyString(t *testing.T) {
	if got := (WeekKey{Year: 2025, Week: 3}).String(); got != "2025-W03" {
		t.Errorf("String() = %q, want 2025-W03", got)
	}
}

func TestAddWeeksAcrossYearBoundary(t *testing.T) {
	k := WeekKey{2020, 53}
	if got := k.Next(); got != (WeekKey{2021, 1}) {
		t.Errorf("Next() = %v, want 2021-W01", got)
	}
	if got := (WeekKey{2021, 1}).Prev(); got != k {
		t.Errorf("Prev() = %v, want %v", got, k)
	}
	if got := (WeekKey{2025, 52}).Next(); got != (WeekKey{2026, 1}) {
		t.Errorf("Next() = %v, want 2026-W01", got)
	}
}

func TestTrailing(t *testing.T) {
	got := Trailing(WeekKey{2026, 2}, 4)
	want := []WeekKey{{2026, 2}, {2026, 1}, {2025, 52}, {2025, 51}}
	if len(got) != len(want) {
		t.Fatalf("Trailing returned %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Trailing[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Trailing(WeekKey{2026, 2}, 0) != nil {
		t.Error("Trailing(_, 0) should be nil")
	}
}

func TestBetween(t *testing.T) {
	got := Between(WeekKey{2020, 52}, WeekKey{2021, 2})
	if len(got) != 4 {
		t.Fatalf("Between returned %v", got)
	}
	if got[1] != (WeekKey{2020, 53}) {
		t.Errorf("Between[1] = %v, want 2020-W53", got[1])
	}
}

func TestCompare(t *testing.T) {
	a, b := WeekKey{2025, 52}, WeekKey{2026, 1}
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Error("ordering across years is wrong")
	}
}
