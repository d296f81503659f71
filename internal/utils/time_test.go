package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty is local", "", false},
		{"Local", "Local", false},
		{"UTC", "UTC", false},
		{"IANA name", "America/New_York", false},
		{"unknown", "Mars/Olympus_Mons", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if ValidateTimezone(tt.timezone) == tt.wantErr {
				t.Errorf("ValidateTimezone(%q) disagrees with LoadLocation", tt.timezone)
			}
		})
	}
}

func TestWallDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2025-01-06 07:00 in Tokyo is still Sunday in UTC
	local := time.Date(2025, time.January, 6, 7, 0, 0, 0, tokyo)

	got := WallDate(local)
	want := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("WallDate() = %v, want %v", got, want)
	}
}
