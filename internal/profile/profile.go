// Package profile reads and writes settings as YAML so analytics thresholds
// can be kept in version control and layered over the stored settings.
package profile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/utils"
)

// Decode layers the YAML document over base. Keys absent from the document
// keep base's values; unknown keys are rejected.
func Decode(data []byte, base models.Settings) (models.Settings, error) {
	settings := base
	if len(bytes.TrimSpace(data)) == 0 {
		return settings, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil {
		return models.Settings{}, fmt.Errorf("invalid profile: %w", err)
	}
	if err := Validate(settings); err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// Encode renders settings as YAML.
func Encode(settings models.Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads the profile at path and layers it over base.
func Load(path string, base models.Settings) (models.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read profile: %w", err)
	}
	settings, err := Decode(data, base)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, settings models.Settings) error {
	data, err := Encode(settings)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Validate rejects values that ApplyDefaultSettings would otherwise silently
// replace, so a typo in a profile is reported instead of ignored.
func Validate(settings models.Settings) error {
	a := settings.Analytics
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	if a.SlotMinutes < 0 || (a.SlotMinutes > 0 && 60%a.SlotMinutes != 0 && a.SlotMinutes%60 != 0) {
		return fmt.Errorf("slot_minutes must divide an hour, got %d", a.SlotMinutes)
	}
	if a.RhythmStartHour < 0 || a.RhythmEndHour > 24 {
		return fmt.Errorf("rhythm hours must lie within 0-24, got %d-%d", a.RhythmStartHour, a.RhythmEndHour)
	}
	if a.SkipBudget < 0 {
		return fmt.Errorf("skip_budget cannot be negative, got %d", a.SkipBudget)
	}
	for _, w := range []string{a.WorkWindowStart, a.WorkWindowEnd} {
		if w == "" {
			continue
		}
		if _, ok := models.SlotMinute(w); !ok {
			return fmt.Errorf("invalid work window time %q", w)
		}
	}
	for _, c := range append(append([]models.Category{}, a.ProductiveCategories...), a.ProcrastinationCategories...) {
		if !c.IsValid() {
			return fmt.Errorf("unknown category %q", string(c))
		}
	}
	return nil
}
