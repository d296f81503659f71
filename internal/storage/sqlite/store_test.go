package sqlite

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "weekgrid.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func week(y, w int) calendar.WeekKey {
	return calendar.WeekKey{Year: y, Week: w}
}

func TestLoad_Uninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "storage not initialized") {
		t.Errorf("Expected an init hint, got %v", err)
	}
}

func TestInit_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekgrid.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.SaveWeek(models.WeekRecord{Week: week(2025, 2), CSV: "Time,Mon\n"}); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.GetWeek(week(2025, 2)); err != nil {
		t.Errorf("Expected the week to survive a reopen, got %v", err)
	}
}

func TestSettings_DefaultsAndRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Analytics.SlotMinutes != 30 || settings.Timezone != "Local" {
		t.Errorf("Expected default settings, got %+v", settings)
	}

	settings.Analytics.WorkGoalHours = 32.5
	settings.Analytics.IncludeMandatory = false
	settings.Analytics.ProductiveCategories = []models.Category{models.CategoryWork}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Analytics.WorkGoalHours != 32.5 {
		t.Errorf("Expected work goal 32.5, got %v", got.Analytics.WorkGoalHours)
	}
	if got.Analytics.IncludeMandatory {
		t.Error("Expected include_mandatory to stay false")
	}
	if len(got.Analytics.ProductiveCategories) != 1 || got.Analytics.ProductiveCategories[0] != models.CategoryWork {
		t.Errorf("Expected productive categories [W], got %v", got.Analytics.ProductiveCategories)
	}
}

func TestSaveWeek_ReplacesAndKeepsIdentity(t *testing.T) {
	store := setupTestStore(t)
	imported := time.Date(2025, time.January, 13, 8, 0, 0, 0, time.UTC)

	first := models.WeekRecord{Week: week(2025, 2), CSV: "v1", Dialect: "canonical", Blocks: 3, ImportedAt: imported}
	if err := store.SaveWeek(first); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}
	original, err := store.GetWeek(week(2025, 2))
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if original.ID == "" {
		t.Error("Expected an id to be assigned")
	}

	second := models.WeekRecord{Week: week(2025, 2), CSV: "v2", Dialect: "spreadsheet", Source: "2025_02.csv", Blocks: 5}
	if err := store.SaveWeek(second); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}
	got, err := store.GetWeek(week(2025, 2))
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if got.ID != original.ID {
		t.Errorf("Expected id %s to be kept, got %s", original.ID, got.ID)
	}
	if got.CSV != "v2" || got.Dialect != "spreadsheet" || got.Blocks != 5 || got.Source != "2025_02.csv" {
		t.Errorf("Expected replaced content, got %+v", got)
	}
	if !got.ImportedAt.Equal(imported) {
		t.Errorf("Expected imported_at %v to be kept, got %v", imported, got.ImportedAt)
	}
}

func TestSaveWeek_InvalidKey(t *testing.T) {
	store := setupTestStore(t)
	err := store.SaveWeek(models.WeekRecord{Week: week(2025, 53)})
	if !errors.Is(err, calendar.ErrInvalidWeekKey) {
		t.Errorf("Expected ErrInvalidWeekKey, got %v", err)
	}
}

func TestGetWeeks_RangeAcrossYears(t *testing.T) {
	store := setupTestStore(t)
	for _, k := range []calendar.WeekKey{week(2025, 3), week(2024, 51), week(2025, 1), week(2024, 52), week(2025, 10)} {
		if err := store.SaveWeek(models.WeekRecord{Week: k, CSV: k.String()}); err != nil {
			t.Fatalf("SaveWeek(%s) failed: %v", k, err)
		}
	}

	got, err := store.GetWeeks(week(2024, 52), week(2025, 3))
	if err != nil {
		t.Fatalf("GetWeeks failed: %v", err)
	}
	want := []calendar.WeekKey{week(2024, 52), week(2025, 1), week(2025, 3)}
	if len(got) != len(want) {
		t.Fatalf("Expected %d weeks, got %d", len(want), len(got))
	}
	for i, k := range want {
		if got[i].Week != k {
			t.Errorf("Expected week %d to be %s, got %s", i, k, got[i].Week)
		}
	}
}

func TestDeleteAndRestoreWeek(t *testing.T) {
	store := setupTestStore(t)
	k := week(2025, 2)
	if err := store.SaveWeek(models.WeekRecord{Week: k, CSV: "x"}); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}

	if err := store.DeleteWeek(k); err != nil {
		t.Fatalf("DeleteWeek failed: %v", err)
	}
	if _, err := store.GetWeek(k); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a deleted week, got %v", err)
	}
	if err := store.DeleteWeek(k); !errors.Is(err, storage.ErrAlreadyDeleted) {
		t.Errorf("Expected ErrAlreadyDeleted, got %v", err)
	}

	live, _ := store.ListWeeks(false)
	all, _ := store.ListWeeks(true)
	if len(live) != 0 || len(all) != 1 || !all[0].IsDeleted() {
		t.Errorf("Expected one deleted week, got live=%d all=%d", len(live), len(all))
	}

	if err := store.RestoreWeek(k); err != nil {
		t.Fatalf("RestoreWeek failed: %v", err)
	}
	if _, err := store.GetWeek(k); err != nil {
		t.Errorf("Expected the restored week, got %v", err)
	}
	if err := store.RestoreWeek(k); !errors.Is(err, storage.ErrNotDeleted) {
		t.Errorf("Expected ErrNotDeleted, got %v", err)
	}
	if err := store.DeleteWeek(week(2020, 1)); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unknown week, got %v", err)
	}
}

func TestSaveWeek_ClearsSoftDelete(t *testing.T) {
	store := setupTestStore(t)
	k := week(2025, 2)
	store.SaveWeek(models.WeekRecord{Week: k, CSV: "x"})
	if err := store.DeleteWeek(k); err != nil {
		t.Fatalf("DeleteWeek failed: %v", err)
	}

	if err := store.SaveWeek(models.WeekRecord{Week: k, CSV: "y"}); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}
	got, err := store.GetWeek(k)
	if err != nil {
		t.Fatalf("Expected re-import to revive the week, got %v", err)
	}
	if got.CSV != "y" {
		t.Errorf("Expected new content, got %q", got.CSV)
	}
}

func TestImportLog(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2025, time.January, 13, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := store.RecordImport(models.ImportEntry{
			Week:        week(2025, 1+i),
			Dialect:     "canonical",
			Blocks:      10 * i,
			SkippedRows: i,
			ImportedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("RecordImport failed: %v", err)
		}
	}

	entries, err := store.ListImports(2)
	if err != nil {
		t.Fatalf("ListImports failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Week != week(2025, 3) || entries[0].SkippedRows != 2 {
		t.Errorf("Expected the newest import first, got %+v", entries[0])
	}

	all, _ := store.ListImports(0)
	if len(all) != 3 {
		t.Errorf("Expected 3 entries without a limit, got %d", len(all))
	}
}
