package postgres

import (
	"errors"
	"os"
	"testing"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupIntegrationStore(t *testing.T) *Store {
	connStr := os.Getenv("WEEKGRID_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("WEEKGRID_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		store.GetDB().Exec("DELETE FROM weeks")
		store.GetDB().Exec("DELETE FROM import_log")
		store.Close()
	})
	return store
}

func TestIntegration_WeekLifecycle(t *testing.T) {
	store := setupIntegrationStore(t)
	k := calendar.WeekKey{Year: 2025, Week: 2}

	if err := store.SaveWeek(models.WeekRecord{Week: k, CSV: "v1", Dialect: "canonical"}); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}
	if err := store.SaveWeek(models.WeekRecord{Week: k, CSV: "v2", Dialect: "canonical"}); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}
	got, err := store.GetWeek(k)
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if got.CSV != "v2" {
		t.Errorf("Expected replaced content, got %q", got.CSV)
	}

	if err := store.DeleteWeek(k); err != nil {
		t.Fatalf("DeleteWeek failed: %v", err)
	}
	if _, err := store.GetWeek(k); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := store.RestoreWeek(k); err != nil {
		t.Fatalf("RestoreWeek failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Analytics.SlotMinutes == 0 {
		t.Error("Expected defaults to be applied")
	}
}
