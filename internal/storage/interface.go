package storage

import (
	"errors"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
)

var (
	// ErrNotFound is returned when a week is not stored, or is soft-deleted and
	// the caller asked for live weeks only.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyDeleted is returned when deleting a week twice.
	ErrAlreadyDeleted = errors.New("already deleted")
	// ErrNotDeleted is returned when restoring a live week.
	ErrNotDeleted = errors.New("not deleted")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Weeks
	// SaveWeek stores the week under its key, replacing any earlier version
	// and clearing a soft delete. An existing record keeps its id and
	// imported_at.
	SaveWeek(models.WeekRecord) error
	GetWeek(key calendar.WeekKey) (models.WeekRecord, error)
	// GetWeeks returns the live weeks in [from, to], oldest first.
	GetWeeks(from, to calendar.WeekKey) ([]models.WeekRecord, error)
	// ListWeeks returns every stored week, oldest first.
	ListWeeks(includeDeleted bool) ([]models.WeekRecord, error)
	DeleteWeek(key calendar.WeekKey) error
	RestoreWeek(key calendar.WeekKey) error

	// Import history
	RecordImport(models.ImportEntry) error
	// ListImports returns the newest entries first; limit <= 0 returns all.
	ListImports(limit int) ([]models.ImportEntry, error)

	// Utils
	GetConfigPath() string
}
