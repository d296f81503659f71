package models

import (
	"time"

	"github.com/julianstephens/weekgrid/internal/calendar"
)

// WeekRecord is a stored week. The grid travels as canonical CSV text so the
// storage layer never needs to know the grid's shape.
type WeekRecord struct {
	ID         string           `json:"id"`
	Week       calendar.WeekKey `json:"week"`
	CSV        string           `json:"csv"`
	Dialect    string           `json:"dialect"`          // dialect the week was imported from
	Source     string           `json:"source,omitempty"` // file name of the import
	Blocks     int              `json:"blocks"`           // tracked blocks at import time
	ImportedAt time.Time        `json:"imported_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  *time.Time       `json:"deleted_at,omitempty"`
}

// ImportEntry records one accepted import of a week.
type ImportEntry struct {
	ID             string           `json:"id"`
	Week           calendar.WeekKey `json:"week"`
	Source         string           `json:"source,omitempty"`
	Dialect        string           `json:"dialect"`
	Blocks         int              `json:"blocks"`
	SkippedRows    int              `json:"skipped_rows"`
	IgnoredColumns int              `json:"ignored_columns"`
	ImportedAt     time.Time        `json:"imported_at"`
}

// IsDeleted reports whether the week has been soft-deleted.
func (w WeekRecord) IsDeleted() bool {
	return w.DeletedAt != nil
}
