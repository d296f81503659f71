package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/storage"
)

const weekColumns = `id, iso_year, iso_week, csv, dialect, source, blocks, imported_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeek(row rowScanner) (models.WeekRecord, error) {
	var w models.WeekRecord
	var importedAt, updatedAt string
	var deletedAt sql.NullString

	err := row.Scan(&w.ID, &w.Week.Year, &w.Week.Week, &w.CSV, &w.Dialect, &w.Source, &w.Blocks,
		&importedAt, &updatedAt, &deletedAt)
	if err != nil {
		return models.WeekRecord{}, err
	}

	if w.ImportedAt, err = parseTime(importedAt); err != nil {
		return models.WeekRecord{}, fmt.Errorf("week %s: imported_at: %w", w.Week, err)
	}
	if w.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.WeekRecord{}, fmt.Errorf("week %s: updated_at: %w", w.Week, err)
	}
	if deletedAt.Valid {
		t, err := parseTime(deletedAt.String)
		if err != nil {
			return models.WeekRecord{}, fmt.Errorf("week %s: deleted_at: %w", w.Week, err)
		}
		w.DeletedAt = &t
	}
	return w, nil
}

// timeLayout keeps a fixed-width fraction so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func (s *Store) SaveWeek(week models.WeekRecord) error {
	if !week.Week.Valid() {
		return fmt.Errorf("%w: %s", calendar.ErrInvalidWeekKey, week.Week)
	}
	if week.ID == "" {
		week.ID = uuid.NewString()
	}
	now := time.Now()
	if week.ImportedAt.IsZero() {
		week.ImportedAt = now
	}

	_, err := s.db.Exec(`
		INSERT INTO weeks (`+weekColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(iso_year, iso_week) DO UPDATE SET
			csv = excluded.csv,
			dialect = excluded.dialect,
			source = excluded.source,
			blocks = excluded.blocks,
			updated_at = excluded.updated_at,
			deleted_at = NULL`,
		week.ID, week.Week.Year, week.Week.Week, week.CSV, week.Dialect, week.Source, week.Blocks,
		formatTime(week.ImportedAt), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to save week %s: %w", week.Week, err)
	}
	return nil
}

func (s *Store) GetWeek(key calendar.WeekKey) (models.WeekRecord, error) {
	row := s.db.QueryRow(`SELECT `+weekColumns+` FROM weeks
		WHERE iso_year = ? AND iso_week = ? AND deleted_at IS NULL`, key.Year, key.Week)
	w, err := scanWeek(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WeekRecord{}, fmt.Errorf("week %s: %w", key, storage.ErrNotFound)
		}
		return models.WeekRecord{}, err
	}
	return w, nil
}

func (s *Store) GetWeeks(from, to calendar.WeekKey) ([]models.WeekRecord, error) {
	rows, err := s.db.Query(`SELECT `+weekColumns+` FROM weeks
		WHERE deleted_at IS NULL
		  AND (iso_year * 100 + iso_week) BETWEEN ? AND ?
		ORDER BY iso_year, iso_week`, ordinal(from), ordinal(to))
	if err != nil {
		return nil, err
	}
	return collectWeeks(rows)
}

func (s *Store) ListWeeks(includeDeleted bool) ([]models.WeekRecord, error) {
	query := `SELECT ` + weekColumns + ` FROM weeks`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY iso_year, iso_week`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectWeeks(rows)
}

func collectWeeks(rows *sql.Rows) ([]models.WeekRecord, error) {
	defer rows.Close()
	var weeks []models.WeekRecord
	for rows.Next() {
		w, err := scanWeek(rows)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func (s *Store) DeleteWeek(key calendar.WeekKey) error {
	// Soft delete: set deleted_at instead of removing the row
	deleted, err := s.deletedState(key)
	if err != nil {
		return err
	}
	if deleted {
		return fmt.Errorf("week %s is %w", key, storage.ErrAlreadyDeleted)
	}

	_, err = s.db.Exec("UPDATE weeks SET deleted_at = ? WHERE iso_year = ? AND iso_week = ?",
		formatTime(time.Now()), key.Year, key.Week)
	return err
}

func (s *Store) RestoreWeek(key calendar.WeekKey) error {
	deleted, err := s.deletedState(key)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("cannot restore week %s: %w", key, storage.ErrNotDeleted)
	}

	_, err = s.db.Exec("UPDATE weeks SET deleted_at = NULL, updated_at = ? WHERE iso_year = ? AND iso_week = ?",
		formatTime(time.Now()), key.Year, key.Week)
	return err
}

func (s *Store) deletedState(key calendar.WeekKey) (bool, error) {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM weeks WHERE iso_year = ? AND iso_week = ?",
		key.Year, key.Week).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("week %s: %w", key, storage.ErrNotFound)
		}
		return false, fmt.Errorf("failed to check week existence: %w", err)
	}
	return deletedAt.Valid, nil
}

// ordinal maps a week key onto an integer that sorts like the key.
func ordinal(k calendar.WeekKey) int {
	return k.Year*100 + k.Week
}
