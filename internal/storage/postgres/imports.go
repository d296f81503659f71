package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/weekgrid/internal/models"
)

func (s *Store) RecordImport(entry models.ImportEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.ImportedAt.IsZero() {
		entry.ImportedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO import_log (id, iso_year, iso_week, source, dialect, blocks, skipped_rows, ignored_columns, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.Week.Year, entry.Week.Week, entry.Source, entry.Dialect, entry.Blocks,
		entry.SkippedRows, entry.IgnoredColumns, entry.ImportedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record import of %s: %w", entry.Week, err)
	}
	return nil
}

func (s *Store) ListImports(limit int) ([]models.ImportEntry, error) {
	query := `SELECT id, iso_year, iso_week, source, dialect, blocks, skipped_rows, ignored_columns, imported_at
		FROM import_log ORDER BY imported_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ImportEntry
	for rows.Next() {
		var e models.ImportEntry
		if err := rows.Scan(&e.ID, &e.Week.Year, &e.Week.Week, &e.Source, &e.Dialect, &e.Blocks,
			&e.SkippedRows, &e.IgnoredColumns, &e.ImportedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
