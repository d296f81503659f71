package weeks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/csvcodec"
	"github.com/julianstephens/weekgrid/internal/engine"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/storage"
	"github.com/julianstephens/weekgrid/internal/validation"
)

type ImportCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"CSV files to import."`
	Week   string   `help:"Store a single file under this week (YYYY-Wnn) instead of the one it names."`
	Force  bool     `help:"Import even when validation reports conflicts."`
	DryRun bool     `help:"Decode and validate without storing anything."`
}

// importResult is what one file produced, for --json output.
type importResult struct {
	File     string           `json:"file"`
	Week     calendar.WeekKey `json:"week"`
	Dialect  string           `json:"dialect"`
	Summary  csvcodec.Summary `json:"summary"`
	Stored   bool             `json:"stored"`
	Problems []string         `json:"problems,omitempty"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	if c.Week != "" && len(c.Files) > 1 {
		return errors.New("--week can only be used with a single file")
	}

	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	validator := validation.New(settings.Analytics.SlotMinutes)

	var results []importResult
	failed := 0
	backedUp := false
	for _, file := range c.Files {
		res, err := c.importFile(ctx, eng, validator, file, &backedUp)
		if err != nil {
			logger.Error("Import failed", "file", file, "error", err)
			if !ctx.JSON {
				ctx.Printf("❌ %s: %v\n", filepath.Base(file), err)
			}
			res.Problems = append(res.Problems, err.Error())
			failed++
		}
		results = append(results, res)
	}

	if ctx.JSON {
		if err := ctx.PrintJSON(results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to import", failed, len(c.Files))
	}
	return nil
}

func (c *ImportCmd) importFile(ctx *cli.Context, eng engine.Engine, validator *validation.Validator, file string, backedUp *bool) (importResult, error) {
	out := importResult{File: filepath.Base(file)}

	data, err := os.ReadFile(file)
	if err != nil {
		return out, fmt.Errorf("failed to read file: %w", err)
	}
	res, err := eng.DecodeWeekCSV(string(data))
	if err != nil {
		return out, err
	}
	out.Dialect = string(res.Dialect)
	out.Summary = res.Summary
	logger.Debug("Decoded week file", "file", file, "dialect", res.Dialect, "blocks", res.Summary.TotalBlocks)

	key, err := c.weekFor(file, res)
	if err != nil {
		return out, err
	}
	out.Week = key

	vr := validator.ValidateImport(res, key)
	for _, conflict := range vr.Conflicts {
		out.Problems = append(out.Problems, conflict.Description)
	}
	if vr.HasConflicts() && !c.Force {
		if !ctx.JSON {
			ctx.Printf("%s", vr.FormatReport())
		}
		return out, fmt.Errorf("%d validation conflict(s); use --force to import anyway", len(vr.Conflicts))
	}

	if !ctx.JSON {
		ctx.Printf("%s  %s  %s dialect, %d blocks", cli.Label(out.File), key, res.Dialect, res.Summary.TotalBlocks)
		if res.Summary.SkippedRows > 0 || res.Summary.IgnoredColumns > 0 {
			ctx.Printf(", %s", cli.Warning(fmt.Sprintf("%d row(s) skipped, %d column(s) ignored", res.Summary.SkippedRows, res.Summary.IgnoredColumns)))
		}
		ctx.Println()
	}
	if res.Summary.SkippedRows > 0 {
		logger.Warn("Rows skipped during import", "file", file, "rows", res.Summary.SkippedRows)
	}

	if c.DryRun {
		return out, nil
	}

	if _, err := ctx.Store.GetWeek(key); err == nil {
		ok, err := ctx.Confirm(fmt.Sprintf("Replace stored week %s?", key), "The stored grid will be overwritten by "+out.File+".")
		if err != nil {
			return out, err
		}
		if !ok {
			if !ctx.JSON {
				ctx.Println("  skipped")
			}
			return out, nil
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return out, fmt.Errorf("failed to check stored week: %w", err)
	}

	if !*backedUp {
		ctx.PerformAutomaticBackup()
		*backedUp = true
	}

	now := time.Now().UTC()
	record := models.WeekRecord{
		Week:       key,
		CSV:        eng.EncodeWeekCSV(res.Grid),
		Dialect:    string(res.Dialect),
		Source:     out.File,
		Blocks:     res.Grid.TrackedBlocks(),
		ImportedAt: now,
		UpdatedAt:  now,
	}
	if err := ctx.Store.SaveWeek(record); err != nil {
		return out, fmt.Errorf("failed to save week: %w", err)
	}
	entry := models.ImportEntry{
		ID:             uuid.New().String(),
		Week:           key,
		Source:         out.File,
		Dialect:        string(res.Dialect),
		Blocks:         record.Blocks,
		SkippedRows:    res.Summary.SkippedRows,
		IgnoredColumns: res.Summary.IgnoredColumns,
		ImportedAt:     now,
	}
	if err := ctx.Store.RecordImport(entry); err != nil {
		logger.Warn("Failed to record import", "week", key, "error", err)
	}
	logger.Info("Imported week", "week", key, "file", file, "dialect", res.Dialect, "blocks", record.Blocks)

	out.Stored = true
	return out, nil
}

// weekFor picks the week a file is stored under: --week, then the dates in
// the header, then a YYYY_WW file name.
func (c *ImportCmd) weekFor(file string, res csvcodec.Result) (calendar.WeekKey, error) {
	if c.Week != "" {
		return calendar.ParseWeekKey(c.Week)
	}
	if res.Week != nil {
		return *res.Week, nil
	}
	if key, ok := WeekFromFileName(file); ok {
		return key, nil
	}
	return calendar.WeekKey{}, fmt.Errorf("cannot tell which week %s holds: its header has no dates and the file is not named YYYY_WW.csv; pass --week", filepath.Base(file))
}

// WeekFromFileName reads the week from an export file name such as 2025_03.csv.
func WeekFromFileName(file string) (calendar.WeekKey, bool) {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	key, err := calendar.ParseWeekKey(base)
	if err != nil {
		return calendar.WeekKey{}, false
	}
	return key, true
}
