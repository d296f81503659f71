package system

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/weekgrid/internal/backup"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/profile"
	"github.com/julianstephens/weekgrid/internal/validation"
)

type DoctorCmd struct{}

// check is one diagnostic. needsDB checks are skipped when the database
// cannot be reached; warn checks never fail the run.
type check struct {
	name    string
	needsDB bool
	warn    bool
	run     func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Backups present", warn: true, run: checkBackupsPresent},
	{name: "Week data", needsDB: true, run: checkWeeks},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false
	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

type dbHolder interface {
	GetDB() *sql.DB
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if h, ok := ctx.Store.(dbHolder); ok {
		db := h.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	runner, err := runnerFor(ctx)
	if err != nil {
		return nil
	}
	return runner.ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	runner, err := runnerFor(ctx)
	if err != nil {
		return nil
	}
	current, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'weekgrid migrate')", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	return profile.Validate(settings)
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if !mgr.Supported() {
		return nil
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'weekgrid backup create'")
	}
	return nil
}

// checkWeeks decodes every stored week and validates its grid.
func checkWeeks(ctx *cli.Context) error {
	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	records, err := ctx.Store.ListWeeks(true)
	if err != nil {
		return fmt.Errorf("failed to list weeks: %w", err)
	}
	validator := validation.New(settings.Analytics.SlotMinutes)
	for _, rec := range records {
		if !rec.Week.Valid() {
			return fmt.Errorf("stored week has an invalid key: %s", rec.Week)
		}
		w, err := cli.DecodeRecord(eng, rec)
		if err != nil {
			return err
		}
		if vr := validator.ValidateGrid(w.Grid); vr.HasConflicts() {
			return fmt.Errorf("week %s: %s", rec.Week, vr.Conflicts[0].Description)
		}
		if got := w.Grid.TrackedBlocks(); got != rec.Blocks {
			return fmt.Errorf("week %s: %d tracked blocks stored, metadata says %d", rec.Week, got, rec.Blocks)
		}
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if ctx.Now != nil {
		now = ctx.Now()
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
