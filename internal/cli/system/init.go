package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/storage"
	"github.com/julianstephens/weekgrid/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized weekgrid storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Migrating data from: %s\n", postgres.MaskPassword(c.Source))
		if err := c.migrateData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}
	return nil
}

// reset deletes the sqlite file behind ctx.Store.
func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if dbPath == constants.PostgresConfigPath {
		return errors.New("--force is only supported for sqlite databases")
	}
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" && !postgres.IsConnString(c.Source) {
		if absSource, err := filepath.Abs(cli.ExpandHome(c.Source)); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		// Close first so the file is not held open while it is removed
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		logger.Info("Deleted existing database", "path", dbPath)
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context) error {
	if postgres.IsConnString(c.Source) {
		if valid, err := postgres.ValidateConnString(c.Source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
	}
	source := cli.OpenStore(c.Source)
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return CopyStore(ctx, source, ctx.Store)
}

// CopyStore copies settings, every week (soft-deleted ones stay deleted) and
// the import history from src into dst.
func CopyStore(ctx *cli.Context, src, dst storage.Provider) error {
	ctx.Println("  Migrating settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Migrating weeks...")
	weeks, err := src.ListWeeks(true)
	if err != nil {
		return fmt.Errorf("failed to get weeks from source: %w", err)
	}
	for _, w := range weeks {
		if err := dst.SaveWeek(w); err != nil {
			return fmt.Errorf("failed to save week %s: %w", w.Week, err)
		}
		if w.IsDeleted() {
			if err := dst.DeleteWeek(w.Week); err != nil && !errors.Is(err, storage.ErrAlreadyDeleted) {
				return fmt.Errorf("failed to mark week %s deleted: %w", w.Week, err)
			}
		}
	}
	ctx.Printf("    Migrated %d weeks\n", len(weeks))

	ctx.Println("  Migrating import history...")
	entries, err := src.ListImports(0)
	if err != nil {
		return fmt.Errorf("failed to get import history from source: %w", err)
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if err := dst.RecordImport(entries[i]); err != nil {
			return fmt.Errorf("failed to record import %s: %w", entries[i].ID, err)
		}
	}
	ctx.Printf("    Migrated %d import entries\n", len(entries))
	return nil
}
