package system

import (
	"fmt"

	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/migration"
)

// migratable is implemented by stores backed by a SQL schema.
type migratable interface {
	Runner() (*migration.Runner, error)
}

func runnerFor(ctx *cli.Context) (*migration.Runner, error) {
	m, ok := ctx.Store.(migratable)
	if !ok {
		return nil, fmt.Errorf("store %T has no schema migrations", ctx.Store)
	}
	return m.Runner()
}

type MigrateCmd struct {
	Status bool `help:"Only report the schema version and pending migrations."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	runner, err := runnerFor(ctx)
	if err != nil {
		return err
	}

	if c.Status {
		current, err := runner.GetCurrentVersion()
		if err != nil {
			return fmt.Errorf("failed to get current schema version: %w", err)
		}
		pending, err := runner.Pending()
		if err != nil {
			return fmt.Errorf("failed to read migrations: %w", err)
		}
		ctx.Printf("Schema version: %d\n", current)
		if len(pending) == 0 {
			ctx.Println("No pending migrations.")
			return nil
		}
		ctx.Printf("Pending migrations (%d):\n", len(pending))
		for _, m := range pending {
			ctx.Printf("  %03d %s\n", m.Version, m.Name)
		}
		return nil
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
