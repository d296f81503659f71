package weeks

import (
	"errors"
	"fmt"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/storage"
)

type DeleteCmd struct {
	Week string `arg:"" help:"Week to delete (YYYY-Wnn)."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	key, err := calendar.ParseWeekKey(c.Week)
	if err != nil {
		return err
	}
	if _, err := ctx.Store.GetWeek(key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("week %s: %w", key, err)
		}
		return fmt.Errorf("failed to get week: %w", err)
	}

	ok, err := ctx.Confirm(fmt.Sprintf("Delete week %s?", key), "It can be brought back with 'weekgrid restore "+key.String()+"'.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.DeleteWeek(key); err != nil {
		return fmt.Errorf("failed to delete week: %w", err)
	}
	logger.Info("Deleted week", "week", key)
	ctx.Printf("✓ Deleted week %s\n", key)
	return nil
}

type RestoreCmd struct {
	Week string `arg:"" help:"Deleted week to restore (YYYY-Wnn)."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	key, err := calendar.ParseWeekKey(c.Week)
	if err != nil {
		return err
	}
	if err := ctx.Store.RestoreWeek(key); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotDeleted):
			return fmt.Errorf("week %s is not deleted", key)
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("week %s: %w", key, err)
		}
		return fmt.Errorf("failed to restore week: %w", err)
	}
	logger.Info("Restored week", "week", key)
	ctx.Printf("✓ Restored week %s\n", key)
	return nil
}
