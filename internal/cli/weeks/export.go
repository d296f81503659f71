package weeks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/engine"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/storage"
)

type ExportCmd struct {
	Week   string `arg:"" optional:"" help:"Week to export (YYYY-Wnn, 'current' or 'last'). Defaults to the current week."`
	Output string `short:"o" help:"File to write. Defaults to stdout."`
	All    bool   `help:"Export every stored week into the --dir directory as YYYY_WW.csv."`
	Dir    string `help:"Directory for --all." default:"."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	if c.All {
		return c.exportAll(ctx, eng)
	}

	key, err := ctx.WeekArg(c.Week, settings)
	if err != nil {
		return err
	}
	rec, err := ctx.Store.GetWeek(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("week %s: %w", key, err)
		}
		return fmt.Errorf("failed to get week: %w", err)
	}
	w, err := cli.DecodeRecord(eng, rec)
	if err != nil {
		return err
	}
	text := eng.EncodeWeekCSV(w.Grid)

	if c.Output == "" || c.Output == "-" {
		ctx.Printf("%s", text)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Fprintf(os.Stderr, "✓ Exported %s to %s\n", key, c.Output)
	return nil
}

func (c *ExportCmd) exportAll(ctx *cli.Context, eng engine.Engine) error {
	records, err := ctx.Store.ListWeeks(false)
	if err != nil {
		return fmt.Errorf("failed to list weeks: %w", err)
	}
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	for _, rec := range records {
		w, err := cli.DecodeRecord(eng, rec)
		if err != nil {
			return err
		}
		path := filepath.Join(c.Dir, FileName(rec.Week))
		if err := os.WriteFile(path, []byte(eng.EncodeWeekCSV(w.Grid)), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("Exported week", "week", rec.Week, "path", path)
	}
	ctx.Printf("✓ Exported %d week(s) to %s\n", len(records), c.Dir)
	return nil
}

// FileName is the export file name of a week, e.g. 2025_03.csv.
func FileName(key calendar.WeekKey) string {
	return fmt.Sprintf("%04d_%02d.csv", key.Year, key.Week)
}
