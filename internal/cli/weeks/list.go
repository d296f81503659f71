package weeks

import (
	"fmt"

	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/constants"
)

type ListCmd struct {
	Deleted bool `help:"Include soft-deleted weeks."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.ListWeeks(c.Deleted)
	if err != nil {
		return fmt.Errorf("failed to list weeks: %w", err)
	}
	if ctx.JSON {
		for i := range records {
			records[i].CSV = ""
		}
		return ctx.PrintJSON(records)
	}
	if len(records) == 0 {
		ctx.Println("No weeks stored. Import one with 'weekgrid import <file>'.")
		return nil
	}

	ctx.Println(cli.Heading(fmt.Sprintf("Stored weeks (%d)", len(records))))
	for _, rec := range records {
		start, end := rec.Week.DateRange()
		line := fmt.Sprintf("  %s  %s..%s  %4d blocks  %-11s  %s",
			rec.Week,
			start.Format(constants.DateFormat),
			end.Format(constants.DateFormat),
			rec.Blocks,
			rec.Dialect,
			rec.Source,
		)
		if rec.IsDeleted() {
			line += "  " + cli.Warning("deleted "+rec.DeletedAt.Format(constants.DateFormat))
		}
		ctx.Println(line)
	}
	return nil
}

type HistoryCmd struct {
	Limit int `help:"Number of entries to show (0 for all)." default:"20"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.ListImports(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list imports: %w", err)
	}
	if ctx.JSON {
		return ctx.PrintJSON(entries)
	}
	if len(entries) == 0 {
		ctx.Println("No imports recorded.")
		return nil
	}

	ctx.Println(cli.Heading("Import history"))
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s  %-11s  %4d blocks  %s",
			e.ImportedAt.Local().Format("2006-01-02 15:04"),
			e.Week,
			e.Dialect,
			e.Blocks,
			e.Source,
		)
		if e.SkippedRows > 0 || e.IgnoredColumns > 0 {
			line += "  " + cli.Warning(fmt.Sprintf("skipped %d row(s), ignored %d column(s)", e.SkippedRows, e.IgnoredColumns))
		}
		ctx.Println(line)
	}
	return nil
}
