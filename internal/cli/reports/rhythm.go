package reports

import (
	"fmt"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/rhythm"
)

type RhythmCmd struct {
	Weeks int    `help:"Number of trailing weeks to average (defaults to the trend_window_weeks setting)."`
	End   string `help:"Last week of the window (YYYY-Wnn, 'current' or 'last'). Defaults to the current week."`
	Hours bool   `help:"Show average hours per cell instead of the dominant category."`
}

func (c *RhythmCmd) Run(ctx *cli.Context) error {
	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	n := c.Weeks
	if n <= 0 {
		n = settings.Analytics.TrendWindowWeeks
	}
	end, err := ctx.WeekArg(c.End, settings)
	if err != nil {
		return err
	}

	weeks, err := window(ctx, eng, end, n)
	if err != nil {
		return err
	}
	grids := make([]models.WeekGrid, len(weeks))
	for i, w := range weeks {
		grids[i] = w.Grid
	}
	cells := eng.Rhythm(grids)

	if ctx.JSON {
		return ctx.PrintJSON(cells)
	}

	ctx.Println(cli.Heading(fmt.Sprintf("Rhythm over %d week(s) ending %s", n, end)) +
		"  " + cli.Label(fmt.Sprintf("%d stored", len(weeks))))
	if len(weeks) == 0 {
		ctx.Println(cli.Warning("No stored weeks in this window."))
		return nil
	}
	ctx.Println()

	ctx.Printf("  %-5s", "")
	for day := 0; day < calendar.DaysPerWeek; day++ {
		ctx.Printf(" %5s", calendar.DayName(day))
	}
	ctx.Println()
	for _, minute := range rhythm.Buckets(eng.Config()) {
		label := models.FormatSlot(minute)
		ctx.Printf("  %-5s", label)
		for day := 0; day < calendar.DaysPerWeek; day++ {
			cell, ok := rhythm.Cell(cells, day, label)
			switch {
			case !ok || cell.Weeks == 0:
				ctx.Printf(" %5s", "")
			case c.Hours:
				ctx.Printf(" %5.1f", cell.TotalHours)
			default:
				ctx.Printf("     %s", cli.CategoryCell(cell.Dominant))
			}
		}
		ctx.Println()
	}
	return nil
}
