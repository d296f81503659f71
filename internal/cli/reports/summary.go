package reports

import (
	"errors"
	"fmt"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/storage"
)

const barWidth = 30

type SummaryCmd struct {
	Week string `arg:"" optional:"" help:"Week to summarize (YYYY-Wnn, 'current' or 'last'). Defaults to the current week."`
}

// weekReport is the --json shape of a summary.
type weekReport struct {
	Week            calendar.WeekKey              `json:"week"`
	Summary         models.WeeklySummary          `json:"summary"`
	WorkGoal        models.WorkGoalMetrics        `json:"work_goal"`
	Procrastination models.ProcrastinationMetrics `json:"procrastination"`
	PeakSlot        *models.SlotPattern           `json:"peak_slot,omitempty"`
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
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

	summary := eng.SummarizeWeek(w.Grid)
	report := weekReport{
		Week:            key,
		Summary:         summary,
		WorkGoal:        eng.WorkGoal(summary),
		Procrastination: eng.Procrastination(w.Grid),
	}
	if peak, ok := eng.PeakSlot(summary); ok {
		report.PeakSlot = &peak
	}

	if ctx.JSON {
		return ctx.PrintJSON(report)
	}
	printWeek(ctx, report)
	return nil
}

func printWeek(ctx *cli.Context, r weekReport) {
	s := r.Summary
	start, end := r.Week.DateRange()
	ctx.Println(cli.Heading(fmt.Sprintf("Week %s", r.Week)) + "  " +
		cli.Label(fmt.Sprintf("%s..%s", start.Format(constants.DateFormat), end.Format(constants.DateFormat))))
	ctx.Println()

	if s.TotalHours == 0 {
		ctx.Println(cli.Warning("No tracked blocks this week."))
		return
	}

	ctx.Println(cli.Heading("Hours by category"))
	top := 0.0
	for _, cat := range models.Categories {
		if s.CategoryHours[cat] > top {
			top = s.CategoryHours[cat]
		}
	}
	for _, cat := range models.Categories {
		h := s.CategoryHours[cat]
		ctx.Printf("  %-10s %6.1fh  %5.1f/day  %s\n", cat.Label(), h, s.CategoryAverages[cat], cli.Bar(cat, h, top, barWidth))
	}
	ctx.Printf("  %-10s %6.1fh  over %d tracked day(s)\n\n", "Total", s.TotalHours, s.TrackedDays)

	ctx.Println(cli.Heading("Daily breakdown"))
	ctx.Printf("  %-4s", "")
	for _, cat := range models.Categories {
		ctx.Printf(" %6s", string(cat))
	}
	ctx.Printf(" %7s\n", "Total")
	for _, day := range s.DailyBreakdown {
		ctx.Printf("  %-4s", calendar.DayName(day.DayIndex))
		for _, cat := range models.Categories {
			ctx.Printf(" %6.1f", day.CategoryHours[cat])
		}
		ctx.Printf(" %7.1f\n", day.TotalHours)
	}
	ctx.Println()

	if len(s.TopActivities) > 0 {
		ctx.Println(cli.Heading("Top activities"))
		for i, a := range s.TopActivities {
			name := a.Name
			if name == "" {
				name = "(unnamed)"
			}
			ctx.Printf("  %2d. %s %-24s %5.1fh  %5.1f%%\n", i+1, cli.CategoryCell(a.Category), name, a.Hours, a.Percentage)
		}
		ctx.Println()
	}

	g := r.WorkGoal
	status := cli.Warning(fmt.Sprintf("%.1fh to go", g.RemainingHours))
	if g.Met {
		status = cli.Good("goal met")
	}
	ctx.Printf("%s  %.1f / %.1fh (%.0f%%)  %s\n", cli.Heading("Work goal"), g.ActualHours, g.TargetHours, g.ProgressPct, status)

	p := r.Procrastination
	ctx.Printf("%s  %.1fh of %.1fh work-window time (%.1f%%)\n", cli.Heading("Procrastination"), p.Hours, p.WindowHours, p.Percentage)

	if r.PeakSlot != nil {
		ctx.Printf("%s  %s (%d block(s) across the week)\n", cli.Heading("Peak slot"), r.PeakSlot.Time, r.PeakSlot.Total)
	}
}
