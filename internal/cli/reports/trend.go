package reports

import (
	"fmt"
	"time"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/engine"
	"github.com/julianstephens/weekgrid/internal/models"
)

type TrendCmd struct {
	Weeks int    `help:"Number of trailing weeks (defaults to the trend_window_weeks setting)."`
	End   string `help:"Last week of the window (YYYY-Wnn, 'current' or 'last'). Defaults to the current week."`
}

// window loads the stored weeks in the n weeks ending at end.
func window(ctx *cli.Context, eng engine.Engine, end calendar.WeekKey, n int) ([]engine.Week, error) {
	keys := calendar.Trailing(end, n)
	if len(keys) == 0 {
		return nil, nil
	}
	return ctx.LoadWeeks(eng, keys[len(keys)-1], keys[0])
}

func (c *TrendCmd) Run(ctx *cli.Context) error {
	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	cfg := settings.Analytics
	if c.Weeks < 0 {
		return fmt.Errorf("--weeks must be positive, got %d", c.Weeks)
	}
	if c.Weeks > 0 {
		cfg.TrendWindowWeeks = c.Weeks
		eng = engine.New(cfg)
	}
	end, err := ctx.WeekArg(c.End, settings)
	if err != nil {
		return err
	}
	today, err := ctx.Today(settings)
	if err != nil {
		return err
	}

	weeks, err := window(ctx, eng, end, cfg.TrendWindowWeeks)
	if err != nil {
		return err
	}
	out := eng.Analyze(weeks, asOfDate(today, end))

	if ctx.JSON {
		return ctx.PrintJSON(out)
	}
	printTrend(ctx, out, end, cfg.TrendWindowWeeks)
	return nil
}

func printTrend(ctx *cli.Context, t models.TrendSummary, end calendar.WeekKey, n int) {
	ctx.Println(cli.Heading(fmt.Sprintf("Trend over %d week(s) ending %s", n, end)) +
		"  " + cli.Label(fmt.Sprintf("%d stored", len(t.Weeks))))
	ctx.Println()
	if len(t.Weeks) == 0 {
		ctx.Println(cli.Warning("No stored weeks in this window."))
		return
	}

	ctx.Printf("  %-9s", "")
	for _, cat := range models.Categories {
		ctx.Printf(" %7s", string(cat))
	}
	ctx.Printf(" %7s\n", "Total")
	for _, p := range t.PerWeek {
		ctx.Printf("  %-9s", p.Week)
		for _, cat := range models.Categories {
			ctx.Printf(" %7.1f", p.CategoryHours[cat])
		}
		ctx.Printf(" %7.1f\n", p.TotalHours)
	}
	ctx.Println()

	ctx.Println(cli.Heading("Direction"))
	for _, cat := range models.Categories {
		tr, ok := t.CategoryTrends[cat]
		if !ok {
			continue
		}
		ctx.Printf("  %-10s avg %5.1fh  %s %+.1f%%\n", cat.Label(), tr.Average, arrow(tr.Direction), tr.ChangePct)
	}
	ctx.Println()

	b := t.WorkLifeBalance
	ctx.Printf("%s  work %.1fh / life %.1fh per week, score %.0f  %s\n",
		cli.Heading("Balance"), b.WorkHours, b.LifeHours, b.Score, assessment(b.Assessment))
	s := t.StreakMetrics
	ctx.Printf("%s  current %d, longest %d day(s)\n", cli.Heading("Streak"), s.CurrentStreak, s.LongestStreak)
}

func arrow(d models.Direction) string {
	switch d {
	case models.DirectionIncreasing:
		return cli.Good("↑")
	case models.DirectionDecreasing:
		return cli.Danger("↓")
	default:
		return cli.Label("→")
	}
}

func assessment(a models.BalanceAssessment) string {
	switch a {
	case models.BalanceBalanced:
		return cli.Good(string(a))
	case models.BalanceUntracked:
		return cli.Label(string(a))
	default:
		return cli.Warning(string(a))
	}
}

// asOfDate is the day streaks run through: today, or the end of a window in the past.
func asOfDate(today time.Time, end calendar.WeekKey) time.Time {
	if _, last := end.DateRange(); last.Before(today) {
		return last
	}
	return today
}
