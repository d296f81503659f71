package reports

import (
	"fmt"
	"strings"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/engine"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/streak"
)

type StreaksCmd struct {
	Weeks int `help:"Only look at this many trailing weeks (0 for every stored week)."`
	Days  int `help:"Days shown in the recent-days strip." default:"28"`
}

type streakReport struct {
	AsOf    string               `json:"as_of"`
	Metrics models.StreakMetrics `json:"metrics"`
	Recent  []streak.Day         `json:"recent"`
}

func (c *StreaksCmd) Run(ctx *cli.Context) error {
	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	today, err := ctx.Today(settings)
	if err != nil {
		return err
	}

	var weeks []engine.Week
	if c.Weeks > 0 {
		weeks, err = window(ctx, eng, calendar.ToWeekKey(today), c.Weeks)
	} else {
		weeks, err = allWeeks(ctx, eng)
	}
	if err != nil {
		return err
	}

	cfg := eng.Config()
	rule := streak.RuleFrom(cfg)
	records := eng.DayRecords(weeks)
	report := streakReport{
		AsOf:    today.Format(constants.DateFormat),
		Metrics: streak.ComputeAsOf(records, today, rule, cfg.SkipBudget),
	}
	if c.Days > 0 {
		report.Recent = streak.Series(records, today.AddDate(0, 0, -(c.Days-1)), today, rule)
	}

	if ctx.JSON {
		return ctx.PrintJSON(report)
	}

	m := report.Metrics
	ctx.Println(cli.Heading("Streaks") + "  " + cli.Label("as of "+report.AsOf))
	ctx.Printf("  Current:  %d day(s)\n", m.CurrentStreak)
	ctx.Printf("  Longest:  %d day(s)\n", m.LongestStreak)
	ctx.Printf("  Productive %d of %d day(s), %d skipped within budget\n", m.ProductiveDays, m.TotalDays, m.SkippedDays)
	ctx.Printf("  %s\n", cli.Label(fmt.Sprintf("bar: %.1fh weekdays, %.1fh weekends, skip budget %d", rule.WeekdayHours, rule.WeekendHours, cfg.SkipBudget)))
	if len(report.Recent) > 0 {
		ctx.Println()
		ctx.Printf("  %s\n", strip(report.Recent))
		ctx.Printf("  %s\n", cli.Label("■ productive  □ below the bar  · untracked"))
	}
	return nil
}

func strip(days []streak.Day) string {
	var b strings.Builder
	for i, d := range days {
		if i > 0 && calendar.DayIndexOf(d.Date) == 0 {
			b.WriteString(" ")
		}
		switch {
		case d.Productive:
			b.WriteString(cli.Good("■"))
		case d.Tracked:
			b.WriteString(cli.Warning("□"))
		default:
			b.WriteString(cli.Label("·"))
		}
	}
	return b.String()
}

func allWeeks(ctx *cli.Context, eng engine.Engine) ([]engine.Week, error) {
	records, err := ctx.Store.ListWeeks(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	weeks := make([]engine.Week, 0, len(records))
	for _, rec := range records {
		w, err := cli.DecodeRecord(eng, rec)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}
