package reports

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/rhythm"
	"github.com/julianstephens/weekgrid/internal/storage"
	"github.com/julianstephens/weekgrid/internal/storage/sqlite"
)

// Two short weekday sessions of work and a rested weekend.
const lightWeek = `Time,2025-01-06,2025-01-07,2025-01-08,2025-01-09,2025-01-10,2025-01-11,2025-01-12
09:00,W:email,W:email,W,W,W,R,R
09:30,W:email,W,W,W,W,,
`

// Four hours of work every day.
const busyWeek = `Time,2025-01-13,2025-01-14,2025-01-15,2025-01-16,2025-01-17,2025-01-18,2025-01-19
09:00,W,W,W,W,W,W,W
09:30,W,W,W,W,W,W,W
10:00,W,W,W,W,W,W,W
10:30,W,W,W,W,W,W,W
11:00,W,W,W,W,W,W,W
11:30,W,W,W,W,W,W,W
12:00,W,W,W,W,W,W,W
12:30,W,W,W,W,W,W,W
`

var (
	lightKey = calendar.WeekKey{Year: 2025, Week: 2}
	busyKey  = calendar.WeekKey{Year: 2025, Week: 3}
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	for key, text := range map[calendar.WeekKey]string{lightKey: lightWeek, busyKey: busyWeek} {
		if err := store.SaveWeek(models.WeekRecord{Week: key, CSV: text, Dialect: "canonical"}); err != nil {
			t.Fatalf("failed to save week %s: %v", key, err)
		}
	}

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store: store,
		Out:   out,
		Now:   func() time.Time { return time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC) },
	}
	return ctx, out
}

func decode(t *testing.T, out *bytes.Buffer, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(out.Bytes(), v); err != nil {
		t.Fatalf("failed to decode JSON output: %v\n%s", err, out.String())
	}
}

func TestSummaryCmd_JSON(t *testing.T) {
	ctx, out := setupTestDB(t)
	ctx.JSON = true

	cmd := &SummaryCmd{Week: "2025-W02"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	var report weekReport
	decode(t, out, &report)
	if report.Week != lightKey {
		t.Errorf("Expected week %s, got %s", lightKey, report.Week)
	}
	if got := report.Summary.CategoryHours[models.CategoryWork]; got != 5 {
		t.Errorf("Expected 5 work hours, got %g", got)
	}
	if got := report.Summary.CategoryHours[models.CategoryRest]; got != 1 {
		t.Errorf("Expected 1 rest hour, got %g", got)
	}
	if report.WorkGoal.TargetHours != 40 || report.WorkGoal.Met {
		t.Errorf("Expected unmet 40h goal, got %+v", report.WorkGoal)
	}
	email := false
	for _, a := range report.Summary.TopActivities {
		if a.Name == "email" && a.Blocks == 3 {
			email = true
		}
	}
	if !email {
		t.Errorf("Expected email with 3 blocks among top activities, got %+v", report.Summary.TopActivities)
	}
	if report.PeakSlot == nil {
		t.Error("Expected a peak slot")
	}
}

func TestSummaryCmd_Text(t *testing.T) {
	ctx, out := setupTestDB(t)

	cmd := &SummaryCmd{Week: "2025-W03"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	for _, want := range []string{"Week 2025-W03", "Hours by category", "Work"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out.String())
		}
	}
}

func TestSummaryCmd_CurrentWeek(t *testing.T) {
	ctx, out := setupTestDB(t)

	// 2025-01-19 is the Sunday of 2025-W03
	cmd := &SummaryCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !strings.Contains(out.String(), "2025-W03") {
		t.Errorf("Expected the current week, got:\n%s", out.String())
	}
}

func TestSummaryCmd_Missing(t *testing.T) {
	ctx, _ := setupTestDB(t)

	cmd := &SummaryCmd{Week: "2025-W10"}
	if err := cmd.Run(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestTrendCmd_JSON(t *testing.T) {
	ctx, out := setupTestDB(t)
	ctx.JSON = true

	cmd := &TrendCmd{Weeks: 2, End: "2025-W03"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("trend failed: %v", err)
	}

	var trend models.TrendSummary
	decode(t, out, &trend)
	if len(trend.Weeks) != 2 || len(trend.PerWeek) != 2 {
		t.Fatalf("Expected 2 weeks in the trend, got %d weeks and %d points", len(trend.Weeks), len(trend.PerWeek))
	}
	work := trend.CategoryTrends[models.CategoryWork]
	if work.Direction != models.DirectionIncreasing {
		t.Errorf("Expected work to be increasing, got %s (%+v)", work.Direction, work)
	}
	if trend.StreakMetrics.CurrentStreak != 7 {
		t.Errorf("Expected current streak 7, got %d", trend.StreakMetrics.CurrentStreak)
	}
}

func TestTrendCmd_EmptyWindow(t *testing.T) {
	ctx, out := setupTestDB(t)

	cmd := &TrendCmd{Weeks: 4, End: "2024-W30"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("trend failed: %v", err)
	}
	if !strings.Contains(out.String(), "No stored weeks in this window.") {
		t.Errorf("Expected empty window message, got:\n%s", out.String())
	}
}

func TestTrendCmd_NegativeWeeks(t *testing.T) {
	ctx, _ := setupTestDB(t)

	cmd := &TrendCmd{Weeks: -1}
	if err := cmd.Run(ctx); err == nil {
		t.Error("Expected error for negative --weeks")
	}
}

func TestAsOfDate(t *testing.T) {
	today := time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC)

	if got := asOfDate(today, busyKey); !got.Equal(today) {
		t.Errorf("Expected today for the current week, got %s", got)
	}
	want := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	if got := asOfDate(today, lightKey); !got.Equal(want) {
		t.Errorf("Expected %s for a past week, got %s", want, got)
	}
}

func TestStreaksCmd_JSON(t *testing.T) {
	ctx, out := setupTestDB(t)
	ctx.JSON = true

	cmd := &StreaksCmd{Days: 14}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("streaks failed: %v", err)
	}

	var report streakReport
	decode(t, out, &report)
	if report.AsOf != "2025-01-19" {
		t.Errorf("Expected as of 2025-01-19, got %s", report.AsOf)
	}
	if report.Metrics.CurrentStreak != 7 || report.Metrics.LongestStreak != 7 {
		t.Errorf("Expected current and longest streak 7, got %+v", report.Metrics)
	}
	if report.Metrics.ProductiveDays != 7 {
		t.Errorf("Expected 7 productive days, got %d", report.Metrics.ProductiveDays)
	}
	if len(report.Recent) != 14 {
		t.Fatalf("Expected 14 recent days, got %d", len(report.Recent))
	}
	if report.Recent[0].Productive || !report.Recent[0].Tracked {
		t.Errorf("Expected 2025-01-06 tracked but not productive, got %+v", report.Recent[0])
	}
	if !report.Recent[13].Productive {
		t.Errorf("Expected 2025-01-19 productive, got %+v", report.Recent[13])
	}
}

func TestStreaksCmd_Text(t *testing.T) {
	ctx, out := setupTestDB(t)

	cmd := &StreaksCmd{Days: 7}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("streaks failed: %v", err)
	}
	if !strings.Contains(out.String(), "■■■■■■■") {
		t.Errorf("Expected a full productive week strip, got:\n%s", out.String())
	}
}

func TestRhythmCmd_JSON(t *testing.T) {
	ctx, out := setupTestDB(t)
	ctx.JSON = true

	cmd := &RhythmCmd{Weeks: 2, End: "2025-W03"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("rhythm failed: %v", err)
	}

	var cells []models.RhythmCell
	decode(t, out, &cells)
	cell, ok := rhythm.Cell(cells, 0, "09:00")
	if !ok {
		t.Fatal("Expected a Monday 09:00 cell")
	}
	if cell.Dominant != models.CategoryWork {
		t.Errorf("Expected work to dominate Monday 09:00, got %q", cell.Dominant)
	}
	if cell.Weeks != 2 {
		t.Errorf("Expected the cell to average 2 weeks, got %d", cell.Weeks)
	}
	empty, ok := rhythm.Cell(cells, 0, "20:00")
	if !ok {
		t.Fatal("Expected a Monday 20:00 cell")
	}
	if empty.Dominant != models.CategoryUnset {
		t.Errorf("Expected no dominant category at 20:00, got %q", empty.Dominant)
	}
}

func TestRhythmCmd_Text(t *testing.T) {
	ctx, out := setupTestDB(t)

	cmd := &RhythmCmd{Weeks: 2, End: "2025-W03", Hours: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("rhythm failed: %v", err)
	}
	for _, want := range []string{"Rhythm over 2 week(s) ending 2025-W03", "09:00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out.String())
		}
	}
}
