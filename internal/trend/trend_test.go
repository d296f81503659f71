package trend

import (
	"testing"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
)

func summary(hours map[models.Category]float64) models.WeeklySummary {
	h := models.NewCategoryHours()
	for c, v := range hours {
		h[c] = v
	}
	return models.WeeklySummary{CategoryHours: h, TotalHours: h.Total()}
}

func TestChangePct(t *testing.T) {
	tests := []struct {
		name           string
		oldest, newest float64
		want           float64
	}{
		{"growth", 10, 15, 50},
		{"decline", 20, 15, -25},
		{"rounded", 3, 4, 33.3},
		{"zero oldest, positive newest", 0, 5, 100},
		{"zero oldest, zero newest", 0, 0, 0},
		{"to zero", 8, 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangePct(tt.oldest, tt.newest); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassify_DeadBand(t *testing.T) {
	tests := []struct {
		change float64
		want   models.Direction
	}{
		{5.1, models.DirectionIncreasing},
		{5, models.DirectionStable},
		{0, models.DirectionStable},
		{-5, models.DirectionStable},
		{-5.1, models.DirectionDecreasing},
	}

	for _, tt := range tests {
		if got := Classify(tt.change, 5); got != tt.want {
			t.Errorf("Classify(%v): expected %s, got %s", tt.change, tt.want, got)
		}
	}
}

func TestCompute_ClassifiesBeforeRounding(t *testing.T) {
	cfg := models.DefaultAnalyticsConfig()
	summaries := []models.WeeklySummary{
		{CategoryHours: models.CategoryHours{models.CategoryWork: 105.04}},
		{CategoryHours: models.CategoryHours{models.CategoryWork: 100}},
	}

	w := Compute(summaries, nil, cfg).CategoryTrends[models.CategoryWork]
	if w.ChangePct != 5 {
		t.Errorf("Expected change rounded to 5, got %v", w.ChangePct)
	}
	if w.Direction != models.DirectionIncreasing {
		t.Errorf("Expected a 5.04%% rise to be increasing with a 5%% band, got %s", w.Direction)
	}
}

func TestCompute(t *testing.T) {
	newest := summary(map[models.Category]float64{models.CategoryWork: 30, models.CategoryGrowth: 4})
	middle := summary(map[models.Category]float64{models.CategoryWork: 25, models.CategoryGrowth: 4})
	oldest := summary(map[models.Category]float64{models.CategoryWork: 20, models.CategoryGrowth: 4, models.CategoryRest: 6})
	keys := []calendar.WeekKey{{Year: 2025, Week: 3}, {Year: 2025, Week: 2}, {Year: 2025, Week: 1}}

	res := Compute([]models.WeeklySummary{newest, middle, oldest}, keys, models.DefaultAnalyticsConfig())

	w := res.CategoryTrends[models.CategoryWork]
	if w.Average != 25 || w.ChangePct != 50 || w.Direction != models.DirectionIncreasing {
		t.Errorf("Unexpected Work trend: %+v", w)
	}
	g := res.CategoryTrends[models.CategoryGrowth]
	if g.Direction != models.DirectionStable || g.ChangePct != 0 {
		t.Errorf("Unexpected Growth trend: %+v", g)
	}
	r := res.CategoryTrends[models.CategoryRest]
	if r.Direction != models.DirectionDecreasing || r.ChangePct != -100 || r.Average != 2 {
		t.Errorf("Unexpected Rest trend: %+v", r)
	}
	m := res.CategoryTrends[models.CategoryMandatory]
	if m.Direction != models.DirectionStable || m.ChangePct != 0 {
		t.Errorf("Expected untouched category to be stable at 0, got %+v", m)
	}

	if len(res.PerWeek) != 3 || res.PerWeek[0].Week != keys[0] || res.PerWeek[0].TotalHours != 34 {
		t.Errorf("Unexpected per-week points: %+v", res.PerWeek)
	}
}

func TestCompute_SingleWeekIsStable(t *testing.T) {
	res := Compute([]models.WeeklySummary{summary(map[models.Category]float64{models.CategoryWork: 12})}, nil, models.DefaultAnalyticsConfig())

	w := res.CategoryTrends[models.CategoryWork]
	if w.Direction != models.DirectionStable || w.ChangePct != 0 || w.Average != 12 {
		t.Errorf("Expected a single week to be stable, got %+v", w)
	}
	if res.PerWeek[0].Week != (calendar.WeekKey{}) {
		t.Errorf("Expected a zero key when none was given, got %v", res.PerWeek[0].Week)
	}
}

func TestCompute_Empty(t *testing.T) {
	res := Compute(nil, nil, models.DefaultAnalyticsConfig())
	if len(res.CategoryTrends) != len(models.Categories) {
		t.Errorf("Expected a trend for every category, got %d", len(res.CategoryTrends))
	}
	if len(res.PerWeek) != 0 {
		t.Errorf("Expected no per-week points, got %d", len(res.PerWeek))
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name       string
		summaries  []models.WeeklySummary
		score      float64
		assessment models.BalanceAssessment
	}{
		{
			"balanced",
			[]models.WeeklySummary{summary(map[models.Category]float64{models.CategoryWork: 40, models.CategoryRest: 20, models.CategoryPersonal: 10})},
			75, models.BalanceBalanced,
		},
		{
			"work heavy",
			[]models.WeeklySummary{summary(map[models.Category]float64{models.CategoryWork: 50, models.CategoryGrowth: 10})},
			20, models.BalanceWorkHeavy,
		},
		{
			"life heavy",
			[]models.WeeklySummary{summary(map[models.Category]float64{models.CategoryWork: 5, models.CategoryRest: 40})},
			13, models.BalanceLifeHeavy,
		},
		{
			"mandatory only",
			[]models.WeeklySummary{summary(map[models.Category]float64{models.CategoryMandatory: 10})},
			0, models.BalanceUntracked,
		},
		{"no weeks", nil, 0, models.BalanceUntracked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Balance(tt.summaries)
			if b.Score != tt.score || b.Assessment != tt.assessment {
				t.Errorf("Expected score %v (%s), got %+v", tt.score, tt.assessment, b)
			}
		})
	}
}

func TestBalance_AveragesPerWeek(t *testing.T) {
	b := Balance([]models.WeeklySummary{
		summary(map[models.Category]float64{models.CategoryWork: 40, models.CategoryRest: 30}),
		summary(map[models.Category]float64{models.CategoryWork: 20, models.CategoryRest: 30}),
	})
	if b.WorkHours != 30 || b.LifeHours != 30 || b.Ratio != 1 {
		t.Errorf("Expected averaged hours 30/30, got %+v", b)
	}
}
