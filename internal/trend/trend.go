// Package trend compares category hours across a window of weeks.
package trend

import (
	"math"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/models"
)

// BalancedScore is the lowest score still assessed as balanced.
const BalancedScore = 70.0

// Result is the trend part of a TrendSummary.
type Result struct {
	PerWeek        []models.WeekPoint                       `json:"per_week"`
	CategoryTrends map[models.Category]models.CategoryTrend `json:"category_trends"`
}

// Compute derives per-category trends. summaries and keys are newest first;
// keys may be shorter than summaries, missing keys are left zero.
func Compute(summaries []models.WeeklySummary, keys []calendar.WeekKey, cfg models.AnalyticsConfig) Result {
	band := cfg.TrendDeadBandPct
	if band < 0 {
		band = 0
	}

	res := Result{
		PerWeek:        make([]models.WeekPoint, 0, len(summaries)),
		CategoryTrends: make(map[models.Category]models.CategoryTrend, len(models.Categories)),
	}
	for i, s := range summaries {
		p := models.WeekPoint{CategoryHours: models.NewCategoryHours()}
		if i < len(keys) {
			p.Week = keys[i]
		}
		for _, c := range models.Categories {
			p.CategoryHours[c] = s.CategoryHours[c]
		}
		p.TotalHours = p.CategoryHours.Total()
		res.PerWeek = append(res.PerWeek, p)
	}

	for _, c := range models.Categories {
		tr := models.CategoryTrend{Direction: models.DirectionStable}
		if n := len(summaries); n > 0 {
			sum := 0.0
			for _, s := range summaries {
				sum += s.CategoryHours[c]
			}
			tr.Average = sum / float64(n)
			if n >= 2 {
				raw := change(summaries[n-1].CategoryHours[c], summaries[0].CategoryHours[c])
				tr.ChangePct = math.Round(raw*10) / 10
				tr.Direction = Classify(raw, band)
			}
		}
		res.CategoryTrends[c] = tr
	}
	return res
}

// ChangePct is the oldest-to-newest change in percent, rounded to one
// decimal. A zero oldest value reports 100 when newest is positive, else 0.
func ChangePct(oldest, newest float64) float64 {
	return math.Round(change(oldest, newest)*10) / 10
}

// change is ChangePct before rounding. Directions are classified from it so
// rounding never pulls a change into the dead band.
func change(oldest, newest float64) float64 {
	if oldest == 0 {
		if newest > 0 {
			return 100
		}
		return 0
	}
	return (newest - oldest) / oldest * 100
}

// Classify maps a change onto a direction; changes within the dead band are stable.
func Classify(changePct, band float64) models.Direction {
	switch {
	case changePct > band:
		return models.DirectionIncreasing
	case changePct < -band:
		return models.DirectionDecreasing
	default:
		return models.DirectionStable
	}
}

// Balance compares average weekly Work hours with Rest, Growth and Personal time.
func Balance(summaries []models.WeeklySummary) models.WorkLifeBalance {
	var b models.WorkLifeBalance
	if len(summaries) == 0 {
		b.Assessment = models.BalanceUntracked
		return b
	}
	for _, s := range summaries {
		b.WorkHours += s.CategoryHours[models.CategoryWork]
		b.LifeHours += s.CategoryHours[models.CategoryRest] +
			s.CategoryHours[models.CategoryGrowth] +
			s.CategoryHours[models.CategoryPersonal]
	}
	n := float64(len(summaries))
	b.WorkHours /= n
	b.LifeHours /= n

	if b.LifeHours > 0 {
		b.Ratio = math.Round(b.WorkHours/b.LifeHours*100) / 100
	}
	hi, lo := math.Max(b.WorkHours, b.LifeHours), math.Min(b.WorkHours, b.LifeHours)
	if hi == 0 {
		b.Assessment = models.BalanceUntracked
		return b
	}
	b.Score = math.Round(lo / hi * 100)

	switch {
	case b.Score >= BalancedScore:
		b.Assessment = models.BalanceBalanced
	case b.WorkHours > b.LifeHours:
		b.Assessment = models.BalanceWorkHeavy
	default:
		b.Assessment = models.BalanceLifeHeavy
	}
	return b
}
