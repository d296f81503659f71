package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/engine"
	"github.com/julianstephens/weekgrid/internal/models"
)

// WeekArg parses a week given on the command line. An empty argument or
// "current" is the week containing today; "last" is the week before it.
func (c *Context) WeekArg(arg string, settings models.Settings) (calendar.WeekKey, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "current", "this":
		today, err := c.Today(settings)
		if err != nil {
			return calendar.WeekKey{}, err
		}
		return calendar.ToWeekKey(today), nil
	case "last", "prev", "previous":
		today, err := c.Today(settings)
		if err != nil {
			return calendar.WeekKey{}, err
		}
		return calendar.ToWeekKey(today).Prev(), nil
	}
	return calendar.ParseWeekKey(arg)
}

// DecodeRecord turns a stored record back into a grid.
func DecodeRecord(eng engine.Engine, rec models.WeekRecord) (engine.Week, error) {
	res, err := eng.DecodeWeekCSV(rec.CSV)
	if err != nil {
		return engine.Week{}, fmt.Errorf("stored week %s is unreadable: %w", rec.Week, err)
	}
	return engine.Week{Key: rec.Week, Grid: res.Grid}, nil
}

// LoadWeeks decodes every live week in [from, to], oldest first.
func (c *Context) LoadWeeks(eng engine.Engine, from, to calendar.WeekKey) ([]engine.Week, error) {
	records, err := c.Store.GetWeeks(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get weeks: %w", err)
	}
	weeks := make([]engine.Week, 0, len(records))
	for _, rec := range records {
		w, err := DecodeRecord(eng, rec)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}
