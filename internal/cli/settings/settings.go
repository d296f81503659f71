package settings

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/profile"
)

type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	if ctx.JSON {
		return ctx.PrintJSON(settings)
	}

	a := settings.Analytics
	ctx.Println("Current Settings:")
	ctx.Printf("  Timezone:              %s\n", settings.Timezone)
	ctx.Printf("  Slot Minutes:          %d\n", a.SlotMinutes)
	ctx.Printf("  Top Activities:        %d\n", a.TopN)
	ctx.Println("\nStreak Settings:")
	ctx.Printf("  Weekday Hours:         %g\n", a.WeekdayHours)
	ctx.Printf("  Weekend Hours:         %g\n", a.WeekendHours)
	ctx.Printf("  Include Mandatory:     %v\n", a.IncludeMandatory)
	ctx.Printf("  Skip Budget:           %d day(s)\n", a.SkipBudget)
	ctx.Println("\nRhythm Settings:")
	ctx.Printf("  Hours:                 %02d:00-%02d:00\n", a.RhythmStartHour, a.RhythmEndHour)
	ctx.Printf("  Bucket Minutes:        %d\n", a.RhythmBucketMinutes)
	ctx.Println("\nGoal and Trend Settings:")
	ctx.Printf("  Productive Categories: %s\n", models.FormatCategorySet(a.ProductiveCategories))
	ctx.Printf("  Trend Window:          %d week(s)\n", a.TrendWindowWeeks)
	ctx.Printf("  Trend Dead Band:       %g%%\n", a.TrendDeadBandPct)
	ctx.Printf("  Work Goal:             %gh\n", a.WorkGoalHours)
	ctx.Printf("  Work Window:           %s-%s\n", a.WorkWindowStart, a.WorkWindowEnd)
	ctx.Printf("  Procrastination:       %s\n", models.FormatCategorySet(a.ProcrastinationCategories))
	if ctx.Profile != "" {
		ctx.Printf("\n%s\n", cli.Label("profile "+ctx.Profile+" is layered over the stored settings"))
	}
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key, e.g. work_goal_hours. Run 'weekgrid settings keys' for the full list."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	m := models.SettingsToMap(settings)
	if _, ok := m[c.Key]; !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", c.Key, strings.Join(Keys(), ", "))
	}
	if c.Key == constants.SettingProductiveCategories || c.Key == constants.SettingProcrastinationCategories {
		for _, r := range c.Value {
			if !models.Category(strings.ToUpper(string(r))).IsValid() {
				return fmt.Errorf("unknown category %q in %s", string(r), c.Key)
			}
		}
	}
	if c.Key == constants.SettingIncludeMandatory && c.Value != "true" && c.Value != "false" {
		return fmt.Errorf("%s must be true or false", c.Key)
	}
	m[c.Key] = c.Value

	updated, err := models.MapToSettings(m)
	if err != nil {
		return err
	}
	if err := profile.Validate(updated); err != nil {
		return err
	}
	models.ApplyDefaultSettings(&updated)

	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logger.Info("Setting updated", "key", c.Key, "value", c.Value)
	ctx.Printf("✓ %s = %s\n", c.Key, models.SettingsToMap(updated)[c.Key])
	return nil
}

type SettingsKeysCmd struct{}

func (c *SettingsKeysCmd) Run(ctx *cli.Context) error {
	for _, k := range Keys() {
		ctx.Println(k)
	}
	return nil
}

// Keys lists every settings key in sorted order.
func Keys() []string {
	m := models.SettingsToMap(models.DefaultSettings())
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type SettingsExportCmd struct {
	Output string `arg:"" optional:"" help:"YAML file to write. Defaults to stdout."`
}

func (c *SettingsExportCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if c.Output == "" || c.Output == "-" {
		data, err := profile.Encode(settings)
		if err != nil {
			return err
		}
		ctx.Printf("%s", data)
		return nil
	}
	if err := profile.Save(c.Output, settings); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Settings written to %s\n", c.Output)
	return nil
}

type SettingsImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file to load."`
}

func (c *SettingsImportCmd) Run(ctx *cli.Context) error {
	current, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	updated, err := profile.Load(c.File, current)
	if err != nil {
		return err
	}

	ok, err := ctx.Confirm("Replace stored settings?", "Values from "+c.File+" will overwrite the stored settings.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Import cancelled.")
		return nil
	}
	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logger.Info("Settings imported", "file", c.File)
	ctx.Println("✓ Settings imported.")
	return nil
}
