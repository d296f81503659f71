package weeks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/weekgrid/internal/cli"
	"github.com/julianstephens/weekgrid/internal/validation"
)

type ValidateCmd struct {
	Files  []string `arg:"" optional:"" type:"existingfile" help:"CSV files to check."`
	Stored bool     `help:"Check every stored week instead of files."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	if len(c.Files) == 0 && !c.Stored {
		return errors.New("nothing to validate: pass files or --stored")
	}

	eng, settings, err := ctx.Engine()
	if err != nil {
		return err
	}
	validator := validation.New(settings.Analytics.SlotMinutes)

	failed := 0
	report := func(name string, vr validation.ValidationResult) {
		if !vr.HasConflicts() {
			ctx.Printf("✓ %s: OK\n", name)
			return
		}
		failed++
		ctx.Printf("❌ %s: %d conflict(s)\n", name, len(vr.Conflicts))
		for _, conflict := range vr.Conflicts {
			ctx.Printf("   - %s\n", conflict.Description)
		}
	}

	for _, file := range c.Files {
		name := filepath.Base(file)
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		res, err := eng.DecodeWeekCSV(string(data))
		if err != nil {
			failed++
			ctx.Printf("❌ %s: %v\n", name, err)
			continue
		}
		key := res.Week
		if key == nil {
			if k, ok := WeekFromFileName(file); ok {
				key = &k
			}
		}
		if key == nil {
			report(name, validator.ValidateGrid(res.Grid))
		} else {
			report(fmt.Sprintf("%s (%s)", name, key), validator.ValidateImport(res, *key))
		}
		if res.Summary.SkippedRows > 0 {
			ctx.Printf("   %s\n", cli.Warning(fmt.Sprintf("%d row(s) would be skipped", res.Summary.SkippedRows)))
		}
	}

	if c.Stored {
		records, err := ctx.Store.ListWeeks(false)
		if err != nil {
			return fmt.Errorf("failed to list weeks: %w", err)
		}
		for _, rec := range records {
			w, err := cli.DecodeRecord(eng, rec)
			if err != nil {
				failed++
				ctx.Printf("❌ %s: %v\n", rec.Week, err)
				continue
			}
			report(rec.Week.String(), validator.ValidateGrid(w.Grid))
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d item(s)", failed)
	}
	return nil
}
