package csvcodec

import (
	"strings"

	"github.com/julianstephens/weekgrid/internal/models"
)

// ParseCell decodes one raw cell under the given dialect. The returned block
// carries no time or day index; Decode stamps those from the cell's position.
//
// In the canonical grammar the second colon segment is always the activity;
// notes need the third. The US export had no activity slots, so there a
// two-part cell is category plus notes.
func ParseCell(d Dialect, raw string) models.TimeBlock {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.TimeBlock{}
	}
	switch d {
	case DialectSpreadsheet:
		return parseSpreadsheetCell(s)
	case DialectUSExport:
		return parseUSExportCell(s)
	default:
		return parseCanonicalCell(s)
	}
}

func parseCanonicalCell(s string) models.TimeBlock {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) == 1 {
		if c, ok := models.ParseCategory(parts[0]); ok {
			return models.TimeBlock{Category: c}
		}
		return models.TimeBlock{Notes: s}
	}

	var b models.TimeBlock
	if head := strings.TrimSpace(parts[0]); head != "" {
		c, ok := models.ParseCategory(head)
		if !ok {
			return models.TimeBlock{Notes: s}
		}
		b.Category = c
	}
	if name := strings.TrimSpace(parts[1]); name != "" {
		b.Activity = &models.ActivityRef{Name: name}
	}
	if len(parts) == 3 {
		b.Notes = strings.TrimSpace(parts[2])
	}
	return b
}

func parseUSExportCell(s string) models.TimeBlock {
	parts := strings.SplitN(s, ":", 3)

	var b models.TimeBlock
	if head := strings.TrimSpace(parts[0]); head != "" {
		c, ok := models.ParseCategoryFold(head)
		if !ok {
			return models.TimeBlock{Notes: s}
		}
		b.Category = c
	}
	switch len(parts) {
	case 2:
		b.Notes = strings.TrimSpace(parts[1])
	case 3:
		if name := strings.TrimSpace(parts[1]); name != "" {
			b.Activity = &models.ActivityRef{Name: name}
		}
		b.Notes = strings.TrimSpace(parts[2])
	}
	return b
}

func parseSpreadsheetCell(s string) models.TimeBlock {
	if strings.EqualFold(s, "nan") {
		return models.TimeBlock{}
	}
	c, ok := models.ParseCategoryFold(s[:1])
	if !ok {
		return models.TimeBlock{Notes: s}
	}
	if len(s) == 1 {
		return models.TimeBlock{Category: c}
	}
	switch s[1] {
	case ':', '-', ' ', '\t':
		return models.TimeBlock{
			Category: c,
			Notes:    strings.TrimSpace(strings.TrimLeft(s[1:], ":- \t")),
		}
	}
	return models.TimeBlock{Notes: s}
}

// lineBreaks folds line breaks into spaces so every row stays on one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FormatCell renders a block in the canonical grammar. Trailing empty segments
// are dropped; colons inside activity names become dashes and line breaks
// become spaces.
func FormatCell(b models.TimeBlock) string {
	var cat string
	if b.Category.IsValid() {
		cat = string(b.Category)
	}
	name := lineBreaks.Replace(strings.ReplaceAll(b.ActivityName(), ":", "-"))
	notes := lineBreaks.Replace(b.Notes)

	switch {
	case name == "" && notes == "":
		return cat
	case notes == "":
		return cat + ":" + name
	default:
		return cat + ":" + name + ":" + notes
	}
}
