package bench

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tupyy/bogorace/internal/models"
	"github.com/tupyy/bogorace/internal/util"
)

const sheet = "Sheet1"

// Report holds the statistics of a benchmark sweep.
type Report struct {
	Stats       []models.Stats
	Interrupted bool
}

// Markdown renders the report as a markdown table.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("| n | average | min | max |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, s := range r.Stats {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			s.Length,
			util.FormatMicrosWithStdDev(s.Average, s.StdDev),
			util.FormatMicros(s.Min),
			util.FormatMicros(s.Max),
		)
	}
	return b.String()
}

var xlsxHeader = []string{"n", "samples", "average_us", "std_dev_us", "min_us", "max_us", "median_us"}

// WriteXLSX writes the raw statistics, in microseconds, to an Excel workbook.
func (r *Report) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, h := range xlsxHeader {
		if err := setCell(f, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, s := range r.Stats {
		row := i + 2
		values := []any{s.Length, s.Count, util.Round(s.Average), util.Round(s.StdDev), util.Round(s.Min), util.Round(s.Max), util.Round(s.Median)}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
