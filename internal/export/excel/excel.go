// Package excel writes expense exports as XLSX workbooks on the local
// file system.
package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"expenses/internal/core"
	"expenses/internal/export"
	"expenses/internal/log"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02_15-04-05"
	currencyFormat  = "#,##0.00"
)

// Exporter writes workbooks into a target directory, creating it on
// demand. File names carry a purpose tag and a timestamp so repeated
// exports never collide.
type Exporter struct {
	dir    string
	logger *log.Logger
	now    func() time.Time
}

var _ export.Exporter = (*Exporter)(nil)

func New(dir string, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Exporter{
		dir:    dir,
		logger: logger.WithComponent(log.ComponentExport),
		now:    time.Now,
	}
}

// ExportAll writes every record into a workbook, one row each.
func (x *Exporter) ExportAll(_ context.Context, records []core.Expense) (string, error) {
	if len(records) == 0 {
		return "", export.ErrNoExpenses
	}

	path, err := x.write("all_expenses", "All Expenses", records, "")
	if err != nil {
		return "", err
	}

	x.logger.Info("Exported all expenses",
		log.FieldOperation, log.OpExport,
		log.FieldCount, len(records),
		log.FieldPath, path)
	return path, nil
}

// ExportByCategory writes the records of one category plus a summary
// total row.
func (x *Exporter) ExportByCategory(_ context.Context, records []core.Expense, category core.Category) (string, error) {
	if err := category.Validate(); err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", export.ErrNoExpenses
	}

	matched := export.FilterByCategory(records, category)
	if len(matched) == 0 {
		return "", fmt.Errorf("category %s: %w", category, export.ErrNoMatch)
	}

	tag := "category_" + safeName(category.String())
	path, err := x.write(tag, sheetName(category.String()), matched, "Total for category:")
	if err != nil {
		return "", err
	}

	x.logger.Info("Exported expenses by category",
		log.FieldOperation, log.OpExport,
		log.FieldCategory, category.String(),
		log.FieldCount, len(matched),
		log.FieldPath, path)
	return path, nil
}

// ExportByDate writes the records of one calendar date plus a summary
// total row.
func (x *Exporter) ExportByDate(_ context.Context, records []core.Expense, date core.Date) (string, error) {
	if err := date.Validate(); err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", export.ErrNoExpenses
	}

	matched := export.FilterByDate(records, date)
	if len(matched) == 0 {
		return "", fmt.Errorf("date %s: %w", date, export.ErrNoMatch)
	}

	formatted := date.Format(dateFormat)
	path, err := x.write("date_"+formatted, sheetName("Date "+formatted), matched, "Total for date:")
	if err != nil {
		return "", err
	}

	x.logger.Info("Exported expenses by date",
		log.FieldOperation, log.OpExport,
		log.FieldDate, formatted,
		log.FieldCount, len(matched),
		log.FieldPath, path)
	return path, nil
}

// write renders one workbook. A non-empty summaryLabel appends a total
// row two rows below the data, as the original exporter did.
func (x *Exporter) write(tag, sheet string, records []core.Expense, summaryLabel string) (string, error) {
	if err := os.MkdirAll(x.dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, currencyStyle, cellStyle, err := styles(f)
	if err != nil {
		return "", err
	}

	for col, title := range export.Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return "", fmt.Errorf("style header: %w", err)
	}

	for i, e := range records {
		row := i + 2
		values := []any{e.Date.Format(dateFormat), e.Amount.Units(), e.Category.String(), e.Description}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", fmt.Errorf("write row %d: %w", row, err)
			}
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(values), row)
		if err := f.SetCellStyle(sheet, first, last, cellStyle); err != nil {
			return "", fmt.Errorf("style row %d: %w", row, err)
		}
		amountCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellStyle(sheet, amountCell, amountCell, currencyStyle); err != nil {
			return "", fmt.Errorf("style amount %d: %w", row, err)
		}
	}

	if summaryLabel != "" {
		row := len(records) + 3
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		amountCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, labelCell, summaryLabel); err != nil {
			return "", fmt.Errorf("write summary label: %w", err)
		}
		if err := f.SetCellValue(sheet, amountCell, export.Sum(records).Units()); err != nil {
			return "", fmt.Errorf("write summary total: %w", err)
		}
		if err := f.SetCellStyle(sheet, amountCell, amountCell, currencyStyle); err != nil {
			return "", fmt.Errorf("style summary total: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 14); err != nil {
		return "", fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 18); err != nil {
		return "", fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "D", "D", 36); err != nil {
		return "", fmt.Errorf("set column width: %w", err)
	}

	path := filepath.Join(x.dir, fmt.Sprintf("%s_%s.xlsx", tag, x.now().Format(timestampFormat)))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func styles(f *excelize.File) (header, currency, cell int, err error) {
	borders := []excelize.Border{
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    borders,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("header style: %w", err)
	}

	numFmt := currencyFormat
	currency, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Border:       borders,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("currency style: %w", err)
	}

	cell, err = f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("cell style: %w", err)
	}

	return header, currency, cell, nil
}

var unsafeChars = strings.NewReplacer(
	"\\", "_", "/", "_", ":", "_", "*", "_",
	"?", "_", "\"", "_", "<", "_", ">", "_",
	"|", "_", "[", "_", "]", "_",
)

func safeName(s string) string {
	return unsafeChars.Replace(s)
}

// sheetName sanitizes s for use as a worksheet name. Excel caps sheet
// names at 31 characters.
func sheetName(s string) string {
	s = safeName(s)
	if len(s) > 31 {
		s = s[:31]
	}
	return s
}
