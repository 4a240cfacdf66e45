// Package export defines the spreadsheet export port and the filter
// semantics shared by its backends. Exports are one-way: files and
// remote ranges produced here are never read back.
package export

import (
	"context"
	"errors"

	"expenses/internal/core"
)

var (
	// ErrNoExpenses is returned when there is nothing to export at all.
	ErrNoExpenses = errors.New("no expenses to export")
	// ErrNoMatch is returned when a category or date filter matched
	// zero records. A zero-row spreadsheet is never produced.
	ErrNoMatch = errors.New("no expenses match the requested filter")
)

// Header lists the exported columns in order.
var Header = []string{"Date", "Amount", "Category", "Description"}

// Exporter renders expense records into a spreadsheet and returns a
// reference to what was written (a file path or a remote range).
type Exporter interface {
	// ExportAll writes every record, one row each.
	ExportAll(ctx context.Context, records []core.Expense) (string, error)
	// ExportByCategory writes the records of one category plus a
	// summary total row. Fails with ErrNoMatch when none match.
	ExportByCategory(ctx context.Context, records []core.Expense, category core.Category) (string, error)
	// ExportByDate writes the records of one calendar date plus a
	// summary total row. Fails with ErrNoMatch when none match.
	ExportByDate(ctx context.Context, records []core.Expense, date core.Date) (string, error)
}

// FilterByCategory returns the subset of records in the given category,
// in original order.
func FilterByCategory(records []core.Expense, category core.Category) []core.Expense {
	var out []core.Expense
	for _, e := range records {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDate returns the subset of records on the given calendar
// date, in original order.
func FilterByDate(records []core.Expense, date core.Date) []core.Expense {
	var out []core.Expense
	for _, e := range records {
		if e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out
}

// Sum totals the amounts of the given records.
func Sum(records []core.Expense) core.Money {
	var total core.Money
	for _, e := range records {
		total = total.Add(e.Amount)
	}
	return total
}
