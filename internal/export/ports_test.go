package export

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"expenses/internal/core"
)

func record(cents int64, cat core.Category, date core.Date) core.Expense {
	return core.Expense{Amount: core.Money{Cents: cents}, Category: cat, Date: date}
}

func TestFilterByCategory(t *testing.T) {
	records := []core.Expense{
		record(100, core.Products, core.NewDate(2024, 1, 1)),
		record(200, core.Taxi, core.NewDate(2024, 1, 1)),
		record(300, core.Products, core.NewDate(2024, 1, 2)),
	}
	got := FilterByCategory(records, core.Products)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Amount.Cents != 100 || got[1].Amount.Cents != 300 {
		t.Fatalf("filter broke insertion order: %v", got)
	}
	if empty := FilterByCategory(records, core.Charity); len(empty) != 0 {
		t.Fatalf("expected no matches, got %d", len(empty))
	}
}

func TestFilterByDate(t *testing.T) {
	target := core.NewDate(2024, 1, 1)
	records := []core.Expense{
		record(100, core.Products, target),
		record(200, core.Taxi, core.NewDate(2024, 1, 2)),
	}
	got := FilterByDate(records, target)
	if len(got) != 1 || got[0].Amount.Cents != 100 {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestSum(t *testing.T) {
	records := []core.Expense{
		record(100, core.Products, core.NewDate(2024, 1, 1)),
		record(250, core.Taxi, core.NewDate(2024, 1, 1)),
	}
	if got := Sum(records); got.Cents != 350 {
		t.Fatalf("expected 350, got %d", got.Cents)
	}
	if got := Sum(nil); got.Cents != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got.Cents)
	}
}

type fakeExporter struct {
	failCategory core.Category
}

func (f *fakeExporter) ExportAll(_ context.Context, _ []core.Expense) (string, error) {
	return "all", nil
}

func (f *fakeExporter) ExportByCategory(_ context.Context, records []core.Expense, category core.Category) (string, error) {
	if category == f.failCategory {
		return "", errors.New("write failed")
	}
	return fmt.Sprintf("file:%s", category), nil
}

func (f *fakeExporter) ExportByDate(_ context.Context, _ []core.Expense, _ core.Date) (string, error) {
	return "date", nil
}

func TestPerCategory(t *testing.T) {
	records := []core.Expense{
		record(100, core.Products, core.NewDate(2024, 1, 1)),
		record(200, core.Taxi, core.NewDate(2024, 1, 1)),
		record(300, core.Products, core.NewDate(2024, 1, 2)),
	}

	refs, err := PerCategory(context.Background(), &fakeExporter{}, records)
	if err != nil {
		t.Fatalf("per-category export: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0] != "file:Products" || refs[1] != "file:Taxi" {
		t.Fatalf("unexpected refs %v", refs)
	}
}

func TestPerCategoryEmptyInput(t *testing.T) {
	if _, err := PerCategory(context.Background(), &fakeExporter{}, nil); !errors.Is(err, ErrNoExpenses) {
		t.Fatalf("expected ErrNoExpenses, got %v", err)
	}
}

func TestPerCategoryPropagatesFailure(t *testing.T) {
	records := []core.Expense{
		record(100, core.Products, core.NewDate(2024, 1, 1)),
		record(200, core.Taxi, core.NewDate(2024, 1, 1)),
	}
	_, err := PerCategory(context.Background(), &fakeExporter{failCategory: core.Taxi}, records)
	if err == nil {
		t.Fatalf("expected error from failing category export")
	}
}
