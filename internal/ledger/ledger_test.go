package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"expenses/internal/core"
)

func mustExpense(t *testing.T, cents int64, cat core.Category, date core.Date, desc string) core.Expense {
	t.Helper()
	e, err := core.NewExpense(core.Money{Cents: cents}, cat, date, desc)
	if err != nil {
		t.Fatalf("build expense: %v", err)
	}
	return e
}

func TestAppendIncrementsCountAndTotal(t *testing.T) {
	l := New()
	ctx := context.Background()

	before := l.Total()
	e := mustExpense(t, 10000, core.Products, core.NewDate(2024, 1, 1), "milk")
	if err := l.Append(ctx, e); err != nil {
		t.Fatalf("append: %v", err)
	}
	if l.Count() != 1 {
		t.Fatalf("expected count 1, got %d", l.Count())
	}
	if got := l.Total(); got.Cents != before.Cents+10000 {
		t.Fatalf("expected total %d, got %d", before.Cents+10000, got.Cents)
	}
}

func TestAppendRejectsInvalidRecord(t *testing.T) {
	l := New()
	ctx := context.Background()

	cases := []struct {
		name string
		e    core.Expense
		want error
	}{
		{
			name: "non-positive amount",
			e:    core.Expense{Amount: core.Money{Cents: 0}, Category: core.Taxi, Date: core.NewDate(2024, 1, 1)},
			want: core.ErrInvalidAmount,
		},
		{
			name: "missing category",
			e:    core.Expense{Amount: core.Money{Cents: 100}, Date: core.NewDate(2024, 1, 1)},
			want: core.ErrMissingCategory,
		},
		{
			name: "missing date",
			e:    core.Expense{Amount: core.Money{Cents: 100}, Category: core.Taxi},
			want: core.ErrMissingDate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := l.Append(ctx, tc.e); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if l.Count() != 0 {
				t.Fatalf("count changed after rejected append: %d", l.Count())
			}
		})
	}
}

func TestAggregationScenario(t *testing.T) {
	l := New()
	ctx := context.Background()

	records := []core.Expense{
		mustExpense(t, 10000, core.Products, core.NewDate(2024, 1, 1), "milk"),
		mustExpense(t, 5000, core.Taxi, core.NewDate(2024, 1, 1), ""),
		mustExpense(t, 3000, core.Products, core.NewDate(2024, 1, 2), "bread"),
	}
	for _, e := range records {
		if err := l.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if got := l.Total(); got.Cents != 18000 {
		t.Fatalf("expected total 18000, got %d", got.Cents)
	}

	totals := l.CategoryTotals()
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[core.Products].Cents != 13000 {
		t.Fatalf("expected Products 13000, got %d", totals[core.Products].Cents)
	}
	if totals[core.Taxi].Cents != 5000 {
		t.Fatalf("expected Taxi 5000, got %d", totals[core.Taxi].Cents)
	}

	day1, err := l.TotalForDate(core.NewDate(2024, 1, 1))
	if err != nil {
		t.Fatalf("total for date: %v", err)
	}
	if day1.Cents != 15000 {
		t.Fatalf("expected 15000 for 2024-01-01, got %d", day1.Cents)
	}

	day2Records, err := l.RecordsForDate(core.NewDate(2024, 1, 2))
	if err != nil {
		t.Fatalf("records for date: %v", err)
	}
	if len(day2Records) != 1 {
		t.Fatalf("expected 1 record for 2024-01-02, got %d", len(day2Records))
	}
	if day2Records[0].Description != "bread" {
		t.Fatalf("unexpected record %v", day2Records[0])
	}
}

func TestCategoryTotalsSumToTotal(t *testing.T) {
	l := New()
	ctx := context.Background()

	seeds := []core.Expense{
		mustExpense(t, 199, core.Products, core.NewDate(2024, 2, 1), ""),
		mustExpense(t, 4200, core.Car, core.NewDate(2024, 2, 2), "fuel"),
		mustExpense(t, 999, core.Entertainment, core.NewDate(2024, 2, 2), "cinema"),
		mustExpense(t, 1, core.Other, core.NewDate(2024, 2, 3), ""),
	}
	for _, e := range seeds {
		if err := l.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	var sum int64
	for _, amount := range l.CategoryTotals() {
		sum += amount.Cents
	}
	if total := l.Total(); sum != total.Cents {
		t.Fatalf("category totals sum %d != total %d", sum, total.Cents)
	}
}

func TestRecordsForDateMatchesAllSubset(t *testing.T) {
	l := New()
	ctx := context.Background()
	target := core.NewDate(2024, 3, 10)

	seeds := []core.Expense{
		mustExpense(t, 100, core.Products, target, "a"),
		mustExpense(t, 200, core.Taxi, core.NewDate(2024, 3, 11), "b"),
		mustExpense(t, 300, core.Cafe, target, "c"),
	}
	for _, e := range seeds {
		if err := l.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	matched, err := l.RecordsForDate(target)
	if err != nil {
		t.Fatalf("records for date: %v", err)
	}

	var want []core.Expense
	for _, e := range l.All() {
		if e.Date.Equal(target) {
			want = append(want, e)
		}
	}
	if len(matched) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(matched))
	}
	var sum int64
	for i := range matched {
		if matched[i] != want[i] {
			t.Fatalf("record %d out of order: got %v, want %v", i, matched[i], want[i])
		}
		sum += matched[i].Amount.Cents
	}
	totalForDate, err := l.TotalForDate(target)
	if err != nil {
		t.Fatalf("total for date: %v", err)
	}
	if totalForDate.Cents != sum {
		t.Fatalf("TotalForDate %d != subset sum %d", totalForDate.Cents, sum)
	}
}

func TestDateQueriesRequireDate(t *testing.T) {
	l := New()
	if _, err := l.TotalForDate(core.Date{}); !errors.Is(err, core.ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
	if _, err := l.RecordsForDate(core.Date{}); !errors.Is(err, core.ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestAllReturnsDefensiveSnapshot(t *testing.T) {
	l := New()
	ctx := context.Background()
	if err := l.Append(ctx, mustExpense(t, 500, core.Utilities, core.NewDate(2024, 4, 1), "water")); err != nil {
		t.Fatalf("append: %v", err)
	}

	snapshot := l.All()
	snapshot[0] = core.Expense{}
	_ = append(snapshot, core.Expense{})

	if l.Count() != 1 {
		t.Fatalf("snapshot mutation changed count: %d", l.Count())
	}
	if got := l.Total(); got.Cents != 500 {
		t.Fatalf("snapshot mutation changed total: %d", got.Cents)
	}
	if fresh := l.All(); fresh[0].Description != "water" {
		t.Fatalf("snapshot mutation leaked into ledger: %v", fresh[0])
	}
}

func TestEmptyLedger(t *testing.T) {
	l := New()
	if l.Count() != 0 {
		t.Fatalf("expected count 0, got %d", l.Count())
	}
	if got := l.Total(); got.Cents != 0 {
		t.Fatalf("expected total 0, got %d", got.Cents)
	}
	if totals := l.CategoryTotals(); len(totals) != 0 {
		t.Fatalf("expected empty category totals, got %v", totals)
	}
	if all := l.All(); len(all) != 0 {
		t.Fatalf("expected no records, got %d", len(all))
	}
}

type recordingPublisher struct {
	mu   sync.Mutex
	seen int
	fail bool
}

func (p *recordingPublisher) ExpenseAdded(_ context.Context, _ core.Expense) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen++
	if p.fail {
		return errors.New("broker unavailable")
	}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestAppendNotifiesPublisher(t *testing.T) {
	pub := &recordingPublisher{}
	l := New(WithPublisher(pub))
	ctx := context.Background()

	if err := l.Append(ctx, mustExpense(t, 100, core.Charity, core.NewDate(2024, 5, 1), "")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if pub.seen != 1 {
		t.Fatalf("expected 1 notification, got %d", pub.seen)
	}
}

func TestPublisherFailureDoesNotFailAppend(t *testing.T) {
	pub := &recordingPublisher{fail: true}
	l := New(WithPublisher(pub))
	ctx := context.Background()

	if err := l.Append(ctx, mustExpense(t, 100, core.Charity, core.NewDate(2024, 5, 1), "")); err != nil {
		t.Fatalf("append should survive publisher failure, got %v", err)
	}
	if l.Count() != 1 {
		t.Fatalf("expected record committed, count %d", l.Count())
	}
}
