// Package ledger owns the in-memory, append-only collection of expense
// records and answers aggregate and filtered queries over it. Records
// live for the lifetime of the process; nothing is ever mutated or
// removed after a successful append.
package ledger

import (
	"context"
	"sync"

	"expenses/internal/core"
	"expenses/internal/event"
	"expenses/internal/log"
)

// Ledger is the single source of truth for recorded expenses.
//
// The execution model is single-writer and synchronous; the mutex only
// guards against a presentation layer reading while an append is in
// flight, mirroring the consistent-snapshot note for future extension.
type Ledger struct {
	mu        sync.RWMutex
	records   []core.Expense
	logger    *log.Logger
	publisher event.Publisher
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger injects the structured logger used for operation logging.
func WithLogger(logger *log.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithPublisher injects the collaborator notified after each append.
func WithPublisher(p event.Publisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

// New creates an empty ledger. Without options it logs through the
// default configuration and publishes nowhere.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		logger:    log.New(log.DefaultConfig()).WithComponent(log.ComponentLedger),
		publisher: event.NopPublisher{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append validates and stores a record at the end of the sequence.
//
// Validation runs here even when the caller already validated: the
// ledger does not trust presentation layers. On any validation failure
// the error is returned and the ledger state is unchanged. Publisher
// failures are logged and swallowed; the record is already committed.
func (l *Ledger) Append(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	l.records = append(l.records, e)
	count := len(l.records)
	l.mu.Unlock()

	l.logger.Info("Expense recorded",
		log.FieldOperation, log.OpAppend,
		log.FieldDate, e.Date.String(),
		log.FieldCategory, e.Category.String(),
		log.FieldAmountCents, e.Amount.Cents,
		log.FieldCount, count)

	if err := l.publisher.ExpenseAdded(ctx, e); err != nil {
		l.logger.Error("Failed to publish append notification",
			log.FieldError, err,
			log.FieldCategory, e.Category.String())
	}

	return nil
}

// Total returns the sum of all recorded amounts, zero when empty.
func (l *Ledger) Total() core.Money {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total core.Money
	for _, e := range l.records {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalForDate returns the sum of amounts recorded on the given
// calendar date. Exact match only, no range semantics.
func (l *Ledger) TotalForDate(date core.Date) (core.Money, error) {
	if err := date.Validate(); err != nil {
		return core.Money{}, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var total core.Money
	for _, e := range l.records {
		if e.Date.Equal(date) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// CategoryTotals returns the sum of amounts per category. Categories
// with no recorded expenses are absent from the result; ordering is up
// to the presentation layer.
func (l *Ledger) CategoryTotals() map[core.Category]core.Money {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totals := make(map[core.Category]core.Money)
	for _, e := range l.records {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// RecordsForDate returns the records for the given calendar date in
// insertion order. The result is a copy; an empty slice means no match.
func (l *Ledger) RecordsForDate(date core.Date) ([]core.Expense, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	matched := make([]core.Expense, 0)
	for _, e := range l.records {
		if e.Date.Equal(date) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// All returns a snapshot of every record in insertion order. Mutating
// the returned slice never affects the ledger's internal state.
func (l *Ledger) All() []core.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]core.Expense(nil), l.records...)
}

// Count returns the number of stored records.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}
