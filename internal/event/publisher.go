// Package event notifies external collaborators about ledger activity.
// Publishing is best-effort: by the time a publisher runs, the record
// is already committed, so failures are reported to the caller for
// logging but never roll anything back.
package event

import (
	"context"

	"expenses/internal/core"
)

// Publisher receives a notification after each successful append.
type Publisher interface {
	ExpenseAdded(ctx context.Context, e core.Expense) error
	Close() error
}

// NopPublisher discards all notifications. It is the default when no
// message broker is configured.
type NopPublisher struct{}

func (NopPublisher) ExpenseAdded(context.Context, core.Expense) error { return nil }

func (NopPublisher) Close() error { return nil }
