package event

import (
	"encoding/json"
	"time"

	"expenses/internal/core"
)

// ExpenseAddedMessage is the wire form of an append notification.
// Amounts travel as cents to avoid floating-point drift on the consumer
// side; the date uses the ISO calendar-date form.
type ExpenseAddedMessage struct {
	Date        string    `json:"date"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseAddedMessage builds a message from a committed record.
func NewExpenseAddedMessage(e core.Expense) *ExpenseAddedMessage {
	return &ExpenseAddedMessage{
		Date:        e.Date.String(),
		AmountCents: e.Amount.Cents,
		Category:    e.Category.String(),
		Description: e.Description,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseAddedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseAddedMessageFromJSON creates a message from JSON bytes
func ExpenseAddedMessageFromJSON(data []byte) (*ExpenseAddedMessage, error) {
	var msg ExpenseAddedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
