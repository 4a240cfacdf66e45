package core

import (
	"errors"
	"fmt"
	"time"
)

type (
	// Date is a calendar date with no time-of-day component.
	Date struct {
		time.Time
	}

	// Money is an amount of currency in cents. Arithmetic stays in
	// cents; floats appear only at display and export boundaries.
	Money struct {
		Cents int64
	}

	// Expense is one immutable expense record. Fields are set at
	// construction and never changed afterwards.
	Expense struct {
		Date        Date
		Amount      Money
		Category    Category
		Description string
	}
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingCategory = errors.New("category is required")
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingDate     = errors.New("date is required")
)

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrMissingDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// NewExpense constructs a validated expense record.
func NewExpense(amount Money, category Category, date Date, description string) (Expense, error) {
	e := Expense{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Validate checks the record invariants: positive amount, recognized
// category, non-zero date. Description is free text and may be empty.
func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if err := e.Category.Validate(); err != nil {
		return err
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	return nil
}

func (e Expense) String() string {
	desc := e.Description
	if desc == "" {
		desc = "No description"
	}
	return fmt.Sprintf("Expense: %.2f, Category: %s, Date: %s, Description: %s",
		e.Amount.Units(), e.Category, e.Date, desc)
}
