package core

import (
	"errors"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2024, 1, 1), true},
		{NewDate(2024, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateEqual(t *testing.T) {
	a := NewDate(2024, 1, 1)
	b := NewDate(2024, 1, 1)
	c := NewDate(2024, 1, 2)
	if !a.Equal(b) {
		t.Fatalf("expected %s == %s", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %s != %s", a, c)
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := (Money{Cents: -100}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestNewExpense(t *testing.T) {
	e, err := NewExpense(Money{Cents: 10000}, Products, NewDate(2024, 1, 1), "milk")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Description != "milk" {
		t.Fatalf("unexpected description %q", e.Description)
	}

	cases := []struct {
		name string
		e    Expense
		want error
	}{
		{
			name: "zero amount",
			e:    Expense{Amount: Money{}, Category: Products, Date: NewDate(2024, 1, 1)},
			want: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			e:    Expense{Amount: Money{Cents: -1}, Category: Products, Date: NewDate(2024, 1, 1)},
			want: ErrInvalidAmount,
		},
		{
			name: "missing category",
			e:    Expense{Amount: Money{Cents: 1}, Date: NewDate(2024, 1, 1)},
			want: ErrMissingCategory,
		},
		{
			name: "unknown category",
			e:    Expense{Amount: Money{Cents: 1}, Category: "Groceries", Date: NewDate(2024, 1, 1)},
			want: ErrUnknownCategory,
		},
		{
			name: "missing date",
			e:    Expense{Amount: Money{Cents: 1}, Category: Products},
			want: ErrMissingDate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.e.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestExpenseStringEmptyDescription(t *testing.T) {
	e := Expense{Amount: Money{Cents: 12345}, Category: Taxi, Date: NewDate(2024, 3, 5)}
	got := e.String()
	want := "Expense: 123.45, Category: Taxi, Date: 2024-03-05, Description: No description"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
