package cli

import (
	"errors"
	"testing"

	"expenses/internal/core"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want core.Date
		ok   bool
	}{
		{"2024-01-02", core.NewDate(2024, 1, 2), true},
		{"02-01-2024", core.NewDate(2024, 1, 2), true},
		{" 2024-12-31 ", core.NewDate(2024, 12, 31), true},
		{"", core.Date{}, false},
		{"not-a-date", core.Date{}, false},
		{"2024/01/02", core.Date{}, false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("%q expected %s, got %s", tc.in, tc.want, got)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("12,50")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got.Cents != 1250 {
		t.Fatalf("expected 1250 cents, got %d", got.Cents)
	}
	if _, err := ParseAmount("-3"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestResolveCategory(t *testing.T) {
	cases := []struct {
		in   string
		out  core.Category
		want error
	}{
		{"Taxi", core.Taxi, nil},
		{"1", core.Products, nil},
		{"15", core.Other, nil},
		{"0", "", core.ErrUnknownCategory},
		{"16", "", core.ErrUnknownCategory},
		{"Groceries", "", core.ErrUnknownCategory},
		{"", "", core.ErrMissingCategory},
	}
	for _, tc := range cases {
		got, err := ResolveCategory(tc.in)
		if tc.want != nil {
			if !errors.Is(err, tc.want) {
				t.Fatalf("%q expected %v, got %v", tc.in, tc.want, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q expected ok, got %v", tc.in, err)
		}
		if got != tc.out {
			t.Fatalf("%q expected %q, got %q", tc.in, tc.out, got)
		}
	}
}
