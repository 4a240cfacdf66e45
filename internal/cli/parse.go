package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"expenses/internal/core"
)

// Accepted date layouts. The ISO form is canonical; the day-first form
// matches what the original console accepted.
var dateLayouts = []string{"2006-01-02", "02-01-2006"}

// ParseDate resolves user input to a calendar date.
func ParseDate(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, core.ErrMissingDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return core.DateOf(t), nil
		}
	}
	return core.Date{}, fmt.Errorf("unrecognized date format %q", s)
}

// ParseAmount resolves user input to a positive money amount.
func ParseAmount(s string) (core.Money, error) {
	cents, err := core.ParseDecimalToCents(s)
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Cents: cents}, nil
}

// ResolveCategory accepts either a category label or a 1-based index
// into the printed category list.
func ResolveCategory(s string) (core.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", core.ErrMissingCategory
	}
	if idx, err := strconv.Atoi(s); err == nil {
		all := core.Categories()
		if idx < 1 || idx > len(all) {
			return "", core.ErrUnknownCategory
		}
		return all[idx-1], nil
	}
	return core.ParseCategory(s)
}
