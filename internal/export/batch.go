package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"expenses/internal/core"
)

// PerCategory exports one spreadsheet per category present in records,
// writing the files concurrently. Returns the references in the order
// categories first appear in the record sequence.
func PerCategory(ctx context.Context, exporter Exporter, records []core.Expense) ([]string, error) {
	if len(records) == 0 {
		return nil, ErrNoExpenses
	}

	seen := make(map[core.Category]struct{})
	var categories []core.Category
	for _, e := range records {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}

	refs := make([]string, len(categories))
	g, ctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			ref, err := exporter.ExportByCategory(ctx, records, category)
			if err != nil {
				return fmt.Errorf("export category %s: %w", category, err)
			}
			refs[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}
