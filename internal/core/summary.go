package core

// CategoryAmount represents an amount aggregated under one category.
// Presentation layers use it to render sorted breakdowns; the ledger
// itself reports totals as an unordered map.
type CategoryAmount struct {
	Category Category
	Amount   Money
}
