package core

import "strings"

// Category is one label from the fixed set used to classify expenses.
// The set is closed: aggregation by category relies on no new labels
// appearing at runtime.
type Category string

const (
	Products        Category = "Products"
	Cafe            Category = "Cafe and Restaurants"
	Taxi            Category = "Taxi"
	PublicTransport Category = "Public Transport"
	Internet        Category = "Internet and Mobile Communications"
	Clothes         Category = "Clothes and Shoes"
	Electronics     Category = "Electronics"
	Beauty          Category = "Beauty and Health"
	Sport           Category = "Sport and Fitness"
	Utilities       Category = "Utilities"
	Education       Category = "Education"
	Car             Category = "Car"
	Entertainment   Category = "Entertainment"
	Charity         Category = "Charity"
	Other           Category = "Other"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{
		Products, Cafe, Taxi, PublicTransport, Internet,
		Clothes, Electronics, Beauty, Sport, Utilities,
		Education, Car, Entertainment, Charity, Other,
	}
}

var categoryIndex = func() map[string]Category {
	m := make(map[string]Category)
	for _, c := range Categories() {
		m[strings.ToLower(string(c))] = c
	}
	return m
}()

// ParseCategory resolves user input to a known category, ignoring case
// and surrounding whitespace. Returns ErrUnknownCategory for labels
// outside the fixed set and ErrMissingCategory for empty input.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingCategory
	}
	c, ok := categoryIndex[strings.ToLower(s)]
	if !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

// Validate reports whether the category is one of the known labels.
func (c Category) Validate() error {
	if c == "" {
		return ErrMissingCategory
	}
	if _, ok := categoryIndex[strings.ToLower(string(c))]; !ok {
		return ErrUnknownCategory
	}
	return nil
}
