package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/fairyhunter13/inventory-dashboard/internal/model"
)

// Categories returns "All" followed by each distinct defaulted category in
// first-occurrence order.
func Categories(products []model.Product) []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		c := p.CategoryOrDefault()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Matches reports whether p passes the search and category filters of s.
func (s State) Matches(p model.Product) bool {
	if s.Search != "" {
		byName := strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.Search))
		if !byName && !strings.Contains(string(p.ID), s.Search) {
			return false
		}
	}
	if !s.allCategories() && p.CategoryOrDefault() != s.Category {
		return false
	}
	return true
}

// Apply returns the display sequence: products filtered by s and, when a
// sort key is set, stably sorted. The input slice is left untouched.
func Apply(products []model.Product, s State) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if s.Matches(p) {
			out = append(out, p)
		}
	}
	if s.SortKey == SortNone {
		return out
	}
	less := comparator(s.SortKey)
	if s.Direction == Descending {
		slices.SortStableFunc(out, func(a, b model.Product) int { return less(b, a) })
	} else {
		slices.SortStableFunc(out, less)
	}
	return out
}

func comparator(k SortKey) func(a, b model.Product) int {
	switch k {
	case SortByID:
		return func(a, b model.Product) int { return cmp.Compare(a.ID, b.ID) }
	case SortByName:
		return func(a, b model.Product) int { return cmp.Compare(a.Name, b.Name) }
	case SortCategory:
		return func(a, b model.Product) int { return cmp.Compare(a.CategoryOrDefault(), b.CategoryOrDefault()) }
	case SortByPrice:
		return func(a, b model.Product) int { return a.Price.Cmp(b.Price) }
	case SortByStock:
		return func(a, b model.Product) int { return cmp.Compare(a.StockCount, b.StockCount) }
	}
	return func(model.Product, model.Product) int { return 0 }
}
