// Package view derives everything the dashboard displays from a product list
// and an immutable view state. Nothing in this package mutates its input.
package view

import (
	"errors"
	"fmt"
	"strings"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "All"

var (
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrUnknownDirection = errors.New("unknown sort direction")
)

// SortKey names a sortable column. The zero value means unsorted.
type SortKey string

const (
	SortNone     SortKey = ""
	SortByID     SortKey = "product_id"
	SortByName   SortKey = "product_name"
	SortCategory SortKey = "category"
	SortByPrice  SortKey = "product_price"
	SortByStock  SortKey = "stock_count"
)

// SortKeys lists the sortable columns in table order.
var SortKeys = []SortKey{SortByID, SortByName, SortCategory, SortByPrice, SortByStock}

// ParseSortKey validates a column name, ignoring case like ParseDirection.
// The empty string parses as SortNone.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ParseDirection accepts ascending/descending and the asc/desc shorthands.
// The empty string parses as Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc", string(Ascending):
		return Ascending, nil
	case "desc", string(Descending):
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// State is the user's current view selection.
type State struct {
	Search    string    `json:"search"`
	Category  string    `json:"category"`
	SortKey   SortKey   `json:"sort_key,omitempty"`
	Direction Direction `json:"sort_direction"`
}

// DefaultState shows everything, unsorted.
func DefaultState() State {
	return State{Category: AllCategories, Direction: Ascending}
}

func (s State) WithSearch(term string) State {
	s.Search = term
	return s
}

func (s State) WithCategory(category string) State {
	s.Category = category
	return s
}

// RequestSort is the column-header click: the same key while ascending flips
// to descending, anything else sorts by key ascending.
func (s State) RequestSort(key SortKey) State {
	dir := Ascending
	if s.SortKey == key && s.Direction != Descending {
		dir = Descending
	}
	s.SortKey = key
	s.Direction = dir
	return s
}

func (s State) allCategories() bool {
	return s.Category == "" || s.Category == AllCategories
}
