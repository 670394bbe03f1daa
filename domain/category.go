package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DealCategory is the closed set of catalog categories.
type DealCategory string

const (
	CategoryElectronics DealCategory = "electronics"
	CategoryBeauty      DealCategory = "beauty"
	CategoryHome        DealCategory = "home"
	CategoryToys        DealCategory = "toys"
	CategoryFashion     DealCategory = "fashion"
)

var ErrUnknownCategory = errors.New("unknown category")

var allCategories = []DealCategory{
	CategoryElectronics,
	CategoryBeauty,
	CategoryHome,
	CategoryToys,
	CategoryFashion,
}

// AllCategories returns the categories in their canonical order.
func AllCategories() []DealCategory {
	out := make([]DealCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

func (c DealCategory) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c DealCategory) String() string {
	return string(c)
}

func ParseDealCategory(s string) (DealCategory, error) {
	c := DealCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// CategorySummary is a category with the number of deals it holds.
type CategorySummary struct {
	Category  DealCategory `json:"category"`
	DealCount int          `json:"deal_count"`
}
