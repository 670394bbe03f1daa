package domain

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// CREATE TABLE public.deals (
//     id              BIGINT PRIMARY KEY,
//     title           TEXT NOT NULL,
//     description     TEXT NOT NULL,
//     price           NUMERIC NOT NULL,
//     original_price  NUMERIC NOT NULL,
//     discount        INTEGER NOT NULL DEFAULT 0,
//     category        TEXT NOT NULL,
//     image_url       TEXT DEFAULT '',
//     url             TEXT NOT NULL
// );

type Deal struct {
	ID            uint64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title         string       `gorm:"column:title;type:text;not null" json:"title"`
	Description   string       `gorm:"column:description;type:text;not null" json:"description"`
	Price         float64      `gorm:"column:price;type:numeric;not null" json:"price"`
	OriginalPrice float64      `gorm:"column:original_price;type:numeric;not null" json:"original_price"`
	Discount      int          `gorm:"column:discount;default:0" json:"discount"`
	Category      DealCategory `gorm:"column:category;type:text;not null;index" json:"category"`
	ImageURL      string       `gorm:"column:image_url;type:text;default:''" json:"image_url"`
	URL           string       `gorm:"column:url;type:text;not null" json:"url"`
}

func (Deal) TableName() string {
	return "deals"
}

const (
	maxTitleLength       = 100
	minDescriptionLength = 10
	maxDescriptionLength = 500
	maxPrice             = 5000
	maxOriginalPrice     = 10000
)

var (
	ErrInvalidDeal  = errors.New("invalid deal")
	ErrDealNotFound = errors.New("deal not found")
)

// Validate checks the catalog invariants of a single deal.
func (d Deal) Validate() error {
	if d.ID == 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidDeal)
	}

	if n := utf8.RuneCountInString(d.Title); n == 0 || n > maxTitleLength {
		return fmt.Errorf("%w: deal %d title length must be between 1 and %d", ErrInvalidDeal, d.ID, maxTitleLength)
	}

	if n := utf8.RuneCountInString(d.Description); n < minDescriptionLength || n > maxDescriptionLength {
		return fmt.Errorf("%w: deal %d description length must be between %d and %d", ErrInvalidDeal, d.ID, minDescriptionLength, maxDescriptionLength)
	}

	if d.Price <= 0 || d.Price > maxPrice {
		return fmt.Errorf("%w: deal %d price must be in (0, %d]", ErrInvalidDeal, d.ID, maxPrice)
	}

	if d.OriginalPrice <= 0 || d.OriginalPrice > maxOriginalPrice {
		return fmt.Errorf("%w: deal %d original price must be in (0, %d]", ErrInvalidDeal, d.ID, maxOriginalPrice)
	}

	if d.Price > d.OriginalPrice {
		return fmt.Errorf("%w: deal %d price exceeds original price", ErrInvalidDeal, d.ID)
	}

	if d.Discount < 0 || d.Discount > 100 {
		return fmt.Errorf("%w: deal %d discount must be between 0 and 100", ErrInvalidDeal, d.ID)
	}

	expected := ExpectedDiscount(d.Price, d.OriginalPrice)
	if diff := d.Discount - expected; diff < -1 || diff > 1 {
		return fmt.Errorf("%w: deal %d discount %d does not match prices (expected %d)", ErrInvalidDeal, d.ID, d.Discount, expected)
	}

	if !d.Category.Valid() {
		return fmt.Errorf("%w: deal %d has unknown category %q", ErrInvalidDeal, d.ID, d.Category)
	}

	if d.URL == "" {
		return fmt.Errorf("%w: deal %d url is required", ErrInvalidDeal, d.ID)
	}

	return nil
}

// ExpectedDiscount returns the discount percentage implied by the two prices.
func ExpectedDiscount(price, originalPrice float64) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(100 * (1 - price/originalPrice)))
}
