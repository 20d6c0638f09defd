package domain

import "fmt"

// Product is the read-only catalog item the platform serves. The client never
// mutates it; the only derived value is the discount, which is computed, not
// stored, so it can never go negative.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Currency      string  `json:"currency"`
	ImageURL      string  `json:"image_url"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	Featured      bool    `json:"is_featured"`
	Trending      bool    `json:"is_trending"`
	New           bool    `json:"is_new"`
	Available     bool    `json:"is_available"`
	URL           string  `json:"url"`
}

func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if p.OriginalPrice > 0 && p.Price > p.OriginalPrice {
		return fmt.Errorf("product price exceeds original price")
	}
	return nil
}

// DiscountPercent returns the derived discount, zero when no original price
// is known.
func (p Product) DiscountPercent() float64 {
	if p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return 0
	}
	return (p.OriginalPrice - p.Price) / p.OriginalPrice * 100
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatPrice renders the price with its currency symbol, falling back to
// the ISO code for currencies without a dedicated glyph.
func (p Product) FormatPrice() string {
	if symbol, ok := currencySymbols[p.Currency]; ok {
		return fmt.Sprintf("%s%.2f", symbol, p.Price)
	}
	return fmt.Sprintf("%s %.2f", p.Currency, p.Price)
}
