package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyProductName = errors.New("product name is required")
	ErrInvalidPrice     = errors.New("price must be greater or equal to zero")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100")
)

// EffectivePrice computes a product's price after applying its discount
// percentage, truncated to an integer. Prices are kept in the smallest
// currency unit, so integer division is the intended floor semantics.
func EffectivePrice(price int64, discount int) (int64, error) {
	if discount < 0 || discount > 100 {
		return 0, ErrInvalidDiscount
	}
	if price < 0 {
		return 0, ErrInvalidPrice
	}
	return price * int64(100-discount) / 100, nil
}

// Product is the catalog aggregate. CurrentPrice is always derived from
// Price and Discount, never set independently.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        int64
	Discount     int
	CurrentPrice int64
	Category     string
	Images       []string
}

// NewProduct validates the invariants and builds a new Product aggregate.
func NewProduct(id int64, name string, price int64, discount int, category string) (*Product, error) {
	p := &Product{ID: id, Category: category}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.SetPricing(price, discount); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the product name ensuring the invariant.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProductName
	}
	p.Name = name
	return nil
}

// Describe stores the free-form description.
func (p *Product) Describe(text string) {
	p.Description = text
}

// SetPricing updates price and discount together and re-derives CurrentPrice.
func (p *Product) SetPricing(price int64, discount int) error {
	current, err := EffectivePrice(price, discount)
	if err != nil {
		return err
	}
	p.Price = price
	p.Discount = discount
	p.CurrentPrice = current
	return nil
}

// Reprice changes the base price keeping the stored discount.
func (p *Product) Reprice(price int64) error {
	return p.SetPricing(price, p.Discount)
}

// ApplyDiscount changes the discount keeping the stored base price.
func (p *Product) ApplyDiscount(discount int) error {
	return p.SetPricing(p.Price, discount)
}

// AssignCategory points the product at a category by name.
func (p *Product) AssignCategory(name string) {
	p.Category = name
}

// ReplaceImages swaps the image URL list.
func (p *Product) ReplaceImages(urls []string) {
	p.Images = append([]string{}, urls...)
}
