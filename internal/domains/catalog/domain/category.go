package domain

import (
	"errors"
	"strings"
)

var ErrEmptyCategoryName = errors.New("category name is required")

// Category groups products in the catalog. Names are unique across the store;
// the uniqueness check lives in the application layer because the underlying
// store does not guarantee a unique constraint to this core.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// NewCategory validates the invariants and builds a new Category.
func NewCategory(id int64, name, description string) (*Category, error) {
	c := &Category{ID: id, Description: description}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename mutates the category name ensuring the invariant.
func (c *Category) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCategoryName
	}
	c.Name = name
	return nil
}

// Describe stores the optional description.
func (c *Category) Describe(text string) {
	c.Description = text
}
