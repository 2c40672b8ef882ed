package application

import (
	"errors"
	"fmt"

	"github.com/vnstore/go-shop-api-server/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid catalog input")
	// ErrCategoryExists signals a duplicate category name on create or rename.
	ErrCategoryExists = errors.New("category already exists")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyProductName) ||
		errors.Is(err, domain.ErrEmptyCategoryName) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrInvalidDiscount) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
