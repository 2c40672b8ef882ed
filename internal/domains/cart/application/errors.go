package application

import (
	"errors"
	"fmt"

	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
)

var (
	// ErrInvalidInput signals the request violated a cart invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrConcurrentUpdate signals the version-checked write kept losing
	// against concurrent writers after all retries were used up.
	ErrConcurrentUpdate = errors.New("cart update lost against concurrent writers")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUnknownAction) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
