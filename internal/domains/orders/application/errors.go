package application

import (
	"errors"
	"fmt"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
)

var ErrInvalidInput = errors.New("invalid input")

func mapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPayment),
		errors.Is(err, domain.ErrIncompleteShipping),
		errors.Is(err, domain.ErrInvalidShippingPhone):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, domain.ErrIllegalTransition):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
