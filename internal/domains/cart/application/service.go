package application

import (
	"context"
	"errors"
	"fmt"

	types "github.com/vnstore/go-shop-api-server/internal/domains/cart/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/domain"
	"github.com/vnstore/go-shop-api-server/internal/domains/cart/ports"
	"github.com/vnstore/go-shop-api-server/internal/shared/projection"
)

// maxSaveAttempts bounds the read-modify-write retry loop on version conflicts.
const maxSaveAttempts = 3

// Service orchestrates cart line-item mutation and read-time enrichment.
type Service struct {
	repo    ports.Repository
	catalog ports.ProductCatalog
}

// NewService wires the cart service with its repository and the catalog reader.
func NewService(repo ports.Repository, catalog ports.ProductCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// CreateCart persists a new cart with an empty line-item list.
func (s *Service) CreateCart(ctx context.Context) (*types.CartView, error) {
	proj, err := s.repo.Create(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, proj), nil
}

// GetCart loads a cart and attaches the current product record to each line
// item. Enrichment is best-effort: an item whose product no longer exists is
// returned without its product, never dropped.
func (s *Service) GetCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be a positive integer", ErrInvalidInput)
	}
	proj, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, proj), nil
}

// UpdateCart applies one line-item mutation. The full updated list is
// persisted as a single version-checked write; a conflicting concurrent
// writer triggers a re-read and a bounded number of retries.
func (s *Service) UpdateCart(ctx context.Context, input types.UpdateCartInput) (*types.CartView, error) {
	if input.CartID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be a positive integer", ErrInvalidInput)
	}
	if _, err := domain.ParseAction(string(input.Action)); err != nil {
		return nil, mapError(err)
	}
	if _, err := s.catalog.Product(ctx, input.ProductID); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		proj, err := s.repo.GetByID(ctx, input.CartID)
		if err != nil {
			return nil, err
		}
		cart := proj.Entity
		if err := cart.Apply(input.Action, input.ProductID, input.Quantity); err != nil {
			return nil, mapError(err)
		}
		saved, err := s.repo.Save(ctx, cart)
		if err == nil {
			return s.enrich(ctx, saved), nil
		}
		if !errors.Is(err, ports.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %w", ErrConcurrentUpdate, lastErr)
}

// ClearCart empties the line-item list and returns the updated cart.
func (s *Service) ClearCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be a positive integer", ErrInvalidInput)
	}
	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		proj, err := s.repo.GetByID(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		cart := proj.Entity
		cart.Clear()
		saved, err := s.repo.Save(ctx, cart)
		if err == nil {
			return s.enrich(ctx, saved), nil
		}
		if !errors.Is(err, ports.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %w", ErrConcurrentUpdate, lastErr)
}

// DeleteCart removes the cart and returns the pre-deletion snapshot.
func (s *Service) DeleteCart(ctx context.Context, input types.CartIdentifier) (*types.CartView, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be a positive integer", ErrInvalidInput)
	}
	deleted, err := s.repo.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, deleted), nil
}

func (s *Service) enrich(ctx context.Context, proj *projection.Projection[*domain.Cart]) *types.CartView {
	if proj == nil || proj.Entity == nil {
		return nil
	}
	cart := proj.Entity
	items := make([]types.EnrichedLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		enriched := types.EnrichedLineItem{ProductID: item.ProductID, Quantity: item.Quantity}
		if product, err := s.catalog.Product(ctx, item.ProductID); err == nil {
			enriched.Product = product
		}
		items = append(items, enriched)
	}
	return &types.CartView{ID: cart.ID, Items: items, Metadata: proj.Metadata}
}

var _ ports.Service = (*Service)(nil)
