// Package projection wraps aggregates with persistence metadata for read paths.
package projection

import "time"

// Metadata captures store-managed timestamps attached to a persisted record.
type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Projection transports an aggregate view together with its persistence metadata.
type Projection[T any] struct {
	Entity   T
	Metadata Metadata
}

// New builds a projection for a persisted aggregate.
func New[T any](entity T, createdAt, updatedAt time.Time) *Projection[T] {
	return &Projection[T]{
		Entity:   entity,
		Metadata: Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt},
	}
}
