package ports

import (
	"context"

	"pos-shipment-tracking/internal/features/trackings/domain"
)

// TrackingService defines the primary port for the tracking-collection lifecycle.
type TrackingService interface {
	// List returns the order's tracking entries, normalized. An order with no
	// collection yields an empty slice, not an error.
	List(ctx context.Context, orderID int) ([]domain.TrackingItem, error)
	// Create validates the input, appends a new entry to the order's
	// collection, and returns the created entry normalized.
	Create(ctx context.Context, orderID int, input domain.TrackingInput, userID int) (*domain.TrackingItem, error)
	// Delete removes the entry with the given tracking ID from the order's collection.
	Delete(ctx context.Context, orderID int, trackingID string) error
}

// OrderStore is the secondary port over the host order system.
// Each call is one network round-trip; the store's save operation is the only
// consistency point for concurrent writers.
type OrderStore interface {
	// GetOrder resolves an order with its line items and current tracking
	// collection. Returns domain.ErrOrderNotFound when the ID does not resolve.
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	// PutTrackingItems replaces the order's stored collection and persists the
	// order. A nil slice removes the collection key entirely.
	PutTrackingItems(ctx context.Context, orderID int, items []domain.TrackingItem) error
	// AddOrderNote appends a human-readable audit note to the order.
	AddOrderNote(ctx context.Context, orderID int, note string) error
}
