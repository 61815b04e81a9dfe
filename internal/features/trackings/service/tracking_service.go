package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"pos-shipment-tracking/internal/core/logger"
	"pos-shipment-tracking/internal/features/trackings/domain"
	"pos-shipment-tracking/internal/features/trackings/ports"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// TrackingManager owns the read-modify-write cycle over an order's tracking
// collection. It performs no locking of its own: two concurrent creates on the
// same order both read the pre-update collection, and the second save wins.
// The host store's save is the only consistency point.
type TrackingManager struct {
	store ports.OrderStore
}

// NewTrackingManager creates a new TrackingManager.
func NewTrackingManager(store ports.OrderStore) *TrackingManager {
	return &TrackingManager{
		store: store,
	}
}

// List returns the order's tracking entries, normalized for output.
func (m *TrackingManager) List(ctx context.Context, orderID int) ([]domain.TrackingItem, error) {
	order, err := m.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return lo.Map(order.TrackingItems, func(item domain.TrackingItem, _ int) domain.TrackingItem {
		return item.Normalize()
	}), nil
}

// Create validates the input, derives the stored fields, appends the entry to
// the order's collection, and records an audit note on the order.
func (m *TrackingManager) Create(ctx context.Context, orderID int, input domain.TrackingInput, userID int) (*domain.TrackingItem, error) {
	order, err := m.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	trackingNumber := strings.TrimSpace(input.TrackingNumber)
	if trackingNumber == "" {
		return nil, domain.ErrMissingTrackingNumber
	}

	// A non-empty custom provider overrides the known-carrier code.
	provider := strings.TrimSpace(input.CustomTrackingProvider)
	if provider == "" {
		provider = strings.TrimSpace(input.TrackingProvider)
	}
	if provider == "" {
		return nil, domain.ErrMissingProvider
	}

	now := time.Now()
	item := domain.TrackingItem{
		TrackingNumber:      trackingNumber,
		TrackingProvider:    provider,
		CustomTrackingLink:  domain.SanitizeTrackingURL(input.CustomTrackingLink),
		TrackingProductCode: strings.TrimSpace(input.TrackingProductCode),
		DateShipped:         domain.NormalizeDateShipped(input.DateShipped, now),
		Source:              domain.SourcePOS,
		ProductsList:        m.resolveProducts(order, input.ProductsList),
		StatusShipped:       domain.ParseShippedStatus(input.StatusShipped),
		TrackingID:          newTrackingID(orderID, trackingNumber, now),
		UserID:              userID,
	}

	updated := append(order.TrackingItems, item)
	if err := m.store.PutTrackingItems(ctx, orderID, normalizeAll(updated)); err != nil {
		return nil, fmt.Errorf("failed to save tracking collection: %w", err)
	}

	note := fmt.Sprintf("Shipment tracking added via POS: %s – %s", provider, trackingNumber)
	if len(item.ProductsList) > 0 {
		ids := lo.Map(item.ProductsList, func(p domain.ProductLine, _ int) string {
			return p.ItemID
		})
		note += fmt.Sprintf(" (Line items: %s)", strings.Join(ids, ", "))
	}
	m.addNote(ctx, orderID, note)

	created := item.Normalize()
	return &created, nil
}

// Delete removes the entry matching trackingID from the order's collection.
// Relative order of the remaining entries is preserved; removing the last
// entry removes the stored collection key entirely.
func (m *TrackingManager) Delete(ctx context.Context, orderID int, trackingID string) error {
	order, err := m.store.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	found := false
	deletedNumber := trackingID
	remaining := make([]domain.TrackingItem, 0, len(order.TrackingItems))

	for _, item := range order.TrackingItems {
		if !found && item.TrackingID == trackingID {
			found = true
			if item.TrackingNumber != "" {
				deletedNumber = item.TrackingNumber
			}
			continue
		}
		remaining = append(remaining, item)
	}

	if !found {
		return domain.ErrTrackingNotFound
	}

	if len(remaining) == 0 {
		remaining = nil
	} else {
		remaining = normalizeAll(remaining)
	}
	if err := m.store.PutTrackingItems(ctx, orderID, remaining); err != nil {
		return fmt.Errorf("failed to save tracking collection: %w", err)
	}

	m.addNote(ctx, orderID, fmt.Sprintf("Shipment tracking deleted via POS: %s", deletedNumber))
	return nil
}

// resolveProducts stringifies the submitted line-item references and drops
// entries whose positive-integer item_id does not resolve to a line item on
// the order. Non-numeric and zero ids pass through unvalidated, matching the
// stored convention.
func (m *TrackingManager) resolveProducts(order *domain.Order, products []domain.ProductLine) []domain.ProductLine {
	resolved := make([]domain.ProductLine, 0, len(products))
	for _, p := range products {
		if itemID, err := cast.ToIntE(p.ItemID); err == nil && itemID > 0 {
			if !order.HasLineItem(itemID) {
				continue
			}
		}
		if p.Qty == "" {
			p.Qty = "1"
		}
		resolved = append(resolved, p)
	}
	return resolved
}

// addNote appends an audit note. The collection write has already succeeded
// at this point, so a note failure is logged rather than surfaced.
func (m *TrackingManager) addNote(ctx context.Context, orderID int, note string) {
	if err := m.store.AddOrderNote(ctx, orderID, note); err != nil {
		logger.Get().Warn("Failed to add order note",
			zap.Int("order_id", orderID),
			zap.Error(err),
		)
	}
}

// normalizeAll applies the canonical record shape to every entry before a
// write, so the stored representation stays uniform.
func normalizeAll(items []domain.TrackingItem) []domain.TrackingItem {
	return lo.Map(items, func(item domain.TrackingItem, _ int) domain.TrackingItem {
		return item.Normalize()
	})
}

// newTrackingID derives a 32-char hex identifier from the order, the tracking
// number, and the creation instant, unique per call without a central counter.
func newTrackingID(orderID int, trackingNumber string, now time.Time) string {
	sum := md5.Sum(fmt.Appendf(nil, "%d-%s-%d", orderID, trackingNumber, now.UnixNano()))
	return hex.EncodeToString(sum[:])
}
