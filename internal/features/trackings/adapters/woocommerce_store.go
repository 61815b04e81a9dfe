package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pos-shipment-tracking/internal/core/config"
	"pos-shipment-tracking/internal/core/httpclient"
	"pos-shipment-tracking/internal/core/logger"
	"pos-shipment-tracking/internal/features/trackings/domain"

	"go.uber.org/zap"
)

// WooCommerceStore implements the OrderStore port against the WooCommerce
// REST API. The tracking collection lives in the order's meta_data, so reads
// and writes go through the orders endpoint; notes have their own endpoint.
type WooCommerceStore struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the WooCommerce connection details.
	config config.WooCommerceConfig
}

// NewWooCommerceStore creates a new instance of WooCommerceStore.
func NewWooCommerceStore(cfg config.WooCommerceConfig) *WooCommerceStore {
	return &WooCommerceStore{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// GetOrder fetches an order and maps its line items and stored tracking
// collection to the domain entity.
func (s *WooCommerceStore) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	url := fmt.Sprintf("%s/wp-json/wc/v3/orders/%d", s.config.URL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("woocommerce API returned status: %d", resp.StatusCode)
	}

	var wcOrder woocommerceOrder
	if err := json.NewDecoder(resp.Body).Decode(&wcOrder); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return s.mapToDomain(wcOrder), nil
}

// PutTrackingItems replaces the stored tracking collection on the order and
// saves it. A nil slice writes a JSON null meta value, which removes the meta
// row on the WooCommerce side.
func (s *WooCommerceStore) PutTrackingItems(ctx context.Context, orderID int, items []domain.TrackingItem) error {
	update := wcOrderUpdate{
		MetaData: []wcMetaWrite{{Key: domain.MetaKey}},
	}
	if items != nil {
		update.MetaData[0].Value = items
	}

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking items: %w", err)
	}

	url := fmt.Sprintf("%s/wp-json/wc/v3/orders/%d", s.config.URL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("woocommerce API returned status: %d", resp.StatusCode)
	}
	return nil
}

// AddOrderNote appends an audit note to the order.
func (s *WooCommerceStore) AddOrderNote(ctx context.Context, orderID int, note string) error {
	body, err := json.Marshal(wcOrderNote{Note: note})
	if err != nil {
		return fmt.Errorf("failed to marshal order note: %w", err)
	}

	url := fmt.Sprintf("%s/wp-json/wc/v3/orders/%d/notes", s.config.URL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("woocommerce API returned status: %d", resp.StatusCode)
	}
	return nil
}

// HealthCheck verifies that the WooCommerce API is reachable and credentials are valid.
func (s *WooCommerceStore) HealthCheck() error {
	// Check orders endpoint with per_page=1 to verify auth and reachability
	url := fmt.Sprintf("%s/wp-json/wc/v3/orders?per_page=1", s.config.URL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// authorize sets Basic Auth with the store's consumer key and secret.
func (s *WooCommerceStore) authorize(req *http.Request) {
	authVal := make([]byte, 0, len(s.config.ConsumerKey)+len(s.config.ConsumerSecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", s.config.ConsumerKey, s.config.ConsumerSecret)
	req.Header.Add("Authorization", "Basic "+base64.StdEncoding.EncodeToString(authVal))
}

// mapToDomain converts a raw WooCommerce order response into a domain Order.
func (s *WooCommerceStore) mapToDomain(wcOrder woocommerceOrder) *domain.Order {
	itemIDs := make([]int, 0, len(wcOrder.LineItems))
	for _, item := range wcOrder.LineItems {
		itemIDs = append(itemIDs, item.ID)
	}

	return &domain.Order{
		ID:            wcOrder.ID,
		LineItemIDs:   itemIDs,
		TrackingItems: s.extractTrackingItems(wcOrder),
	}
}

// extractTrackingItems parses the tracking collection from the order meta.
// A missing key or an unreadable value both map to an empty collection.
func (s *WooCommerceStore) extractTrackingItems(wcOrder woocommerceOrder) []domain.TrackingItem {
	for _, meta := range wcOrder.MetaData {
		if meta.Key != domain.MetaKey {
			continue
		}

		items, err := parseTrackingItems(meta.Value)
		if err != nil {
			logger.Get().Warn("Failed to parse stored tracking items",
				zap.Int("order_id", wcOrder.ID),
				zap.Error(err),
			)
			return nil
		}
		return items
	}
	return nil
}

// parseTrackingItems re-marshals the loosely-typed meta value into the
// tracking collection structure.
func parseTrackingItems(value interface{}) ([]domain.TrackingItem, error) {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var items []domain.TrackingItem
	if err := json.Unmarshal(jsonBytes, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// internal structs for mapping

// woocommerceOrder represents the JSON structure of an order from WooCommerce API.
type woocommerceOrder struct {
	// ID is the unique order ID.
	ID int `json:"id"`
	// LineItems contains the products ordered.
	LineItems []wcLineItem `json:"line_items"`
	// MetaData contains extra fields, including the tracking collection.
	MetaData []wcMetaData `json:"meta_data"`
}

// wcLineItem represents a product line in the WooCommerce order.
type wcLineItem struct {
	// ID is the unique identifier for the line item.
	ID int `json:"id"`
}

// wcMetaData represents a key-value pair in WooCommerce metadata.
type wcMetaData struct {
	// Key is the metadata key name.
	Key string `json:"key"`
	// Value is the metadata value, which can be of various types.
	Value interface{} `json:"value"`
}

// wcOrderUpdate is the PUT body used to replace the tracking meta.
type wcOrderUpdate struct {
	MetaData []wcMetaWrite `json:"meta_data"`
}

// wcMetaWrite writes one meta entry; a nil Value deletes the meta row.
type wcMetaWrite struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// wcOrderNote is the POST body for the order notes endpoint.
type wcOrderNote struct {
	Note string `json:"note"`
}
