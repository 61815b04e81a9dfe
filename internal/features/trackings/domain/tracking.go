package domain

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// MetaKey is the order meta key used by the WooCommerce Shipment Tracking
// plugin. Entries written under it must stay readable by that plugin's UI.
const MetaKey = "_wc_shipment_tracking_items"

// SourcePOS marks entries created through this integration.
const SourcePOS = "ds_pos"

var (
	// ErrOrderNotFound is returned when the order ID does not resolve.
	ErrOrderNotFound = errors.New("order not found")
	// ErrMissingTrackingNumber is returned when the tracking number is absent or blank.
	ErrMissingTrackingNumber = errors.New("tracking number is required")
	// ErrMissingProvider is returned when neither a provider nor a custom provider is given.
	ErrMissingProvider = errors.New("tracking provider is required")
	// ErrTrackingNotFound is returned when no entry matches the tracking ID.
	// A missing collection and a missing entry are deliberately indistinguishable.
	ErrTrackingNotFound = errors.New("tracking not found")
)

// ShippedStatus is the legacy shipped-state flag: "1" fully shipped, "2" partial.
type ShippedStatus string

const (
	ShippedStatusShipped ShippedStatus = "1"
	ShippedStatusPartial ShippedStatus = "2"
)

// ParseShippedStatus maps the textual aliases accepted on the wire to the
// stored flag. Anything outside {"1","2","shipped","partial"} coerces to "1".
func ParseShippedStatus(raw string) ShippedStatus {
	switch strings.TrimSpace(raw) {
	case "shipped", string(ShippedStatusShipped):
		return ShippedStatusShipped
	case "partial", string(ShippedStatusPartial):
		return ShippedStatusPartial
	default:
		return ShippedStatusShipped
	}
}

// ProductLine associates a tracking entry with one order line item.
// All fields are stored as strings for compatibility with the stored format.
type ProductLine struct {
	// Product is the product identifier.
	Product string `json:"product"`
	// ItemID is the order line-item identifier.
	ItemID string `json:"item_id"`
	// Qty is the shipped quantity, "1" when not given.
	Qty string `json:"qty"`
}

// UnmarshalJSON accepts both string and numeric field values, since POS
// clients and legacy stored entries are inconsistent about quoting.
func (p *ProductLine) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Product = cast.ToString(raw["product"])
	p.ItemID = cast.ToString(raw["item_id"])
	p.Qty = cast.ToString(raw["qty"])
	if p.Qty == "" {
		p.Qty = "1"
	}
	return nil
}

// TrackingItem is one shipment notification attached to an order.
// JSON field names mirror the stored meta format exactly.
type TrackingItem struct {
	TrackingNumber      string        `json:"tracking_number"`
	TrackingProvider    string        `json:"tracking_provider"`
	CustomTrackingLink  string        `json:"custom_tracking_link"`
	TrackingProductCode string        `json:"tracking_product_code"`
	DateShipped         string        `json:"date_shipped"`
	Source              string        `json:"source"`
	ProductsList        []ProductLine `json:"products_list"`
	StatusShipped       ShippedStatus `json:"status_shipped"`
	TrackingID          string        `json:"tracking_id"`
	UserID              int           `json:"user_id"`
}

// Normalize returns a copy safe for JSON output: products_list is always a
// non-nil slice of plain records and a blank qty defaults to "1". The
// transform is idempotent.
func (t TrackingItem) Normalize() TrackingItem {
	products := make([]ProductLine, 0, len(t.ProductsList))
	for _, p := range t.ProductsList {
		if p.Qty == "" {
			p.Qty = "1"
		}
		products = append(products, p)
	}
	t.ProductsList = products
	return t
}

// TrackingInput carries the client-supplied fields for a new tracking entry.
type TrackingInput struct {
	TrackingNumber         string
	TrackingProvider       string
	CustomTrackingProvider string
	CustomTrackingLink     string
	TrackingProductCode    string
	DateShipped            string
	StatusShipped          string
	ProductsList           []ProductLine
}

// Order is the slice of the host order this feature needs: identity, the
// line items a products_list entry may reference, and the current collection.
type Order struct {
	// ID is the order identifier.
	ID int
	// LineItemIDs are the identifiers of the order's line items.
	LineItemIDs []int
	// TrackingItems is the collection currently stored on the order, in order.
	TrackingItems []TrackingItem
}

// HasLineItem reports whether the order contains a line item with the given ID.
func (o *Order) HasLineItem(id int) bool {
	for _, itemID := range o.LineItemIDs {
		if itemID == id {
			return true
		}
	}
	return false
}

// SanitizeTrackingURL reduces a custom tracking link to a safe http(s) URL,
// or to the empty string when it cannot be one.
func SanitizeTrackingURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// dateLayouts are the formats accepted for a non-numeric date_shipped value.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// NormalizeDateShipped converts the supplied date_shipped value to a Unix
// timestamp string. Purely numeric input is kept verbatim; a parseable date
// string becomes its timestamp; anything else falls back to now.
func NormalizeDateShipped(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return strconv.FormatInt(now.Unix(), 10)
	}

	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return raw
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return strconv.FormatInt(ts.Unix(), 10)
		}
	}
	return strconv.FormatInt(now.Unix(), 10)
}
