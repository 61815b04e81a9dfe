package domain

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseShippedStatus verifies alias mapping and coercion of unknown values.
func TestParseShippedStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ShippedStatus
	}{
		{"shipped", ShippedStatusShipped},
		{"partial", ShippedStatusPartial},
		{"1", ShippedStatusShipped},
		{"2", ShippedStatusPartial},
		{"bogus", ShippedStatusShipped},
		{"", ShippedStatusShipped},
		{"3", ShippedStatusShipped},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseShippedStatus(tt.raw))
		})
	}
}

// TestProductLine_UnmarshalJSON verifies that numeric and string field values
// both decode to strings, and qty defaults to "1".
func TestProductLine_UnmarshalJSON(t *testing.T) {
	t.Run("StringFields", func(t *testing.T) {
		var p ProductLine
		err := json.Unmarshal([]byte(`{"product":"287347","item_id":"18299","qty":"2"}`), &p)
		require.NoError(t, err)
		assert.Equal(t, ProductLine{Product: "287347", ItemID: "18299", Qty: "2"}, p)
	})

	t.Run("NumericFields", func(t *testing.T) {
		var p ProductLine
		err := json.Unmarshal([]byte(`{"product":287347,"item_id":18299,"qty":1}`), &p)
		require.NoError(t, err)
		assert.Equal(t, ProductLine{Product: "287347", ItemID: "18299", Qty: "1"}, p)
	})

	t.Run("MissingFieldsDefault", func(t *testing.T) {
		var p ProductLine
		err := json.Unmarshal([]byte(`{}`), &p)
		require.NoError(t, err)
		assert.Equal(t, ProductLine{Product: "", ItemID: "", Qty: "1"}, p)
	})
}

// TestTrackingItem_Normalize verifies the output shape and idempotence.
func TestTrackingItem_Normalize(t *testing.T) {
	t.Run("NilProductsBecomesEmptySlice", func(t *testing.T) {
		item := TrackingItem{TrackingNumber: "ABC123"}
		normalized := item.Normalize()

		require.NotNil(t, normalized.ProductsList)
		assert.Empty(t, normalized.ProductsList)
	})

	t.Run("BlankQtyDefaults", func(t *testing.T) {
		item := TrackingItem{
			ProductsList: []ProductLine{{Product: "287347", ItemID: "18299"}},
		}
		normalized := item.Normalize()

		require.Len(t, normalized.ProductsList, 1)
		assert.Equal(t, "1", normalized.ProductsList[0].Qty)
	})

	t.Run("Idempotent", func(t *testing.T) {
		items := []TrackingItem{
			{},
			{TrackingNumber: "ABC123", ProductsList: nil},
			{ProductsList: []ProductLine{{Product: "1", ItemID: "2", Qty: ""}}},
			{ProductsList: []ProductLine{{Product: "1", ItemID: "2", Qty: "3"}}},
		}
		for _, item := range items {
			once := item.Normalize()
			twice := once.Normalize()
			assert.Equal(t, once, twice)
		}
	})
}

// TestOrder_HasLineItem verifies line-item membership checks.
func TestOrder_HasLineItem(t *testing.T) {
	order := &Order{ID: 123, LineItemIDs: []int{18299, 18300}}

	assert.True(t, order.HasLineItem(18299))
	assert.True(t, order.HasLineItem(18300))
	assert.False(t, order.HasLineItem(99999))
}

// TestSanitizeTrackingURL verifies that only http(s) URLs survive.
func TestSanitizeTrackingURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"HTTPS", "https://track.example.com/t/ABC123", "https://track.example.com/t/ABC123"},
		{"HTTP", "http://track.example.com", "http://track.example.com"},
		{"Whitespace", "  https://track.example.com  ", "https://track.example.com"},
		{"Empty", "", ""},
		{"JavascriptScheme", "javascript:alert(1)", ""},
		{"NoScheme", "track.example.com/t/1", ""},
		{"NoHost", "https://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTrackingURL(tt.raw))
		})
	}
}

// TestNormalizeDateShipped verifies numeric passthrough, date parsing, and the
// current-time fallback.
func TestNormalizeDateShipped(t *testing.T) {
	now := time.Date(2025, 2, 17, 12, 0, 0, 0, time.UTC)
	nowStr := strconv.FormatInt(now.Unix(), 10)

	t.Run("NumericVerbatim", func(t *testing.T) {
		assert.Equal(t, "1739793600", NormalizeDateShipped("1739793600", now))
	})

	t.Run("DateString", func(t *testing.T) {
		expected := time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC).Unix()
		assert.Equal(t, strconv.FormatInt(expected, 10), NormalizeDateShipped("2025-02-17", now))
	})

	t.Run("DateTimeString", func(t *testing.T) {
		expected := time.Date(2025, 2, 17, 14, 48, 25, 0, time.UTC).Unix()
		assert.Equal(t, strconv.FormatInt(expected, 10), NormalizeDateShipped("2025-02-17T14:48:25", now))
	})

	t.Run("UnparseableFallsBackToNow", func(t *testing.T) {
		assert.Equal(t, nowStr, NormalizeDateShipped("not a date", now))
	})

	t.Run("EmptyFallsBackToNow", func(t *testing.T) {
		assert.Equal(t, nowStr, NormalizeDateShipped("", now))
	})
}
