package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrUnauthorized is returned when no presented credential grants write access.
var ErrUnauthorized = errors.New("unauthorized")

// Key permission levels, matching the WooCommerce API key table values.
const (
	PermissionWrite     = "write"
	PermissionReadWrite = "read_write"
)

// Order-management capabilities accepted in place of a write-permission key.
const (
	CapabilityManageStore = "manage_woocommerce"
	CapabilityEditOrders  = "edit_shop_orders"
)

// Credential is one entry in the API credential store, keyed by the hash of
// its consumer key.
type Credential struct {
	// KeyID is the credential's identifier in the store.
	KeyID int `json:"key_id"`
	// UserID is the user the credential acts as; 0 for system keys.
	UserID int `json:"user_id"`
	// Permissions is the key's access level (read, write, read_write).
	Permissions string `json:"permissions"`
	// Capabilities are optional order-management capabilities held by the
	// credential's principal.
	Capabilities []string `json:"capabilities,omitempty"`
}

// CanWrite reports whether the credential authorizes mutating requests:
// either the key itself has write permission, or its principal holds an
// order-management capability.
func (c *Credential) CanWrite() bool {
	if c.Permissions == PermissionWrite || c.Permissions == PermissionReadWrite {
		return true
	}
	for _, capability := range c.Capabilities {
		if capability == CapabilityManageStore || capability == CapabilityEditOrders {
			return true
		}
	}
	return false
}

// hashSecret matches the secret wc_api_hash uses, so hashes stored by the
// host platform keep resolving.
const hashSecret = "wc-api"

// HashKey returns the hex HMAC-SHA256 digest under which a consumer key is
// stored. Raw keys are never persisted.
func HashKey(consumerKey string) string {
	mac := hmac.New(sha256.New, []byte(hashSecret))
	mac.Write([]byte(consumerKey))
	return hex.EncodeToString(mac.Sum(nil))
}
