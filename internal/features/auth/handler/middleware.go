package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"pos-shipment-tracking/internal/core/logger"
	"pos-shipment-tracking/internal/features/auth/domain"
	"pos-shipment-tracking/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents an authorization error response.
type ErrorResponse struct {
	// Code is the machine-readable error code.
	Code string `json:"code"`
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// New returns a fiber middleware that rejects requests before any handler
// logic runs unless a presented consumer key resolves to write access.
// The key is taken from the HTTP Basic Auth username or, failing that, the
// consumer_key query parameter. On success the credential's user id is stored
// in Locals under "user_id".
func New(auth ports.Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		consumerKey := basicAuthUser(c.Get(fiber.HeaderAuthorization))
		if consumerKey == "" {
			consumerKey = c.Query("consumer_key")
		}

		cred, err := auth.Authorize(c.Context(), consumerKey)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				logger.Get().Error("Authorization check failed",
					zap.String("ray_id", rayID(c)),
					zap.Error(err),
				)
			}
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "unauthorized",
				Message: "Sorry, you are not allowed to do that",
				RayID:   rayID(c),
			})
		}

		c.Locals("user_id", cred.UserID)
		return c.Next()
	}
}

// basicAuthUser extracts the username from a Basic Authorization header.
// The password part is ignored; only the consumer key identifies the caller.
func basicAuthUser(header string) string {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return ""
	}

	user, _, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return string(decoded)
	}
	return user
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
