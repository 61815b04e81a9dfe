package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pos-shipment-tracking/internal/core/logger"
	"pos-shipment-tracking/internal/features/trackings/domain"
	"pos-shipment-tracking/internal/features/trackings/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for the tracking collection.
type TrackingHandler struct {
	service ports.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		service: service,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	// Code is the machine-readable error code.
	Code string `json:"code"`
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CreateTrackingRequest represents the POST body for a new tracking entry.
type CreateTrackingRequest struct {
	TrackingNumber         string               `json:"tracking_number"`
	TrackingProvider       string               `json:"tracking_provider"`
	CustomTrackingProvider string               `json:"custom_tracking_provider"`
	CustomTrackingLink     string               `json:"custom_tracking_link"`
	TrackingProductCode    string               `json:"tracking_product_code"`
	DateShipped            string               `json:"date_shipped"`
	StatusShipped          string               `json:"status_shipped"`
	ProductsList           []domain.ProductLine `json:"products_list"`
}

// CreateTrackingResponse is the success envelope for POST.
type CreateTrackingResponse struct {
	Success bool                `json:"success"`
	Data    domain.TrackingItem `json:"data"`
	Message string              `json:"message"`
}

// DeleteTrackingResponse is the success envelope for DELETE.
type DeleteTrackingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListTrackings godoc
// @Summary List tracking entries for an order
// @Description Returns every tracking entry stored on the order, normalized. Empty array when none exist.
// @Tags trackings
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} domain.TrackingItem
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id}/trackings [get]
func (h *TrackingHandler) ListTrackings(c *fiber.Ctx) error {
	orderID, ok := h.orderID(c)
	if !ok {
		return h.orderNotFound(c)
	}

	items, err := h.service.List(c.Context(), orderID)
	if err != nil {
		return h.fail(c, orderID, err)
	}

	return c.Status(http.StatusOK).JSON(items)
}

// CreateTracking godoc
// @Summary Create a tracking entry on an order
// @Description Validates and appends a new shipment-tracking entry to the order's collection.
// @Tags trackings
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param tracking body CreateTrackingRequest true "Tracking details"
// @Success 201 {object} CreateTrackingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id}/trackings [post]
func (h *TrackingHandler) CreateTracking(c *fiber.Ctx) error {
	orderID, ok := h.orderID(c)
	if !ok {
		return h.orderNotFound(c)
	}

	var req CreateTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    "invalid_request",
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	input := domain.TrackingInput{
		TrackingNumber:         req.TrackingNumber,
		TrackingProvider:       req.TrackingProvider,
		CustomTrackingProvider: req.CustomTrackingProvider,
		CustomTrackingLink:     req.CustomTrackingLink,
		TrackingProductCode:    req.TrackingProductCode,
		DateShipped:            req.DateShipped,
		StatusShipped:          req.StatusShipped,
		ProductsList:           req.ProductsList,
	}

	item, err := h.service.Create(c.Context(), orderID, input, currentUserID(c))
	if err != nil {
		return h.fail(c, orderID, err)
	}

	return c.Status(http.StatusCreated).JSON(CreateTrackingResponse{
		Success: true,
		Data:    *item,
		Message: "Shipment tracking created successfully",
	})
}

// DeleteTracking godoc
// @Summary Delete a tracking entry from an order
// @Description Removes the tracking entry with the given ID; the rest of the collection keeps its order.
// @Tags trackings
// @Produce json
// @Param order_id path int true "Order ID"
// @Param tracking_id path string true "Tracking ID (hex)"
// @Success 200 {object} DeleteTrackingResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id}/trackings/{tracking_id} [delete]
func (h *TrackingHandler) DeleteTracking(c *fiber.Ctx) error {
	orderID, ok := h.orderID(c)
	if !ok {
		return h.orderNotFound(c)
	}

	if err := h.service.Delete(c.Context(), orderID, c.Params("tracking_id")); err != nil {
		return h.fail(c, orderID, err)
	}

	return c.Status(http.StatusOK).JSON(DeleteTrackingResponse{
		Success: true,
		Message: "Tracking deleted successfully",
	})
}

// orderID parses the order_id path parameter. Non-numeric ids cannot resolve
// to an order, so callers treat a false return as order-not-found.
func (h *TrackingHandler) orderID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("order_id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *TrackingHandler) orderNotFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(ErrorResponse{
		Code:    "invalid_order",
		Message: "Order not found",
		RayID:   rayID(c),
	})
}

// fail maps service errors to the wire error codes and statuses.
func (h *TrackingHandler) fail(c *fiber.Ctx, orderID int, err error) error {
	var (
		status = http.StatusInternalServerError
		code   = "internal_error"
		msg    = "Internal Server Error"
	)

	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		status, code, msg = http.StatusNotFound, "invalid_order", "Order not found"
	case errors.Is(err, domain.ErrMissingTrackingNumber):
		status, code, msg = http.StatusBadRequest, "missing_tracking_number", "Tracking number is required"
	case errors.Is(err, domain.ErrMissingProvider):
		status, code, msg = http.StatusBadRequest, "missing_provider", "Tracking provider is required"
	case errors.Is(err, domain.ErrTrackingNotFound):
		status, code, msg = http.StatusNotFound, "tracking_not_found", "Tracking not found"
	default:
		logger.Get().Error("Tracking operation failed",
			zap.Int("order_id", orderID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: msg,
		RayID:   rayID(c),
	})
}

// rayID returns the request identifier set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// currentUserID returns the acting user resolved by the auth middleware, 0
// when the request was authorized without a user-bound credential.
func currentUserID(c *fiber.Ctx) int {
	id, ok := c.Locals("user_id").(int)
	if !ok {
		return 0
	}
	return id
}
