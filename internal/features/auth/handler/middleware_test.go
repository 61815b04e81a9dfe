package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos-shipment-tracking/internal/features/auth/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthorizer is a mock implementation of ports.Authorizer
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, consumerKey string) (*domain.Credential, error) {
	args := m.Called(ctx, consumerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func setupApp(auth *MockAuthorizer) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Use(New(auth))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAuthMiddleware_BasicAuth(t *testing.T) {
	auth := new(MockAuthorizer)
	app := setupApp(auth)

	auth.On("Authorize", mock.Anything, "ck_valid").
		Return(&domain.Credential{UserID: 42, Permissions: domain.PermissionWrite}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, basicAuth("ck_valid", "ignored"))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 42, body["user_id"])
	auth.AssertExpectations(t)
}

func TestAuthMiddleware_QueryParam(t *testing.T) {
	auth := new(MockAuthorizer)
	app := setupApp(auth)

	auth.On("Authorize", mock.Anything, "ck_query").
		Return(&domain.Credential{UserID: 0, Permissions: domain.PermissionWrite}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/protected?consumer_key=ck_query", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	auth.AssertExpectations(t)
}

func TestAuthMiddleware_BasicAuthTakesPrecedence(t *testing.T) {
	auth := new(MockAuthorizer)
	app := setupApp(auth)

	auth.On("Authorize", mock.Anything, "ck_header").
		Return(&domain.Credential{Permissions: domain.PermissionWrite}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/protected?consumer_key=ck_query", nil)
	req.Header.Set(fiber.HeaderAuthorization, basicAuth("ck_header", "secret"))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	auth.AssertExpectations(t)
}

func TestAuthMiddleware_NoCredentials(t *testing.T) {
	auth := new(MockAuthorizer)
	app := setupApp(auth)

	auth.On("Authorize", mock.Anything, "").Return(nil, domain.ErrUnauthorized).Once()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "unauthorized", errResp.Code)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestAuthMiddleware_RejectedKey(t *testing.T) {
	auth := new(MockAuthorizer)
	app := setupApp(auth)

	auth.On("Authorize", mock.Anything, "ck_readonly").Return(nil, domain.ErrUnauthorized).Once()

	req := httptest.NewRequest(http.MethodGet, "/protected?consumer_key=ck_readonly", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedBasicHeader(t *testing.T) {
	auth := new(MockAuthorizer)
	app := setupApp(auth)

	// Falls through to the (absent) query param, authorizing the empty key.
	auth.On("Authorize", mock.Anything, "").Return(nil, domain.ErrUnauthorized).Once()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic not-base64!!!")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
