package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "walletpass/internal/domain/errors"
	mockUsecase "walletpass/internal/mocks/usecase"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRegistrationContext builds an echo context for the wallet protocol paths.
func newRegistrationContext(method, target, body, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRegistrationHandler_Register_Created(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodPost, "/", `{"pushToken":"token-abc"}`, "ApplePass deadbeef")
	c.SetParamNames("deviceId", "passTypeId", "serialNumber")
	c.SetParamValues("device-123", "pass.com.example.loyalty", "serial-a")

	uc.EXPECT().
		Register(mock.Anything, "device-123", "pass.com.example.loyalty", "serial-a", "ApplePass deadbeef", "token-abc").
		Return(false, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestRegistrationHandler_Register_AlreadyRegistered(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodPost, "/", `{"pushToken":"token-abc"}`, "ApplePass deadbeef")
	c.SetParamNames("deviceId", "passTypeId", "serialNumber")
	c.SetParamValues("device-123", "pass.com.example.loyalty", "serial-a")

	uc.EXPECT().
		Register(mock.Anything, "device-123", "pass.com.example.loyalty", "serial-a", "ApplePass deadbeef", "token-abc").
		Return(true, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestRegistrationHandler_Register_Unauthorized(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodPost, "/", `{"pushToken":"token-abc"}`, "ApplePass wrong")
	c.SetParamNames("deviceId", "passTypeId", "serialNumber")
	c.SetParamValues("device-123", "pass.com.example.loyalty", "serial-a")

	uc.EXPECT().
		Register(mock.Anything, "device-123", "pass.com.example.loyalty", "serial-a", "ApplePass wrong", "token-abc").
		Return(false, domainerrors.ErrPassUnauthorized)

	require.NoError(t, h.Register(c))
	// The protocol answers with a bare status, no error envelope.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestRegistrationHandler_ListUpdated_ReturnsSerials(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c, rec := newRegistrationContext(http.MethodGet, "/?passesUpdatedSince=2026-03-01T12:00:00Z", "", "")
	c.SetParamNames("deviceId", "passTypeId")
	c.SetParamValues("device-123", "pass.com.example.loyalty")

	uc.EXPECT().
		ListUpdated(mock.Anything, "device-123", "pass.com.example.loyalty", &since).
		Return(&usecase.UpdatedPasses{
			LastUpdated:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			SerialNumbers: []string{"serial-a", "serial-b"},
		}, nil)

	require.NoError(t, h.ListUpdated(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"lastUpdated":"2026-03-02T09:30:00Z","serialNumbers":["serial-a","serial-b"]}`, rec.Body.String())
}

func TestRegistrationHandler_ListUpdated_NothingNew(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodGet, "/", "", "")
	c.SetParamNames("deviceId", "passTypeId")
	c.SetParamValues("device-123", "pass.com.example.loyalty")

	uc.EXPECT().
		ListUpdated(mock.Anything, "device-123", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return(&usecase.UpdatedPasses{SerialNumbers: []string{}}, nil)

	require.NoError(t, h.ListUpdated(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRegistrationHandler_ListUpdated_UnknownDevice(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodGet, "/", "", "")
	c.SetParamNames("deviceId", "passTypeId")
	c.SetParamValues("ghost-device", "pass.com.example.loyalty")

	uc.EXPECT().
		ListUpdated(mock.Anything, "ghost-device", "pass.com.example.loyalty", (*time.Time)(nil)).
		Return(nil, domainerrors.ErrDeviceNotFound)

	require.NoError(t, h.ListUpdated(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestRegistrationHandler_ListUpdated_InvalidTimestamp(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodGet, "/?passesUpdatedSince=yesterday", "", "")
	c.SetParamNames("deviceId", "passTypeId")
	c.SetParamValues("device-123", "pass.com.example.loyalty")

	// The use case is never consulted for a malformed tag.
	require.NoError(t, h.ListUpdated(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationHandler_Unregister_Success(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodDelete, "/", "", "ApplePass deadbeef")
	c.SetParamNames("deviceId", "passTypeId", "serialNumber")
	c.SetParamValues("device-123", "pass.com.example.loyalty", "serial-a")

	uc.EXPECT().
		Unregister(mock.Anything, "device-123", "pass.com.example.loyalty", "serial-a", "ApplePass deadbeef").
		Return(nil)

	require.NoError(t, h.Unregister(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestRegistrationHandler_Unregister_Unauthorized(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(uc, testLogger())

	c, rec := newRegistrationContext(http.MethodDelete, "/", "", "ApplePass wrong")
	c.SetParamNames("deviceId", "passTypeId", "serialNumber")
	c.SetParamValues("device-123", "pass.com.example.loyalty", "serial-a")

	uc.EXPECT().
		Unregister(mock.Anything, "device-123", "pass.com.example.loyalty", "serial-a", "ApplePass wrong").
		Return(domainerrors.ErrPassUnauthorized)

	require.NoError(t, h.Unregister(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}
