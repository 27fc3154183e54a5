// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// emptyBody is the bare JSON object the wallet protocol endpoints answer with.
// Devices only inspect the status code.
var emptyBody = map[string]string{}

// RegistrationHandler serves the device-facing wallet web-service endpoints.
// These follow Apple's wire shapes, not the admin response envelope.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	PushToken string `json:"pushToken"`
}

// Register handles POST /v1/devices/:deviceId/registrations/:passTypeId/:serialNumber.
// 201 on a new registration, 200 when the pair already existed, 401 on any
// authentication failure.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, emptyBody)
	}

	alreadyRegistered, err := h.uc.Register(
		c.Request().Context(),
		c.Param("deviceId"),
		c.Param("passTypeId"),
		c.Param("serialNumber"),
		c.Request().Header.Get(echo.HeaderAuthorization),
		req.PushToken,
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPassUnauthorized) {
			return c.JSON(http.StatusUnauthorized, emptyBody)
		}

		return errors.WithStack(err)
	}

	if alreadyRegistered {
		return c.JSON(http.StatusOK, emptyBody)
	}

	return c.JSON(http.StatusCreated, emptyBody)
}

// ListUpdated handles GET /v1/devices/:deviceId/registrations/:passTypeId.
// No authentication: the response only reveals serial numbers the device is
// already registered for. 204 when nothing changed, 404 for an unknown device.
func (h *RegistrationHandler) ListUpdated(c echo.Context) error {
	var since *time.Time
	if raw := c.QueryParam("passesUpdatedSince"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, emptyBody)
		}
		since = &parsed
	}

	updated, err := h.uc.ListUpdated(
		c.Request().Context(),
		c.Param("deviceId"),
		c.Param("passTypeId"),
		since,
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDeviceNotFound) {
			return c.JSON(http.StatusNotFound, emptyBody)
		}

		return errors.WithStack(err)
	}

	if len(updated.SerialNumbers) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, updated)
}

// Unregister handles DELETE /v1/devices/:deviceId/registrations/:passTypeId/:serialNumber.
// Idempotent: deleting an absent registration still answers 200.
func (h *RegistrationHandler) Unregister(c echo.Context) error {
	err := h.uc.Unregister(
		c.Request().Context(),
		c.Param("deviceId"),
		c.Param("passTypeId"),
		c.Param("serialNumber"),
		c.Request().Header.Get(echo.HeaderAuthorization),
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPassUnauthorized) {
			return c.JSON(http.StatusUnauthorized, emptyBody)
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, emptyBody)
}
