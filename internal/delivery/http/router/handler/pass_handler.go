package handler

import (
	"log/slog"
	"net/http"

	"walletpass/internal/delivery/http/response"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PassHandler serves the host-application admin endpoints for creating and
// mutating passes. Unlike the wallet protocol endpoints these use the
// standard response envelope.
type PassHandler struct {
	uc     usecase.PassUsecase
	logger *slog.Logger
}

// NewPassHandler is the constructor for PassHandler, injected by Fx.
func NewPassHandler(uc usecase.PassUsecase, logger *slog.Logger) *PassHandler {
	return &PassHandler{
		uc:     uc,
		logger: logger,
	}
}

type materializeRequest struct {
	Klass     string               `json:"klass" validate:"required"`
	Generator usecase.GeneratorRef `json:"generator" validate:"required"`
	Seed      map[string]any       `json:"seed"`
}

type mutateRequest struct {
	Changes map[string]any `json:"changes" validate:"required"`
}

// Materialize handles POST /admin/passes. Repeated calls for the same
// (klass, generator) pair return the existing pass.
func (h *PassHandler) Materialize(c echo.Context) error {
	var req materializeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid materialize input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pass, err := h.uc.Materialize(c.Request().Context(), req.Klass, req.Generator, req.Seed)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pass, "Pass materialized successfully")
}

// Mutate handles PATCH /admin/passes/:serialNumber. The response body is the
// freshly signed .pkpass bundle; push delivery happens out of band.
func (h *PassHandler) Mutate(c echo.Context) error {
	var req mutateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mutate input")
	}
	if len(req.Changes) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "At least one change is required")
	}

	bundle, err := h.uc.Mutate(c.Request().Context(), c.Param("serialNumber"), req.Changes)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "application/vnd.apple.pkpass", bundle)
}
