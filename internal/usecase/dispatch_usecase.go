package usecase

import (
	"context"

	"walletpass/internal/domain/entity"
)

// DeviceOutcome records the terminal result of pushing to one device.
type DeviceOutcome struct {
	DeviceIdentifier string `json:"device_identifier"`
	Delivered        bool   `json:"delivered"`
	Attempts         int    `json:"attempts"`
	Reason           string `json:"reason,omitempty"` // Failure reason, empty on delivery.
}

// DispatchReport aggregates per-device outcomes of one dispatch.
type DispatchReport struct {
	SerialNumber string          `json:"serial_number"`
	Delivered    int             `json:"delivered"`
	Failed       int             `json:"failed"`
	Skipped      int             `json:"skipped"` // Devices without a push token.
	Outcomes     []DeviceOutcome `json:"outcomes"`
}

// DispatchUsecase fans out background pushes to every device registered to a
// pass. A failure for one device never prevents sends to the others; the
// dispatch runs to completion (or a terminal per-device outcome) before
// returning. Only a failure that prevents any send at all, such as unusable
// certificate material, is returned as an error.
type DispatchUsecase interface {
	Dispatch(ctx context.Context, pass *entity.Pass) (*DispatchReport, error)
}
