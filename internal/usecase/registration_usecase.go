package usecase

import (
	"context"
	"time"
)

// UpdatedPasses is the result of an incremental-update query: the serial
// numbers with changes and the tag the client replays as passesUpdatedSince
// on its next call.
type UpdatedPasses struct {
	LastUpdated   time.Time `json:"lastUpdated"`
	SerialNumbers []string  `json:"serialNumbers"`
}

// RegistrationUsecase implements the device-facing wallet web-service
// operations: register, list updated passes, unregister.
type RegistrationUsecase interface {
	// Register subscribes a device to pass updates. Authentication happens
	// first; on failure nothing is written. Re-registering an existing
	// (device, pass) pair succeeds, reports alreadyRegistered, and still
	// refreshes the device's push token when a new one is supplied.
	Register(ctx context.Context, deviceID, passTypeID, serialNumber, authorizationHeader, pushToken string) (alreadyRegistered bool, err error)

	// ListUpdated returns the passes registered to the device whose updatedAt
	// is strictly after since (all of them when since is nil). An unknown
	// device yields domain ErrDeviceNotFound; a known device with nothing new
	// yields an empty result, which the delivery layer maps to 204.
	ListUpdated(ctx context.Context, deviceID, passTypeID string, since *time.Time) (*UpdatedPasses, error)

	// Unregister removes only the registration for the given (pass, device)
	// pair. It authenticates like Register and succeeds even if no such
	// registration existed.
	Unregister(ctx context.Context, deviceID, passTypeID, serialNumber, authorizationHeader string) error
}
