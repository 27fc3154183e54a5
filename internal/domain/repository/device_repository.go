package repository

import (
	"context"

	"walletpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindOrCreateDevice retrieves the device with the given identifier,
	// creating it with pushToken when absent. Creation is atomic with respect
	// to the unique index on identifier: concurrent calls for the same
	// identifier converge on a single row. Reports whether the row was created.
	FindOrCreateDevice(ctx context.Context, identifier, pushToken string) (device *entity.Device, created bool, err error)

	// FindDeviceByIdentifier retrieves a device by its client-supplied identifier.
	FindDeviceByIdentifier(ctx context.Context, identifier string) (*entity.Device, error)

	// UpdatePushToken updates the APNs push token for a device.
	// Last-writer-wins is acceptable for token rotation.
	UpdatePushToken(ctx context.Context, id uuid.UUID, pushToken string) error

	// FindDevicesForPass retrieves every device currently registered to the pass.
	FindDevicesForPass(ctx context.Context, passID uuid.UUID) ([]*entity.Device, error)
}
