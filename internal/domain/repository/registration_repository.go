package repository

import (
	"context"

	"walletpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for registration persistence.
var (
	// ErrDuplicateRegistration is returned when the (pass, device) pair is
	// already registered. Callers treat it as "already registered", not a failure.
	ErrDuplicateRegistration = errors.New("registration already exists")
)

// RegistrationRepository defines the interface for registration-related database operations.
type RegistrationRepository interface {
	// CreateRegistration inserts the (pass, device) join row. The unique index
	// on (pass_id, device_id) guarantees at most one registration per pair;
	// an existing pair yields ErrDuplicateRegistration.
	CreateRegistration(ctx context.Context, registration *entity.Registration) error

	// RegistrationExists reports whether the (pass, device) pair is registered.
	RegistrationExists(ctx context.Context, passID, deviceID uuid.UUID) (bool, error)

	// DeleteRegistration removes only the registration for the given
	// (pass, device) pair. Deleting a non-existent registration is a no-op.
	DeleteRegistration(ctx context.Context, passID, deviceID uuid.UUID) error
}
