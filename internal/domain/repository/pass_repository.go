// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"walletpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for pass persistence.
var (
	// ErrPassNotFound is returned when a pass is not found.
	ErrPassNotFound = errors.New("pass not found")
	// ErrDuplicatePass is returned when trying to create a pass that already exists.
	ErrDuplicatePass = errors.New("pass already exists")
)

// PassRepository defines the interface for pass-related database operations.
type PassRepository interface {
	// CreatePass persists a new pass. The unique index on (klass, generator_type,
	// generator_id) makes concurrent materialization race-safe; a loser gets
	// ErrDuplicatePass and should re-read.
	CreatePass(ctx context.Context, pass *entity.Pass) error

	// FindPassBySerial retrieves a pass by its serial number.
	FindPassBySerial(ctx context.Context, serialNumber string) (*entity.Pass, error)

	// FindPassByGenerator retrieves the pass owned by the given application
	// entity. generatorType/generatorID are empty for standalone passes.
	FindPassByGenerator(ctx context.Context, klass, generatorType, generatorID string) (*entity.Pass, error)

	// UpdatePass persists the mutable fields (data, updatedAt) of a pass.
	// Identity fields are never rewritten.
	UpdatePass(ctx context.Context, pass *entity.Pass) error

	// FindPassesForDevice retrieves all passes registered to the device,
	// optionally filtered to those with updated_at strictly after since.
	FindPassesForDevice(ctx context.Context, deviceID uuid.UUID, passTypeID string, since *time.Time) ([]*entity.Pass, error)
}
