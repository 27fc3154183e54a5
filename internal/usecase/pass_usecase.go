package usecase

import (
	"context"

	"walletpass/internal/domain/entity"
)

// GeneratorRef identifies the application entity a pass is created for.
// A zero value means the pass has no backing application entity.
type GeneratorRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// PassUsecase is the sole entry point other subsystems use to create passes
// and alter pass content.
type PassUsecase interface {
	// Materialize finds or creates the pass for (klass, generator). Repeated
	// calls return the same pass and never regenerate its serial number or
	// authentication token, but refresh computed data fields from seed.
	Materialize(ctx context.Context, klass string, generator GeneratorRef, seed map[string]any) (*entity.Pass, error)

	// Mutate applies attribute changes to the pass's data, unconditionally
	// advances updatedAt, persists, regenerates the signed bundle, and
	// triggers push dispatch. The bundle is returned regardless of push
	// outcome; push failures are logged, never propagated.
	Mutate(ctx context.Context, serialNumber string, changes map[string]any) ([]byte, error)
}
