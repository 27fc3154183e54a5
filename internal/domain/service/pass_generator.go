// Package service defines interfaces for external collaborators consumed by the use cases.
package service

import (
	"context"

	"walletpass/internal/domain/entity"
)

// PassGenerator produces a freshly signed pass bundle for the current state of
// a pass. Bundle layout and cryptographic signing are external concerns; this
// service only hands the pass over and receives bytes back.
type PassGenerator interface {
	// GenerateAndSign renders and signs the pass, returning the .pkpass bundle.
	GenerateAndSign(ctx context.Context, pass *entity.Pass) ([]byte, error)
}
