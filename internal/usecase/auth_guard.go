package usecase

import (
	"context"

	"walletpass/internal/domain/entity"
)

// AuthGuard validates a bearer-token credential against a pass, independent of
// transport. It is a pure read: no framework coupling, no side effects.
type AuthGuard interface {
	// Authenticate parses an "Authorization: <scheme> <token>" header value and
	// checks it against the pass identified by (passTypeID, serialNumber).
	// Every failure mode (missing header, unsupported scheme, unknown serial,
	// wrong token) yields the same domain error so callers leak nothing about
	// which serial numbers exist.
	Authenticate(ctx context.Context, passTypeID, serialNumber, authorizationHeader string) (*entity.Pass, error)
}
