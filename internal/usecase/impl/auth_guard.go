package impl

import (
	"context"
	"crypto/subtle"
	"strings"

	"walletpass/internal/domain/constants"
	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/errors"
	"walletpass/internal/usecase"
)

type authGuard struct {
	passRepo repository.PassRepository
}

// NewAuthGuard creates the bearer-token guard for the wallet web-service protocol.
func NewAuthGuard(passRepo repository.PassRepository) usecase.AuthGuard {
	return &authGuard{
		passRepo: passRepo,
	}
}

// Authenticate validates an "Authorization: ApplePass <token>" credential
// against the pass identified by (passTypeID, serialNumber).
func (g *authGuard) Authenticate(ctx context.Context, passTypeID, serialNumber, authorizationHeader string) (*entity.Pass, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok {
		return nil, domainerrors.ErrPassUnauthorized
	}

	switch scheme {
	case constants.AuthSchemeApplePass:
	case constants.AuthSchemeAndroidPass:
		// AndroidPass is deliberately not implemented: its token semantics are
		// unspecified, so it fails exactly like any other unsupported scheme.
		return nil, domainerrors.ErrPassUnauthorized
	default:
		return nil, domainerrors.ErrPassUnauthorized
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrPassUnauthorized
	}

	pass, err := g.passRepo.FindPassBySerial(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			// Indistinguishable from a bad token so responses never reveal
			// which serial numbers exist.
			return nil, domainerrors.ErrPassUnauthorized
		}

		return nil, errors.Wrap(err, "failed to find pass by serial")
	}

	if passTypeID != "" && pass.PassTypeIdentifier != passTypeID {
		return nil, domainerrors.ErrPassUnauthorized
	}

	// Constant-time comparison; a timing oracle on the token is unacceptable.
	if subtle.ConstantTimeCompare([]byte(pass.AuthenticationToken), []byte(token)) != 1 {
		return nil, domainerrors.ErrPassUnauthorized
	}

	return pass, nil
}
