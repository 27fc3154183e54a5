package impl

import (
	"context"
	"testing"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	mockRepo "walletpass/internal/mocks/repository"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authGuardFixtures holds all test dependencies for auth guard tests.
type authGuardFixtures struct {
	guard    usecase.AuthGuard
	passRepo *mockRepo.MockPassRepository
}

func createTestAuthGuard(t *testing.T) authGuardFixtures {
	passRepo := mockRepo.NewMockPassRepository(t)
	guard := NewAuthGuard(passRepo)

	return authGuardFixtures{
		guard:    guard,
		passRepo: passRepo,
	}
}

func testPass() *entity.Pass {
	return &entity.Pass{
		ID:                  uuid.New(),
		SerialNumber:        "8b0b6c5a-4f0e-4c5e-9d39-6a2e5b1f4e8a",
		PassTypeIdentifier:  "pass.com.example.loyalty",
		AuthenticationToken: "3f786850e387550fdab836ed7e6dc881",
	}
}

func TestAuthGuard_Authenticate_Success(t *testing.T) {
	fx := createTestAuthGuard(t)

	ctx := context.Background()
	pass := testPass()

	fx.passRepo.EXPECT().
		FindPassBySerial(ctx, pass.SerialNumber).
		Return(pass, nil)

	got, err := fx.guard.Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken)
	require.NoError(t, err)
	assert.Equal(t, pass, got)
}

func TestAuthGuard_Authenticate_EmptyPassTypeSkipsScopeCheck(t *testing.T) {
	fx := createTestAuthGuard(t)

	ctx := context.Background()
	pass := testPass()

	fx.passRepo.EXPECT().
		FindPassBySerial(ctx, pass.SerialNumber).
		Return(pass, nil)

	got, err := fx.guard.Authenticate(ctx, "", pass.SerialNumber, "ApplePass "+pass.AuthenticationToken)
	require.NoError(t, err)
	assert.Equal(t, pass, got)
}

func TestAuthGuard_Authenticate_HeaderFailures(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme separator", header: "ApplePassdeadbeef"},
		{name: "unsupported scheme", header: "Bearer deadbeef"},
		{name: "android scheme", header: "AndroidPass deadbeef"},
		{name: "lowercase scheme", header: "applepass deadbeef"},
		{name: "empty token", header: "ApplePass "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthGuard(t)

			// Malformed credentials fail before any repository lookup.
			got, err := fx.guard.Authenticate(context.Background(), "pass.com.example.loyalty", "serial", tt.header)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domainerrors.ErrPassUnauthorized)
		})
	}
}

func TestAuthGuard_Authenticate_UnknownSerial(t *testing.T) {
	fx := createTestAuthGuard(t)

	ctx := context.Background()

	fx.passRepo.EXPECT().
		FindPassBySerial(ctx, "no-such-serial").
		Return(nil, repository.ErrPassNotFound)

	got, err := fx.guard.Authenticate(ctx, "pass.com.example.loyalty", "no-such-serial", "ApplePass deadbeef")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPassUnauthorized)
}

func TestAuthGuard_Authenticate_WrongToken(t *testing.T) {
	fx := createTestAuthGuard(t)

	ctx := context.Background()
	pass := testPass()

	fx.passRepo.EXPECT().
		FindPassBySerial(ctx, pass.SerialNumber).
		Return(pass, nil)

	got, err := fx.guard.Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass wrong-token")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPassUnauthorized)
}

func TestAuthGuard_Authenticate_PassTypeMismatch(t *testing.T) {
	fx := createTestAuthGuard(t)

	ctx := context.Background()
	pass := testPass()

	fx.passRepo.EXPECT().
		FindPassBySerial(ctx, pass.SerialNumber).
		Return(pass, nil)

	got, err := fx.guard.Authenticate(ctx, "pass.com.example.other", pass.SerialNumber, "ApplePass "+pass.AuthenticationToken)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPassUnauthorized)
}

func TestAuthGuard_Authenticate_RepositoryError(t *testing.T) {
	fx := createTestAuthGuard(t)

	ctx := context.Background()

	fx.passRepo.EXPECT().
		FindPassBySerial(ctx, "serial").
		Return(nil, errors.New("connection refused"))

	got, err := fx.guard.Authenticate(ctx, "pass.com.example.loyalty", "serial", "ApplePass deadbeef")
	assert.Nil(t, got)
	require.Error(t, err)
	// Infrastructure faults are not disguised as authentication failures.
	assert.NotErrorIs(t, err, domainerrors.ErrPassUnauthorized)
}
