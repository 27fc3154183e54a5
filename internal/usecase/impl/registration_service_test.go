package impl

import (
	"context"
	"testing"
	"time"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	mockRepo "walletpass/internal/mocks/repository"
	mockUsecase "walletpass/internal/mocks/usecase"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service          usecase.RegistrationUsecase
	guard            *mockUsecase.MockAuthGuard
	txManager        *mockRepo.MockTransactionManager
	passRepo         *mockRepo.MockPassRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	registrationRepo *mockRepo.MockRegistrationRepository
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	guard := mockUsecase.NewMockAuthGuard(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	passRepo := mockRepo.NewMockPassRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)

	service := NewRegistrationService(guard, txManager, passRepo, deviceRepo, registrationRepo)

	return registrationServiceFixtures{
		service:          service,
		guard:            guard,
		txManager:        txManager,
		passRepo:         passRepo,
		deviceRepo:       deviceRepo,
		registrationRepo: registrationRepo,
	}
}

// passThroughTransaction makes the transaction manager run the callback
// against a factory backed by the fixture's repository mocks.
func (fx registrationServiceFixtures) passThroughTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo).Maybe()
	factory.EXPECT().NewRegistrationRepository().Return(fx.registrationRepo).Maybe()
	factory.EXPECT().NewPassRepository().Return(fx.passRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestRegistrationService_Register_NewRegistration(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123", PushToken: "token-abc"}

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken).
		Return(pass, nil)

	fx.passThroughTransaction(t, ctx)

	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "device-123", "token-abc").
		Return(device, true, nil)

	fx.registrationRepo.EXPECT().
		CreateRegistration(ctx, mock.AnythingOfType("*entity.Registration")).
		Run(func(ctx context.Context, registration *entity.Registration) {
			assert.Equal(t, pass.ID, registration.PassID)
			assert.Equal(t, device.ID, registration.DeviceID)
		}).
		Return(nil)

	alreadyRegistered, err := fx.service.Register(ctx, "device-123", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken, "token-abc")
	require.NoError(t, err)
	assert.False(t, alreadyRegistered)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123", PushToken: "token-abc"}

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, mock.Anything).
		Return(pass, nil)

	fx.passThroughTransaction(t, ctx)

	// Same token supplied again, so no refresh happens.
	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "device-123", "token-abc").
		Return(device, false, nil)

	fx.registrationRepo.EXPECT().
		CreateRegistration(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(repository.ErrDuplicateRegistration)

	alreadyRegistered, err := fx.service.Register(ctx, "device-123", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken, "token-abc")
	require.NoError(t, err)
	assert.True(t, alreadyRegistered)
}

func TestRegistrationService_Register_RefreshesRotatedPushToken(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123", PushToken: "stale-token"}

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, mock.Anything).
		Return(pass, nil)

	fx.passThroughTransaction(t, ctx)

	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "device-123", "fresh-token").
		Return(device, false, nil)

	fx.deviceRepo.EXPECT().
		UpdatePushToken(ctx, device.ID, "fresh-token").
		Return(nil)

	fx.registrationRepo.EXPECT().
		CreateRegistration(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(repository.ErrDuplicateRegistration)

	alreadyRegistered, err := fx.service.Register(ctx, "device-123", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken, "fresh-token")
	require.NoError(t, err)
	assert.True(t, alreadyRegistered)
}

func TestRegistrationService_Register_AuthFailureWritesNothing(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.guard.EXPECT().
		Authenticate(ctx, "pass.com.example.loyalty", "serial", "ApplePass bad").
		Return(nil, domainerrors.ErrPassUnauthorized)

	alreadyRegistered, err := fx.service.Register(ctx, "device-123", "pass.com.example.loyalty", "serial", "ApplePass bad", "token-abc")
	assert.False(t, alreadyRegistered)
	assert.ErrorIs(t, err, domainerrors.ErrPassUnauthorized)
}

func TestRegistrationService_Register_CreateFailure(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123", PushToken: "token-abc"}

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, mock.Anything).
		Return(pass, nil)

	fx.passThroughTransaction(t, ctx)

	fx.deviceRepo.EXPECT().
		FindOrCreateDevice(ctx, "device-123", "token-abc").
		Return(device, true, nil)

	fx.registrationRepo.EXPECT().
		CreateRegistration(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(errors.New("connection reset"))

	alreadyRegistered, err := fx.service.Register(ctx, "device-123", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken, "token-abc")
	assert.False(t, alreadyRegistered)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
}

func TestRegistrationService_ListUpdated_UnknownDevice(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByIdentifier(ctx, "ghost-device").
		Return(nil, repository.ErrDeviceNotFound)

	updated, err := fx.service.ListUpdated(ctx, "ghost-device", "pass.com.example.loyalty", nil)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestRegistrationService_ListUpdated_NothingNew(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123"}
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().
		FindDeviceByIdentifier(ctx, "device-123").
		Return(device, nil)

	fx.passRepo.EXPECT().
		FindPassesForDevice(ctx, device.ID, "pass.com.example.loyalty", &since).
		Return([]*entity.Pass{}, nil)

	updated, err := fx.service.ListUpdated(ctx, "device-123", "pass.com.example.loyalty", &since)
	require.NoError(t, err)
	assert.Empty(t, updated.SerialNumbers)
	assert.True(t, updated.LastUpdated.IsZero())
}

func TestRegistrationService_ListUpdated_ReturnsMaxUpdatedAt(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123"}

	older := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newest := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().
		FindDeviceByIdentifier(ctx, "device-123").
		Return(device, nil)

	fx.passRepo.EXPECT().
		FindPassesForDevice(ctx, device.ID, "pass.com.example.loyalty", (*time.Time)(nil)).
		Return([]*entity.Pass{
			{SerialNumber: "serial-a", UpdatedAt: older},
			{SerialNumber: "serial-b", UpdatedAt: newest},
		}, nil)

	updated, err := fx.service.ListUpdated(ctx, "device-123", "pass.com.example.loyalty", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"serial-a", "serial-b"}, updated.SerialNumbers)
	// The tag the device replays next time is the newest change it just saw.
	assert.Equal(t, newest, updated.LastUpdated)
}

func TestRegistrationService_Unregister_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()
	device := &entity.Device{ID: uuid.New(), Identifier: "device-123"}

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, mock.Anything).
		Return(pass, nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByIdentifier(ctx, "device-123").
		Return(device, nil)

	fx.registrationRepo.EXPECT().
		DeleteRegistration(ctx, pass.ID, device.ID).
		Return(nil)

	err := fx.service.Unregister(ctx, "device-123", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken)
	require.NoError(t, err)
}

func TestRegistrationService_Unregister_UnknownDeviceIsIdempotent(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, mock.Anything).
		Return(pass, nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByIdentifier(ctx, "ghost-device").
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.Unregister(ctx, "ghost-device", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken)
	require.NoError(t, err)
}

func TestRegistrationService_Unregister_AuthFailure(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.guard.EXPECT().
		Authenticate(ctx, "pass.com.example.loyalty", "serial", "ApplePass bad").
		Return(nil, domainerrors.ErrPassUnauthorized)

	err := fx.service.Unregister(ctx, "device-123", "pass.com.example.loyalty", "serial", "ApplePass bad")
	assert.ErrorIs(t, err, domainerrors.ErrPassUnauthorized)
}

func TestRegistrationService_Register_TransactionFailure(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	pass := testPass()

	fx.guard.EXPECT().
		Authenticate(ctx, pass.PassTypeIdentifier, pass.SerialNumber, mock.Anything).
		Return(pass, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("deadlock detected"))

	alreadyRegistered, err := fx.service.Register(ctx, "device-123", pass.PassTypeIdentifier, pass.SerialNumber, "ApplePass "+pass.AuthenticationToken, "token-abc")
	assert.False(t, alreadyRegistered)
	require.Error(t, err)
}
