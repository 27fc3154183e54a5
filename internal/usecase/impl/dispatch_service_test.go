package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/service"
	mockRepo "walletpass/internal/mocks/repository"
	mockService "walletpass/internal/mocks/service"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service    usecase.DispatchUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	gateway    *mockService.MockPushGateway
}

func createTestDispatchService(t *testing.T, workers, retryAttempts int) dispatchServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	gateway := mockService.NewMockPushGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDispatchService(deviceRepo, gateway, workers, retryAttempts, time.Millisecond, logger)

	return dispatchServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		gateway:    gateway,
	}
}

func dispatchPass() *entity.Pass {
	return &entity.Pass{
		ID:                 uuid.New(),
		SerialNumber:       "serial-a",
		PassTypeIdentifier: "pass.com.example.loyalty",
	}
}

func TestDispatchService_Dispatch_AllDelivered(t *testing.T) {
	fx := createTestDispatchService(t, 2, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-1", PushToken: "token-1"},
		{ID: uuid.New(), Identifier: "device-2", PushToken: "token-2"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(nil)

	fx.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushNotification")).
		Run(func(ctx context.Context, notification *service.PushNotification) {
			assert.Equal(t, pass.PassTypeIdentifier, notification.Topic)
		}).
		Return(nil).
		Times(2)

	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 0, report.Skipped)
	assert.Len(t, report.Outcomes, 2)
}

func TestDispatchService_Dispatch_SkipsDevicesWithoutToken(t *testing.T) {
	fx := createTestDispatchService(t, 2, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-1", PushToken: ""},
		{ID: uuid.New(), Identifier: "device-2", PushToken: "token-2"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(nil)

	fx.gateway.EXPECT().
		Send(ctx, mock.Anything).
		Return(nil).
		Once()

	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 1, report.Skipped)
}

func TestDispatchService_Dispatch_NoRegisteredDevices(t *testing.T) {
	fx := createTestDispatchService(t, 2, 3)

	ctx := context.Background()
	pass := dispatchPass()

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return([]*entity.Device{}, nil)

	// No targets means the gateway is never touched.
	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Delivered)
	assert.Empty(t, report.Outcomes)
}

func TestDispatchService_Dispatch_FailureIsolation(t *testing.T) {
	fx := createTestDispatchService(t, 1, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-bad", PushToken: "bad-token"},
		{ID: uuid.New(), Identifier: "device-good", PushToken: "good-token"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(nil)

	fx.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushNotification")).
		RunAndReturn(func(ctx context.Context, notification *service.PushNotification) error {
			if notification.PushToken == "bad-token" {
				return &service.GatewayRejectionError{StatusCode: 410, Reason: "Unregistered"}
			}

			return nil
		}).
		Times(2)

	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	// One failure never blocks delivery to the remaining devices.
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 1, report.Failed)

	for _, outcome := range report.Outcomes {
		if outcome.DeviceIdentifier == "device-bad" {
			assert.False(t, outcome.Delivered)
			assert.Equal(t, 1, outcome.Attempts)
			assert.Contains(t, outcome.Reason, "Unregistered")
		} else {
			assert.True(t, outcome.Delivered)
		}
	}
}

func TestDispatchService_Dispatch_TransientFaultRetried(t *testing.T) {
	fx := createTestDispatchService(t, 1, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-1", PushToken: "token-1"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(nil)

	fx.gateway.EXPECT().
		Send(ctx, mock.Anything).
		Return(&service.TransientPushError{Err: errors.New("connection reset")}).
		Twice()

	fx.gateway.EXPECT().
		Send(ctx, mock.Anything).
		Return(nil).
		Once()

	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, 3, report.Outcomes[0].Attempts)
}

func TestDispatchService_Dispatch_RetryBoundExhausted(t *testing.T) {
	fx := createTestDispatchService(t, 1, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-1", PushToken: "token-1"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(nil)

	fx.gateway.EXPECT().
		Send(ctx, mock.Anything).
		Return(&service.TransientPushError{Err: errors.New("i/o timeout")}).
		Times(3)

	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, 3, report.Outcomes[0].Attempts)
	assert.False(t, report.Outcomes[0].Delivered)
}

func TestDispatchService_Dispatch_RejectionNotRetried(t *testing.T) {
	fx := createTestDispatchService(t, 1, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-1", PushToken: "expired-token"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(nil)

	fx.gateway.EXPECT().
		Send(ctx, mock.Anything).
		Return(&service.GatewayRejectionError{StatusCode: 400, Reason: "BadDeviceToken"}).
		Once()

	report, err := fx.service.Dispatch(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, 1, report.Outcomes[0].Attempts)
}

func TestDispatchService_Dispatch_CertificateFailureFailsOnce(t *testing.T) {
	fx := createTestDispatchService(t, 4, 3)

	ctx := context.Background()
	pass := dispatchPass()
	devices := []*entity.Device{
		{ID: uuid.New(), Identifier: "device-1", PushToken: "token-1"},
		{ID: uuid.New(), Identifier: "device-2", PushToken: "token-2"},
		{ID: uuid.New(), Identifier: "device-3", PushToken: "token-3"},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesForPass(ctx, pass.ID).
		Return(devices, nil)

	fx.gateway.EXPECT().
		Ready(ctx).
		Return(&service.CertificateError{Err: errors.New("pkcs12: decryption password incorrect")})

	// Unusable credentials fail the dispatch as a whole; Send is never reached.
	report, err := fx.service.Dispatch(ctx, pass)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, service.IsCertificateError(err))
}
