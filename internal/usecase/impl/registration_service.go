package impl

import (
	"context"
	"time"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/errors"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
)

type registrationService struct {
	guard            usecase.AuthGuard
	txManager        repository.TransactionManager
	passRepo         repository.PassRepository
	deviceRepo       repository.DeviceRepository
	registrationRepo repository.RegistrationRepository
}

// NewRegistrationService creates the registration use case instance
func NewRegistrationService(
	guard usecase.AuthGuard,
	txManager repository.TransactionManager,
	passRepo repository.PassRepository,
	deviceRepo repository.DeviceRepository,
	registrationRepo repository.RegistrationRepository,
) usecase.RegistrationUsecase {
	return &registrationService{
		guard:            guard,
		txManager:        txManager,
		passRepo:         passRepo,
		deviceRepo:       deviceRepo,
		registrationRepo: registrationRepo,
	}
}

// Register subscribes a device to pass updates.
func (s *registrationService) Register(ctx context.Context, deviceID, passTypeID, serialNumber, authorizationHeader, pushToken string) (bool, error) {
	// Authentication first; nothing is written on failure.
	pass, err := s.guard.Authenticate(ctx, passTypeID, serialNumber, authorizationHeader)
	if err != nil {
		return false, err
	}

	var alreadyRegistered bool

	// Device find-or-create and registration insert share one transaction so a
	// concurrent register for the same (device, pass) cannot leave a torn state.
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		deviceRepo := repos.NewDeviceRepository()

		device, created, err := deviceRepo.FindOrCreateDevice(ctx, deviceID, pushToken)
		if err != nil {
			return errors.Wrap(err, "failed to find or create device")
		}

		// A device's push token can rotate without re-registering from scratch.
		if !created && pushToken != "" && device.PushToken != pushToken {
			if err := deviceRepo.UpdatePushToken(ctx, device.ID, pushToken); err != nil {
				return errors.Wrap(err, "failed to refresh push token")
			}
		}

		registration := &entity.Registration{
			ID:        uuid.New(),
			PassID:    pass.ID,
			DeviceID:  device.ID,
			CreatedAt: time.Now(),
		}

		if err := repos.NewRegistrationRepository().CreateRegistration(ctx, registration); err != nil {
			if errors.Is(err, repository.ErrDuplicateRegistration) {
				alreadyRegistered = true

				return nil
			}

			return domainerrors.ErrRegistrationFailed.WrapMessage(err.Error())
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return alreadyRegistered, nil
}

// ListUpdated returns the serial numbers of passes registered to the device
// with changes strictly after since, plus the tag for the next query.
func (s *registrationService) ListUpdated(ctx context.Context, deviceID, passTypeID string, since *time.Time) (*usecase.UpdatedPasses, error) {
	device, err := s.deviceRepo.FindDeviceByIdentifier(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// Unknown device is a distinct outcome from "known device, nothing new".
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by identifier")
	}

	passes, err := s.passRepo.FindPassesForDevice(ctx, device.ID, passTypeID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find passes for device")
	}

	result := &usecase.UpdatedPasses{
		SerialNumbers: make([]string, 0, len(passes)),
	}
	for _, pass := range passes {
		result.SerialNumbers = append(result.SerialNumbers, pass.SerialNumber)
		if pass.UpdatedAt.After(result.LastUpdated) {
			result.LastUpdated = pass.UpdatedAt
		}
	}

	return result, nil
}

// Unregister removes only the registration for the given (pass, device) pair.
func (s *registrationService) Unregister(ctx context.Context, deviceID, passTypeID, serialNumber, authorizationHeader string) error {
	pass, err := s.guard.Authenticate(ctx, passTypeID, serialNumber, authorizationHeader)
	if err != nil {
		return err
	}

	device, err := s.deviceRepo.FindDeviceByIdentifier(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// No device means no registration to remove; idempotent success.
			return nil
		}

		return errors.Wrap(err, "failed to find device by identifier")
	}

	if err := s.registrationRepo.DeleteRegistration(ctx, pass.ID, device.ID); err != nil {
		return errors.Wrap(err, "failed to delete registration")
	}

	return nil
}
