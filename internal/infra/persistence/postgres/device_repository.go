package postgres

import (
	"context"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindOrCreateDevice retrieves or atomically creates the device with the given
// identifier. ON CONFLICT DO NOTHING against the unique index on identifier
// makes concurrent calls converge on a single row without duplicate-key errors.
func (repo *deviceRepository) FindOrCreateDevice(ctx context.Context, identifier, pushToken string) (*entity.Device, bool, error) {
	deviceM := &model.DeviceModel{
		ID:         uuid.New(),
		Identifier: identifier,
		PushToken:  pushToken,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identifier"}},
			DoNothing: true,
		}).
		Create(deviceM)
	if result.Error != nil {
		return nil, false, errors.Wrap(result.Error, "failed to create device")
	}

	created := result.RowsAffected == 1

	// Re-read so a conflict loser returns the winner's row.
	var existing model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&existing).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to load device after find-or-create")
	}

	return toDeviceDomain(&existing), created, nil
}

// FindDeviceByIdentifier retrieves a device by its client-supplied identifier.
func (repo *deviceRepository) FindDeviceByIdentifier(ctx context.Context, identifier string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by identifier")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdatePushToken updates the APNs push token for a device.
func (repo *deviceRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, pushToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("push_token", pushToken)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// FindDevicesForPass retrieves every device currently registered to the pass.
func (repo *deviceRepository) FindDevicesForPass(ctx context.Context, passID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Joins("JOIN registrations ON registrations.device_id = devices.id").
		Where("registrations.pass_id = ?", passID).
		Order("devices.created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices for pass")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		Identifier: data.Identifier,
		PushToken:  data.PushToken,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
