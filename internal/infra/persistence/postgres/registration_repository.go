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

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// CreateRegistration inserts the (pass, device) join row. ON CONFLICT DO
// NOTHING against the unique pair index turns a concurrent duplicate into
// ErrDuplicateRegistration instead of a driver error.
func (repo *registrationRepository) CreateRegistration(ctx context.Context, registration *entity.Registration) error {
	registrationM := fromRegistrationDomain(registration)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pass_id"}, {Name: "device_id"}},
			DoNothing: true,
		}).
		Create(registrationM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateRegistration
		}

		return errors.Wrap(result.Error, "failed to create registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateRegistration
	}

	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt

	return nil
}

// RegistrationExists reports whether the (pass, device) pair is registered.
func (repo *registrationRepository) RegistrationExists(ctx context.Context, passID, deviceID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("pass_id = ? AND device_id = ?", passID, deviceID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count registrations")
	}

	return count > 0, nil
}

// DeleteRegistration removes only the registration for the given
// (pass, device) pair. Zero rows affected is success: unregistration is idempotent.
func (repo *registrationRepository) DeleteRegistration(ctx context.Context, passID, deviceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("pass_id = ? AND device_id = ?", passID, deviceID).
		Delete(&model.RegistrationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete registration")
	}

	return nil
}

// --- Mapper Functions ---

// fromRegistrationDomain converts a domain Registration entity to a GORM RegistrationModel.
func fromRegistrationDomain(data *entity.Registration) *model.RegistrationModel {
	if data == nil {
		return nil
	}

	return &model.RegistrationModel{
		ID:        data.ID,
		PassID:    data.PassID,
		DeviceID:  data.DeviceID,
		CreatedAt: data.CreatedAt,
	}
}
