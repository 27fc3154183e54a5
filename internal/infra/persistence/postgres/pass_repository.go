// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passRepository implements the repository.PassRepository interface.
type passRepository struct {
	db *gorm.DB
}

// NewPassRepository is the constructor for passRepository.
func NewPassRepository(db *gorm.DB) repository.PassRepository {
	return &passRepository{
		db: db,
	}
}

// CreatePass persists a new pass.
func (repo *passRepository) CreatePass(ctx context.Context, pass *entity.Pass) error {
	passM := fromPassDomain(pass)

	if err := repo.db.WithContext(ctx).Create(passM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePass
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPassCreationFailed.WrapMessage("missing required pass information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pass")
	}

	pass.ID = passM.ID
	pass.CreatedAt = passM.CreatedAt

	return nil
}

// FindPassBySerial retrieves a pass by its serial number.
func (repo *passRepository) FindPassBySerial(ctx context.Context, serialNumber string) (*entity.Pass, error) {
	var passM model.PassModel

	if err := repo.db.WithContext(ctx).
		Where("serial_number = ?", serialNumber).
		First(&passM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass by serial number")
	}

	return toPassDomain(&passM), nil
}

// FindPassByGenerator retrieves the pass owned by the given application entity.
func (repo *passRepository) FindPassByGenerator(ctx context.Context, klass, generatorType, generatorID string) (*entity.Pass, error) {
	var passM model.PassModel

	if err := repo.db.WithContext(ctx).
		Where("klass = ? AND generator_type = ? AND generator_id = ?", klass, generatorType, generatorID).
		First(&passM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass by generator")
	}

	return toPassDomain(&passM), nil
}

// UpdatePass persists the mutable fields of a pass. Identity fields
// (serial_number, authentication_token) are deliberately not selected.
func (repo *passRepository) UpdatePass(ctx context.Context, pass *entity.Pass) error {
	passM := fromPassDomain(pass)

	result := repo.db.WithContext(ctx).
		Model(&model.PassModel{}).
		Where("id = ?", pass.ID).
		Select("data", "updated_at").
		Updates(passM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pass")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPassNotFound
	}

	return nil
}

// FindPassesForDevice retrieves all passes registered to the device,
// optionally scoped by pass type and filtered to updated_at strictly after since.
func (repo *passRepository) FindPassesForDevice(ctx context.Context, deviceID uuid.UUID, passTypeID string, since *time.Time) ([]*entity.Pass, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PassModel{}).
		Joins("JOIN registrations ON registrations.pass_id = passes.id").
		Where("registrations.device_id = ?", deviceID)

	if passTypeID != "" {
		query = query.Where("passes.pass_type_identifier = ?", passTypeID)
	}
	if since != nil {
		query = query.Where("passes.updated_at > ?", *since)
	}

	var passModels []*model.PassModel
	if err := query.Order("passes.updated_at ASC").Find(&passModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find passes for device")
	}

	passes := make([]*entity.Pass, 0, len(passModels))
	for _, passM := range passModels {
		passes = append(passes, toPassDomain(passM))
	}

	return passes, nil
}

// --- Mapper Functions ---

// toPassDomain converts a GORM PassModel to a domain Pass entity.
func toPassDomain(data *model.PassModel) *entity.Pass {
	if data == nil {
		return nil
	}

	return &entity.Pass{
		ID:                  data.ID,
		SerialNumber:        data.SerialNumber,
		PassTypeIdentifier:  data.PassTypeIdentifier,
		AuthenticationToken: data.AuthenticationToken,
		Klass:               data.Klass,
		GeneratorType:       data.GeneratorType,
		GeneratorID:         data.GeneratorID,
		Data:                data.Data,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromPassDomain converts a domain Pass entity to a GORM PassModel.
func fromPassDomain(data *entity.Pass) *model.PassModel {
	if data == nil {
		return nil
	}

	return &model.PassModel{
		ID:                  data.ID,
		SerialNumber:        data.SerialNumber,
		PassTypeIdentifier:  data.PassTypeIdentifier,
		AuthenticationToken: data.AuthenticationToken,
		Klass:               data.Klass,
		GeneratorType:       data.GeneratorType,
		GeneratorID:         data.GeneratorID,
		Data:                data.Data,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
