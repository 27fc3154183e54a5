package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is the GORM-specific struct for the 'registrations' table.
// The unique index on (pass_id, device_id) enforces at most one registration
// per pair; concurrent registrations race on it safely.
type RegistrationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PassID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_pass_device"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_pass_device;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}
