package model

import (
	"time"

	"github.com/google/uuid"
)

// PassModel is the GORM-specific struct for the 'passes' table.
// It represents one wallet pass and its mutable data payload.
// updated_at is managed by the use case layer, never by GORM's auto-update,
// because it is the cursor for incremental-update queries.
type PassModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SerialNumber        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PassTypeIdentifier  string         `gorm:"type:varchar(255);not null;index"`
	AuthenticationToken string         `gorm:"type:varchar(255);not null"`
	Klass               string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_passes_generator"`
	GeneratorType       string         `gorm:"type:varchar(255);not null;default:'';uniqueIndex:idx_passes_generator"`
	GeneratorID         string         `gorm:"type:varchar(255);not null;default:'';uniqueIndex:idx_passes_generator"`
	Data                map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (PassModel) TableName() string {
	return "passes"
}
