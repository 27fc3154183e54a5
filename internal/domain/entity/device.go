package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents one wallet-app installation capable of receiving pushes.
type Device struct {
	ID         uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	Identifier string    `json:"identifier"` // Opaque device library identifier supplied by the client.
	PushToken  string    `json:"push_token"` // Current APNs device token; may rotate on re-registration.
	CreatedAt  time.Time `json:"created_at"` // Timestamp of first registration.
	UpdatedAt  time.Time `json:"updated_at"` // Timestamp of the last modification.
}
