package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration links one device to push-update notifications for one pass.
// At most one registration exists per (pass, device) pair.
type Registration struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the registration.
	PassID    uuid.UUID `json:"pass_id"`    // The pass being subscribed to.
	DeviceID  uuid.UUID `json:"device_id"`  // The subscribing device.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the registration was created.
}
