// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pass represents one logical wallet pass tracked by the service.
type Pass struct {
	ID                  uuid.UUID      `json:"id"`                    // The Global Unique Identifier (GUID) for the pass.
	SerialNumber        string         `json:"serial_number"`         // Opaque unique serial, generated once and never regenerated.
	PassTypeIdentifier  string         `json:"pass_type_identifier"`  // Apple-assigned pass type, also the APNs push topic.
	AuthenticationToken string         `json:"-"`                     // Bearer secret for the wallet web-service protocol. Never serialized.
	Klass               string         `json:"klass"`                 // Pass class the generator renders (coupon, ticket, ...).
	GeneratorType       string         `json:"generator_type"`        // Type name of the owning application entity, empty for standalone passes.
	GeneratorID         string         `json:"generator_id"`          // ID of the owning application entity.
	Data                map[string]any `json:"data"`                  // Application-defined fields merged into the pass payload.
	CreatedAt           time.Time      `json:"created_at"`            // Timestamp of pass creation.
	UpdatedAt           time.Time      `json:"updated_at"`            // Advanced on every content mutation; basis of incremental-update queries.
}
