package models

import "time"

// Audit actor types
const (
	ActorTypeUser   = "user"
	ActorTypeSystem = "system"
)

// Audit entity types
const (
	EntityCampaign    = "campaign"
	EntityOption      = "option"
	EntityParticipant = "participant"
	EntityUser        = "user"
)

type AuditLog struct {
	ID          int64     `json:"id"`
	ActorUserID *string   `json:"actor_user_id,omitempty"`
	ActorType   string    `json:"actor_type"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    *string   `json:"entity_id,omitempty"`
	Meta        any       `json:"meta,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
