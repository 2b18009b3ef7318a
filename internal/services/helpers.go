package services

import (
	"context"
	"errors"
	"time"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/ids"
	"github.com/lukk-cs/attribo-backend/internal/models"
	"github.com/lukk-cs/attribo-backend/internal/repositories"
)

// Clock returns the current time. Services read it once per operation.
type Clock func() time.Time

// withFreshID runs insert with a newly generated id, retrying with another
// id when the store reports a uniqueness conflict.
func withFreshID(insert func(id string) error) (string, error) {
	var lastErr error
	for attempt := 0; attempt < ids.MaxAttempts; attempt++ {
		id, err := ids.NewDefault()
		if err != nil {
			return "", err
		}
		lastErr = insert(id)
		if lastErr == nil {
			return id, nil
		}
		if !errors.Is(lastErr, models.ErrConflict) {
			return "", lastErr
		}
	}
	return "", lastErr
}

func audit(ctx context.Context, q db.Querier, actorID, action, entityType, entityID string, meta map[string]any) error {
	entry := models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   models.ActorTypeUser,
		Action:      action,
		EntityType:  entityType,
		EntityID:    &entityID,
	}
	if meta != nil {
		entry.Meta = meta
	}
	return repositories.NewAuditRepo(q).Log(ctx, entry)
}
