package repositories

import (
	"context"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type AuditRepo struct {
	q db.Querier
}

func NewAuditRepo(q db.Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

func (r *AuditRepo) Log(ctx context.Context, entry models.AuditLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO audit_log (actor_user_id, actor_type, action, entity_type, entity_id, meta)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ActorUserID, entry.ActorType, entry.Action, entry.EntityType, entry.EntityID, entry.Meta)
	return err
}
