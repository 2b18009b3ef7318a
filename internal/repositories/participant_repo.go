package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type ParticipantRepo struct {
	q db.Querier
}

func NewParticipantRepo(q db.Querier) *ParticipantRepo {
	return &ParticipantRepo{q: q}
}

func (r *ParticipantRepo) Create(ctx context.Context, p *models.Participant) error {
	return r.q.QueryRow(ctx, `
		INSERT INTO participants (id, campaign_id, name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, p.ID, p.CampaignID, p.Name, p.Email).Scan(&p.CreatedAt)
}

func (r *ParticipantRepo) GetInCampaign(ctx context.Context, id, campaignID string) (*models.Participant, error) {
	return r.getInCampaign(ctx, id, campaignID, "")
}

// LockInCampaign serializes concurrent ranking replacements of one
// participant; the last commit wins.
func (r *ParticipantRepo) LockInCampaign(ctx context.Context, id, campaignID string) (*models.Participant, error) {
	return r.getInCampaign(ctx, id, campaignID, " FOR UPDATE")
}

func (r *ParticipantRepo) getInCampaign(ctx context.Context, id, campaignID, suffix string) (*models.Participant, error) {
	var p models.Participant
	err := r.q.QueryRow(ctx, `
		SELECT id, campaign_id, name, email, created_at
		FROM participants WHERE id = $1 AND campaign_id = $2`+suffix,
		id, campaignID,
	).Scan(&p.ID, &p.CampaignID, &p.Name, &p.Email, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("participant %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepo) ListByCampaign(ctx context.Context, campaignID string) ([]models.Participant, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, campaign_id, name, email, created_at
		FROM participants WHERE campaign_id = $1
		ORDER BY seq
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.CampaignID, &p.Name, &p.Email, &p.CreatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *ParticipantRepo) Update(ctx context.Context, p *models.Participant) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE participants SET name = $1, email = $2 WHERE id = $3
	`, p.Name, p.Email, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participant %s: %w", p.ID, models.ErrNotFound)
	}
	return nil
}

func (r *ParticipantRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participant %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *ParticipantRepo) DeleteByCampaign(ctx context.Context, campaignID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM participants WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
