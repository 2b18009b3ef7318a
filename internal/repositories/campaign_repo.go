package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type CampaignRepo struct {
	q db.Querier
}

func NewCampaignRepo(q db.Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.q.QueryRow(ctx, `
		INSERT INTO campaigns (id, name, creator_id, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.CreatorID, c.Start, c.End,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// GetOwned returns the campaign only if creatorID owns it. A campaign owned
// by someone else is reported as not found.
func (r *CampaignRepo) GetOwned(ctx context.Context, id, creatorID string) (*models.Campaign, error) {
	return r.getOwned(ctx, id, creatorID, "")
}

// LockOwned is GetOwned taking a row lock until the transaction ends.
func (r *CampaignRepo) LockOwned(ctx context.Context, id, creatorID string) (*models.Campaign, error) {
	return r.getOwned(ctx, id, creatorID, " FOR UPDATE")
}

func (r *CampaignRepo) getOwned(ctx context.Context, id, creatorID, suffix string) (*models.Campaign, error) {
	var c models.Campaign
	err := r.q.QueryRow(ctx, `
		SELECT id, name, creator_id, start_at, end_at, created_at, updated_at
		FROM campaigns WHERE id = $1 AND creator_id = $2`+suffix,
		id, creatorID,
	).Scan(&c.ID, &c.Name, &c.CreatorID, &c.Start, &c.End, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	err := r.q.QueryRow(ctx, `
		UPDATE campaigns SET name = $1, start_at = $2, end_at = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`, c.Name, c.Start, c.End, c.ID).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("campaign %s: %w", c.ID, models.ErrNotFound)
	}
	return err
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListSummaries returns every campaign of creatorID with its counts. Status
// is left for the caller to derive. No ordering is applied.
func (r *CampaignRepo) ListSummaries(ctx context.Context, creatorID string) ([]models.CampaignSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT c.id, c.name, c.start_at, c.end_at,
		       (SELECT COUNT(DISTINCT p.id) FROM participants p WHERE p.campaign_id = c.id),
		       (SELECT COUNT(*) FROM options o WHERE o.campaign_id = c.id)
		FROM campaigns c
		WHERE c.creator_id = $1
	`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.CampaignSummary{}
	for rows.Next() {
		var s models.CampaignSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Start, &s.End, &s.Participants, &s.Options); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetDetail aggregates a campaign in one statement so every count comes from
// the same snapshot. Scalar subqueries keep the option sums from being
// multiplied by participant and wish rows.
func (r *CampaignRepo) GetDetail(ctx context.Context, id, creatorID string) (*models.CampaignDetail, error) {
	var d models.CampaignDetail
	err := r.q.QueryRow(ctx, `
		SELECT c.id, c.name, c.start_at, c.end_at,
		       COALESCE((SELECT SUM(o.min_participants) FROM options o WHERE o.campaign_id = c.id), 0),
		       COALESCE((SELECT SUM(o.max_participants) FROM options o WHERE o.campaign_id = c.id), 0),
		       (SELECT COUNT(DISTINCT p.id) FROM participants p WHERE p.campaign_id = c.id),
		       (SELECT COUNT(*) FROM options o WHERE o.campaign_id = c.id),
		       (SELECT COUNT(DISTINCT w.participant_id)
		          FROM participant_wishes w
		          JOIN participants p ON p.id = w.participant_id
		         WHERE p.campaign_id = c.id)
		FROM campaigns c
		WHERE c.id = $1 AND c.creator_id = $2
	`, id, creatorID).Scan(&d.ID, &d.Name, &d.Start, &d.End,
		&d.MinParticipants, &d.MaxParticipants, &d.Participants, &d.Options, &d.WishRankings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
