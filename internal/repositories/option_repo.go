package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type OptionRepo struct {
	q db.Querier
}

func NewOptionRepo(q db.Querier) *OptionRepo {
	return &OptionRepo{q: q}
}

func (r *OptionRepo) Create(ctx context.Context, o *models.Option) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO options (id, campaign_id, name, min_participants, max_participants)
		VALUES ($1, $2, $3, $4, $5)
	`, o.ID, o.CampaignID, o.Name, o.MinParticipants, o.MaxParticipants)
	return err
}

// GetInCampaign returns the option only when it belongs to campaignID.
func (r *OptionRepo) GetInCampaign(ctx context.Context, id, campaignID string) (*models.Option, error) {
	var o models.Option
	err := r.q.QueryRow(ctx, `
		SELECT id, campaign_id, name, min_participants, max_participants
		FROM options WHERE id = $1 AND campaign_id = $2
	`, id, campaignID).Scan(&o.ID, &o.CampaignID, &o.Name, &o.MinParticipants, &o.MaxParticipants)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("option %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByCampaign returns the campaign's options in insertion order.
func (r *OptionRepo) ListByCampaign(ctx context.Context, campaignID string) ([]models.Option, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, campaign_id, name, min_participants, max_participants
		FROM options WHERE campaign_id = $1
		ORDER BY seq
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.CampaignID, &o.Name, &o.MinParticipants, &o.MaxParticipants); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// IDsByCampaign returns the set of option ids owned by campaignID.
func (r *OptionRepo) IDsByCampaign(ctx context.Context, campaignID string) (map[string]struct{}, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM options WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (r *OptionRepo) Update(ctx context.Context, o *models.Option) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE options SET name = $1, min_participants = $2, max_participants = $3
		WHERE id = $4
	`, o.Name, o.MinParticipants, o.MaxParticipants, o.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("option %s: %w", o.ID, models.ErrNotFound)
	}
	return nil
}

func (r *OptionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("option %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *OptionRepo) DeleteByCampaign(ctx context.Context, campaignID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM options WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
