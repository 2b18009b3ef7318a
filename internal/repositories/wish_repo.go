package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type WishRepo struct {
	q db.Querier
}

func NewWishRepo(q db.Querier) *WishRepo {
	return &WishRepo{q: q}
}

// RankingRows returns every option of campaignID left-joined with the
// participant's wishes, in option insertion order. Unranked options carry
// rank 0.
func (r *WishRepo) RankingRows(ctx context.Context, participantID, campaignID string) ([]models.Ranked[models.RankedOption], error) {
	rows, err := r.q.Query(ctx, `
		SELECT o.id, o.name, o.min_participants, o.max_participants, COALESCE(w.rank, 0)
		FROM options o
		LEFT JOIN participant_wishes w ON w.option_id = o.id AND w.participant_id = $1
		WHERE o.campaign_id = $2
		ORDER BY o.seq
	`, participantID, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ranked[models.RankedOption]
	for rows.Next() {
		var row models.Ranked[models.RankedOption]
		if err := rows.Scan(&row.Item.ID, &row.Item.Name, &row.Item.MinParticipants, &row.Item.MaxParticipants, &row.Rank); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// InsertAll writes wishes in one round trip.
func (r *WishRepo) InsertAll(ctx context.Context, wishes []models.Wish) error {
	if len(wishes) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, w := range wishes {
		batch.Queue(`
			INSERT INTO participant_wishes (participant_id, option_id, rank)
			VALUES ($1, $2, $3)
		`, w.ParticipantID, w.OptionID, w.Rank)
	}
	return r.q.SendBatch(ctx, batch).Close()
}

func (r *WishRepo) DeleteByParticipant(ctx context.Context, participantID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM participant_wishes WHERE participant_id = $1`, participantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *WishRepo) DeleteByOption(ctx context.Context, optionID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM participant_wishes WHERE option_id = $1`, optionID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByCampaign removes every wish whose participant or option belongs
// to campaignID.
func (r *WishRepo) DeleteByCampaign(ctx context.Context, campaignID string) (int64, error) {
	byParticipant, err := r.q.Exec(ctx, `
		DELETE FROM participant_wishes w
		USING participants p
		WHERE w.participant_id = p.id AND p.campaign_id = $1
	`, campaignID)
	if err != nil {
		return 0, err
	}
	byOption, err := r.q.Exec(ctx, `
		DELETE FROM participant_wishes w
		USING options o
		WHERE w.option_id = o.id AND o.campaign_id = $1
	`, campaignID)
	if err != nil {
		return 0, err
	}
	return byParticipant.RowsAffected() + byOption.RowsAffected(), nil
}
