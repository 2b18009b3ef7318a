package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
	"github.com/lukk-cs/attribo-backend/internal/repositories"
)

type ParticipantService struct {
	gw        *db.Gateway
	integrity *Integrity
	log       *zap.Logger
}

func NewParticipantService(gw *db.Gateway, integrity *Integrity, log *zap.Logger) *ParticipantService {
	return &ParticipantService{gw: gw, integrity: integrity, log: log}
}

func (s *ParticipantService) ListForCampaign(ctx context.Context, creatorID, campaignID string) ([]models.Participant, error) {
	var ps []models.Participant
	err := s.gw.WithSnapshot(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		var err error
		ps, err = repositories.NewParticipantRepo(q).ListByCampaign(ctx, campaignID)
		return err
	})
	return ps, err
}

// GetView returns the participant with a gap-free ranking over every option
// of the campaign: ranked options first in rank order, then the unranked
// ones in the order they were added to the campaign.
func (s *ParticipantService) GetView(ctx context.Context, creatorID, campaignID, participantID string) (*models.ParticipantView, error) {
	var view *models.ParticipantView
	err := s.gw.WithSnapshot(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		p, err := repositories.NewParticipantRepo(q).GetInCampaign(ctx, participantID, campaignID)
		if err != nil {
			return err
		}
		rows, err := repositories.NewWishRepo(q).RankingRows(ctx, participantID, campaignID)
		if err != nil {
			return err
		}

		view = &models.ParticipantView{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			WishRanking: models.ReconcileRows(rows),
		}
		return nil
	})
	return view, err
}

func (s *ParticipantService) Create(ctx context.Context, creatorID, campaignID string, in models.ParticipantInput) (*models.Participant, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var p models.Participant
	_, err := withFreshID(func(id string) error {
		return s.gw.WithTx(ctx, func(q db.Querier) error {
			if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
				return err
			}
			p = models.Participant{
				ID:         id,
				CampaignID: campaignID,
				Name:       in.Name,
				Email:      in.Email,
			}
			if err := repositories.NewParticipantRepo(q).Create(ctx, &p); err != nil {
				return err
			}
			return audit(ctx, q, creatorID, "participant_created", models.EntityParticipant, id, map[string]any{"campaign_id": campaignID})
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("participant created", zap.String("participant_id", p.ID), zap.String("campaign_id", campaignID))
	return &p, nil
}

// Edit updates name and email and, when patch.WishRanking is non-nil,
// replaces the participant's whole ranking. The ranking is checked against
// the campaign's options before anything is written, and the participant
// row stays locked until commit so concurrent edits apply one after another.
func (s *ParticipantService) Edit(ctx context.Context, creatorID, campaignID, participantID string, patch models.ParticipantPatch) (*models.Participant, error) {
	var p *models.Participant
	err := s.gw.WithTx(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}

		repo := repositories.NewParticipantRepo(q)
		var err error
		if p, err = repo.LockInCampaign(ctx, participantID, campaignID); err != nil {
			return err
		}
		if err := patch.Apply(p); err != nil {
			return err
		}

		var wishes []models.Wish
		if patch.WishRanking != nil {
			allowed, err := repositories.NewOptionRepo(q).IDsByCampaign(ctx, campaignID)
			if err != nil {
				return err
			}
			if wishes, err = models.BuildWishes(participantID, patch.WishRanking, allowed); err != nil {
				return err
			}
		}

		if patch.Name != nil || patch.Email != nil {
			if err := repo.Update(ctx, p); err != nil {
				return err
			}
		}

		meta := map[string]any{}
		if patch.WishRanking != nil {
			wishRepo := repositories.NewWishRepo(q)
			if _, err := wishRepo.DeleteByParticipant(ctx, participantID); err != nil {
				return err
			}
			if err := wishRepo.InsertAll(ctx, wishes); err != nil {
				return err
			}
			meta["ranked"] = len(wishes)
		}
		return audit(ctx, q, creatorID, "participant_updated", models.EntityParticipant, participantID, meta)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("participant updated",
		zap.String("participant_id", participantID),
		zap.Bool("ranking_replaced", patch.WishRanking != nil),
	)
	return p, nil
}

func (s *ParticipantService) Delete(ctx context.Context, creatorID, campaignID, participantID string) error {
	var res CascadeResult
	err := s.gw.WithTx(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		if _, err := repositories.NewParticipantRepo(q).LockInCampaign(ctx, participantID, campaignID); err != nil {
			return err
		}

		var err error
		if res, err = s.integrity.DeleteParticipant(ctx, q, participantID); err != nil {
			return err
		}
		return audit(ctx, q, creatorID, "participant_deleted", models.EntityParticipant, participantID, map[string]any{"wishes": res.Wishes})
	})
	if err != nil {
		return err
	}

	res.record()
	s.log.Info("participant deleted", zap.String("participant_id", participantID))
	return nil
}
