package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
	"github.com/lukk-cs/attribo-backend/internal/repositories"
)

type CampaignService struct {
	gw        *db.Gateway
	integrity *Integrity
	now       Clock
	log       *zap.Logger
}

func NewCampaignService(gw *db.Gateway, integrity *Integrity, now Clock, log *zap.Logger) *CampaignService {
	if now == nil {
		now = time.Now
	}
	return &CampaignService{
		gw:        gw,
		integrity: integrity,
		now:       now,
		log:       log,
	}
}

// ListForCreator returns the creator's campaigns with their status as of now.
func (s *CampaignService) ListForCreator(ctx context.Context, creatorID string) ([]models.CampaignSummary, error) {
	summaries, err := repositories.NewCampaignRepo(s.gw.Querier()).ListSummaries(ctx, creatorID)
	if err != nil {
		return nil, db.Classify(err)
	}

	now := s.now()
	for i := range summaries {
		summaries[i].Status = models.StatusAt(now, summaries[i].Start, summaries[i].End)
	}
	return summaries, nil
}

func (s *CampaignService) GetDetail(ctx context.Context, creatorID, campaignID string) (*models.CampaignDetail, error) {
	d, err := repositories.NewCampaignRepo(s.gw.Querier()).GetDetail(ctx, campaignID, creatorID)
	if err != nil {
		return nil, db.Classify(err)
	}
	d.Status = models.StatusAt(s.now(), d.Start, d.End)
	return d, nil
}

func (s *CampaignService) Create(ctx context.Context, creatorID string, in models.CampaignInput) (*models.Campaign, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var c models.Campaign
	_, err := withFreshID(func(id string) error {
		return s.gw.WithTx(ctx, func(q db.Querier) error {
			c = models.Campaign{
				ID:        id,
				Name:      in.Name,
				CreatorID: creatorID,
				Start:     in.Start,
				End:       in.End,
			}
			if err := repositories.NewCampaignRepo(q).Create(ctx, &c); err != nil {
				return err
			}
			return audit(ctx, q, creatorID, "campaign_created", models.EntityCampaign, id, nil)
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("campaign created", zap.String("campaign_id", c.ID), zap.String("creator_id", creatorID))
	return &c, nil
}

func (s *CampaignService) Edit(ctx context.Context, creatorID, campaignID string, patch models.CampaignPatch) (*models.Campaign, error) {
	var c *models.Campaign
	err := s.gw.WithTx(ctx, func(q db.Querier) error {
		repo := repositories.NewCampaignRepo(q)

		var err error
		if c, err = repo.LockOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		if err := patch.Apply(c); err != nil {
			return err
		}
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		return audit(ctx, q, creatorID, "campaign_updated", models.EntityCampaign, campaignID, nil)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("campaign updated", zap.String("campaign_id", campaignID))
	return c, nil
}

// Delete removes the campaign together with its options, participants and
// wishes. Nothing is removed unless all of it is.
func (s *CampaignService) Delete(ctx context.Context, creatorID, campaignID string) error {
	var res CascadeResult
	err := s.gw.WithTx(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).LockOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}

		var err error
		if res, err = s.integrity.DeleteCampaign(ctx, q, campaignID); err != nil {
			return err
		}
		return audit(ctx, q, creatorID, "campaign_deleted", models.EntityCampaign, campaignID, map[string]any{
			"options":      res.Options,
			"participants": res.Participants,
			"wishes":       res.Wishes,
		})
	})
	if err != nil {
		return err
	}

	res.record()
	s.log.Info("campaign deleted",
		zap.String("campaign_id", campaignID),
		zap.Int64("options", res.Options),
		zap.Int64("participants", res.Participants),
	)
	return nil
}
