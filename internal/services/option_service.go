package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
	"github.com/lukk-cs/attribo-backend/internal/repositories"
)

// OptionService manages the options of a campaign. Every call goes through
// the owning campaign first, so an option is only reachable by the creator
// of its campaign and only under that campaign's id.
type OptionService struct {
	gw        *db.Gateway
	integrity *Integrity
	log       *zap.Logger
}

func NewOptionService(gw *db.Gateway, integrity *Integrity, log *zap.Logger) *OptionService {
	return &OptionService{gw: gw, integrity: integrity, log: log}
}

func (s *OptionService) ListForCampaign(ctx context.Context, creatorID, campaignID string) ([]models.Option, error) {
	var opts []models.Option
	err := s.gw.WithSnapshot(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		var err error
		opts, err = repositories.NewOptionRepo(q).ListByCampaign(ctx, campaignID)
		return err
	})
	return opts, err
}

func (s *OptionService) GetByID(ctx context.Context, creatorID, campaignID, optionID string) (*models.Option, error) {
	var o *models.Option
	err := s.gw.WithSnapshot(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		var err error
		o, err = repositories.NewOptionRepo(q).GetInCampaign(ctx, optionID, campaignID)
		return err
	})
	return o, err
}

func (s *OptionService) Create(ctx context.Context, creatorID, campaignID string, in models.OptionInput) (*models.Option, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var o models.Option
	_, err := withFreshID(func(id string) error {
		return s.gw.WithTx(ctx, func(q db.Querier) error {
			if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
				return err
			}
			o = models.Option{
				ID:              id,
				CampaignID:      campaignID,
				Name:            in.Name,
				MinParticipants: in.MinParticipants,
				MaxParticipants: in.MaxParticipants,
			}
			if err := repositories.NewOptionRepo(q).Create(ctx, &o); err != nil {
				return err
			}
			return audit(ctx, q, creatorID, "option_created", models.EntityOption, id, map[string]any{"campaign_id": campaignID})
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("option created", zap.String("option_id", o.ID), zap.String("campaign_id", campaignID))
	return &o, nil
}

func (s *OptionService) Edit(ctx context.Context, creatorID, campaignID, optionID string, patch models.OptionPatch) (*models.Option, error) {
	var o *models.Option
	err := s.gw.WithTx(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}

		repo := repositories.NewOptionRepo(q)
		var err error
		if o, err = repo.GetInCampaign(ctx, optionID, campaignID); err != nil {
			return err
		}
		if err := patch.Apply(o); err != nil {
			return err
		}
		if err := repo.Update(ctx, o); err != nil {
			return err
		}
		return audit(ctx, q, creatorID, "option_updated", models.EntityOption, optionID, nil)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("option updated", zap.String("option_id", optionID))
	return o, nil
}

// Delete removes the option and every wish that ranks it.
func (s *OptionService) Delete(ctx context.Context, creatorID, campaignID, optionID string) error {
	var res CascadeResult
	err := s.gw.WithTx(ctx, func(q db.Querier) error {
		if _, err := repositories.NewCampaignRepo(q).GetOwned(ctx, campaignID, creatorID); err != nil {
			return err
		}
		if _, err := repositories.NewOptionRepo(q).GetInCampaign(ctx, optionID, campaignID); err != nil {
			return err
		}

		var err error
		if res, err = s.integrity.DeleteOption(ctx, q, optionID); err != nil {
			return err
		}
		return audit(ctx, q, creatorID, "option_deleted", models.EntityOption, optionID, map[string]any{"wishes": res.Wishes})
	})
	if err != nil {
		return err
	}

	res.record()
	s.log.Info("option deleted", zap.String("option_id", optionID), zap.Int64("wishes", res.Wishes))
	return nil
}
