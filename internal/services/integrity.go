package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/repositories"
)

var cascadeRowsDeleted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "attribo_cascade_rows_deleted_total",
		Help: "Rows removed by committed cascade deletes, by root entity and table",
	},
	[]string{"root", "table"},
)

// CascadeResult counts the rows a cascade removed.
type CascadeResult struct {
	Root         string
	Wishes       int64
	Options      int64
	Participants int64
}

func (r CascadeResult) record() {
	cascadeRowsDeleted.WithLabelValues(r.Root, "participant_wishes").Add(float64(r.Wishes))
	cascadeRowsDeleted.WithLabelValues(r.Root, "options").Add(float64(r.Options))
	cascadeRowsDeleted.WithLabelValues(r.Root, "participants").Add(float64(r.Participants))
}

// Integrity removes dependent rows before their owner so that no option,
// participant or wish outlives it. Every method runs on the caller's
// transaction; the caller commits or rolls back the whole cascade.
type Integrity struct {
	log *zap.Logger
}

func NewIntegrity(log *zap.Logger) *Integrity {
	return &Integrity{log: log}
}

// DeleteCampaign removes the campaign's wishes (reached through either its
// participants or its options), options, participants and the campaign row.
func (i *Integrity) DeleteCampaign(ctx context.Context, q db.Querier, campaignID string) (CascadeResult, error) {
	res := CascadeResult{Root: "campaign"}
	var err error

	if res.Wishes, err = repositories.NewWishRepo(q).DeleteByCampaign(ctx, campaignID); err != nil {
		return res, fmt.Errorf("delete wishes of campaign %s: %w", campaignID, err)
	}
	if res.Options, err = repositories.NewOptionRepo(q).DeleteByCampaign(ctx, campaignID); err != nil {
		return res, fmt.Errorf("delete options of campaign %s: %w", campaignID, err)
	}
	if res.Participants, err = repositories.NewParticipantRepo(q).DeleteByCampaign(ctx, campaignID); err != nil {
		return res, fmt.Errorf("delete participants of campaign %s: %w", campaignID, err)
	}
	if err := repositories.NewCampaignRepo(q).Delete(ctx, campaignID); err != nil {
		return res, err
	}

	i.log.Debug("campaign cascade staged",
		zap.String("campaign_id", campaignID),
		zap.Int64("wishes", res.Wishes),
		zap.Int64("options", res.Options),
		zap.Int64("participants", res.Participants),
	)
	return res, nil
}

// DeleteOption removes every wish referencing the option, then the option.
func (i *Integrity) DeleteOption(ctx context.Context, q db.Querier, optionID string) (CascadeResult, error) {
	res := CascadeResult{Root: "option"}
	var err error

	if res.Wishes, err = repositories.NewWishRepo(q).DeleteByOption(ctx, optionID); err != nil {
		return res, fmt.Errorf("delete wishes of option %s: %w", optionID, err)
	}
	if err := repositories.NewOptionRepo(q).Delete(ctx, optionID); err != nil {
		return res, err
	}
	res.Options = 1
	return res, nil
}

// DeleteParticipant removes the participant's wishes, then the participant.
func (i *Integrity) DeleteParticipant(ctx context.Context, q db.Querier, participantID string) (CascadeResult, error) {
	res := CascadeResult{Root: "participant"}
	var err error

	if res.Wishes, err = repositories.NewWishRepo(q).DeleteByParticipant(ctx, participantID); err != nil {
		return res, fmt.Errorf("delete wishes of participant %s: %w", participantID, err)
	}
	if err := repositories.NewParticipantRepo(q).Delete(ctx, participantID); err != nil {
		return res, err
	}
	res.Participants = 1
	return res, nil
}
