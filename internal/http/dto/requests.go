package dto

import (
	"time"

	"github.com/lukk-cs/attribo-backend/internal/models"
)

// Account

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name  string    `json:"name" validate:"required,min=1,max=32"`
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtefield=Start"`
}

func (r CreateCampaignRequest) Input() models.CampaignInput {
	return models.CampaignInput{Name: r.Name, Start: r.Start, End: r.End}
}

// UpdateCampaignRequest changes only the fields that are present. The merged
// dates are checked by the service.
type UpdateCampaignRequest struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=1,max=32"`
	Start          *time.Time `json:"start,omitempty"`
	End            *time.Time `json:"end,omitempty"`
	TotalMinPlaces *int       `json:"total_min_places,omitempty" validate:"omitempty,min=1"`
	TotalMaxPlaces *int       `json:"total_max_places,omitempty" validate:"omitempty,min=1"`
}

func (r UpdateCampaignRequest) Patch() models.CampaignPatch {
	return models.CampaignPatch{
		Name:           r.Name,
		Start:          r.Start,
		End:            r.End,
		TotalMinPlaces: r.TotalMinPlaces,
		TotalMaxPlaces: r.TotalMaxPlaces,
	}
}

// Options

type CreateOptionRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=32"`
	MinParticipants int    `json:"min_participants" validate:"required,min=1"`
	MaxParticipants int    `json:"max_participants" validate:"required,gtefield=MinParticipants"`
}

func (r CreateOptionRequest) Input() models.OptionInput {
	return models.OptionInput{Name: r.Name, MinParticipants: r.MinParticipants, MaxParticipants: r.MaxParticipants}
}

type UpdateOptionRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=32"`
	MinParticipants *int    `json:"min_participants,omitempty" validate:"omitempty,min=1"`
	MaxParticipants *int    `json:"max_participants,omitempty" validate:"omitempty,min=1"`
}

func (r UpdateOptionRequest) Patch() models.OptionPatch {
	return models.OptionPatch{Name: r.Name, MinParticipants: r.MinParticipants, MaxParticipants: r.MaxParticipants}
}

// Participants

type CreateParticipantRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=32"`
	Email string `json:"email" validate:"required,email"`
}

func (r CreateParticipantRequest) Input() models.ParticipantInput {
	return models.ParticipantInput{Name: r.Name, Email: r.Email}
}

// UpdateParticipantRequest: a present wish_ranking (even []) replaces the
// whole ranking; an absent or null one keeps it.
type UpdateParticipantRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=32"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	WishRanking []string `json:"wish_ranking" validate:"omitempty,dive,required"`
}

func (r UpdateParticipantRequest) Patch() models.ParticipantPatch {
	return models.ParticipantPatch{Name: r.Name, Email: r.Email, WishRanking: r.WishRanking}
}
