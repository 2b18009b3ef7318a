package models

import (
	"fmt"
	"time"
)

type Participant struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

type ParticipantInput struct {
	Name  string
	Email string
}

func (in ParticipantInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("participant name is empty: %w", ErrInvalidState)
	}
	if in.Email == "" {
		return fmt.Errorf("participant email is empty: %w", ErrInvalidState)
	}
	return nil
}

// ParticipantPatch is a partial participant update.
//
// A nil WishRanking leaves stored wishes alone. A non-nil WishRanking, even
// an empty one, replaces every stored wish: entry i gets rank i+1 and options
// left out become unranked.
type ParticipantPatch struct {
	Name        *string
	Email       *string
	WishRanking []string
}

func (p ParticipantPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.WishRanking == nil
}

func (p ParticipantPatch) Apply(pt *Participant) error {
	merged := *pt
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	if err := (ParticipantInput{Name: merged.Name, Email: merged.Email}).Validate(); err != nil {
		return err
	}
	*pt = merged
	return nil
}

// ParticipantView is a participant with its reconciled wish ranking.
type ParticipantView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	WishRanking []RankedOption `json:"wish_ranking"`
}
