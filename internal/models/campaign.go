package models

import (
	"fmt"
	"time"
)

type CampaignStatus string

// Campaign statuses
const (
	CampaignStatusPending  CampaignStatus = "pending"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusFinished CampaignStatus = "finished"
)

// StatusAt derives the lifecycle status of a campaign running over
// [start, end]. Both bounds are inclusive.
func StatusAt(now, start, end time.Time) CampaignStatus {
	switch {
	case now.Before(start):
		return CampaignStatusPending
	case now.After(end):
		return CampaignStatusFinished
	default:
		return CampaignStatusActive
	}
}

type Campaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatorID string    `json:"creator_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CampaignSummary struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Start        time.Time      `json:"start"`
	End          time.Time      `json:"end"`
	Status       CampaignStatus `json:"status"`
	Participants int            `json:"participants"`
	Options      int            `json:"options"`
}

type CampaignDetail struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Start           time.Time      `json:"start"`
	End             time.Time      `json:"end"`
	Status          CampaignStatus `json:"status"`
	MinParticipants int            `json:"min_participants"`
	MaxParticipants int            `json:"max_participants"`
	Participants    int            `json:"participants"`
	Options         int            `json:"options"`
	WishRankings    int            `json:"wish_rankings"` // participants with at least one ranked wish
}

type CampaignInput struct {
	Name  string
	Start time.Time
	End   time.Time
}

func (in CampaignInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("campaign name is empty: %w", ErrInvalidState)
	}
	if in.End.Before(in.Start) {
		return fmt.Errorf("campaign ends before it starts: %w", ErrInvalidState)
	}
	return nil
}

// CampaignPatch is a partial campaign update. Nil fields are left untouched.
// TotalMinPlaces and TotalMaxPlaces are range-checked but not stored: a
// campaign's capacity is always the sum over its options.
type CampaignPatch struct {
	Name           *string
	Start          *time.Time
	End            *time.Time
	TotalMinPlaces *int
	TotalMaxPlaces *int
}

func (p CampaignPatch) IsEmpty() bool {
	return p.Name == nil && p.Start == nil && p.End == nil &&
		p.TotalMinPlaces == nil && p.TotalMaxPlaces == nil
}

// Apply merges the patch into c and checks the result.
func (p CampaignPatch) Apply(c *Campaign) error {
	merged := *c
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Start != nil {
		merged.Start = *p.Start
	}
	if p.End != nil {
		merged.End = *p.End
	}

	if err := (CampaignInput{Name: merged.Name, Start: merged.Start, End: merged.End}).Validate(); err != nil {
		return err
	}
	if p.TotalMinPlaces != nil && *p.TotalMinPlaces < 1 {
		return fmt.Errorf("total min places must be positive: %w", ErrInvalidState)
	}
	if p.TotalMaxPlaces != nil && *p.TotalMaxPlaces < 1 {
		return fmt.Errorf("total max places must be positive: %w", ErrInvalidState)
	}
	if p.TotalMinPlaces != nil && p.TotalMaxPlaces != nil && *p.TotalMaxPlaces < *p.TotalMinPlaces {
		return fmt.Errorf("total max places below total min places: %w", ErrInvalidState)
	}

	*c = merged
	return nil
}
