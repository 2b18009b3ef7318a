package models

import "fmt"

type Option struct {
	ID              string `json:"id"`
	CampaignID      string `json:"campaign_id"`
	Name            string `json:"name"`
	MinParticipants int    `json:"min_participants"`
	MaxParticipants int    `json:"max_participants"`
}

type OptionInput struct {
	Name            string
	MinParticipants int
	MaxParticipants int
}

func (in OptionInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("option name is empty: %w", ErrInvalidState)
	}
	if in.MinParticipants < 1 {
		return fmt.Errorf("option min participants must be positive: %w", ErrInvalidState)
	}
	if in.MaxParticipants < in.MinParticipants {
		return fmt.Errorf("option max participants below min participants: %w", ErrInvalidState)
	}
	return nil
}

type OptionPatch struct {
	Name            *string
	MinParticipants *int
	MaxParticipants *int
}

func (p OptionPatch) IsEmpty() bool {
	return p.Name == nil && p.MinParticipants == nil && p.MaxParticipants == nil
}

// Apply merges the patch into o. The merged bounds must still hold, so
// raising min above the stored max without also raising max is rejected.
func (p OptionPatch) Apply(o *Option) error {
	merged := *o
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.MinParticipants != nil {
		merged.MinParticipants = *p.MinParticipants
	}
	if p.MaxParticipants != nil {
		merged.MaxParticipants = *p.MaxParticipants
	}

	in := OptionInput{Name: merged.Name, MinParticipants: merged.MinParticipants, MaxParticipants: merged.MaxParticipants}
	if err := in.Validate(); err != nil {
		return err
	}

	*o = merged
	return nil
}
