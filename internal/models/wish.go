package models

import "fmt"

// Wish is one stored preference: participant ranks option at Rank (1 is
// most preferred). No row means the option is unranked.
type Wish struct {
	ParticipantID string `json:"participant_id"`
	OptionID      string `json:"option_id"`
	Rank          int    `json:"rank"`
}

// RankedOption is an entry of a reconciled wish ranking. Rank numbers are not
// exposed, only position.
type RankedOption struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MinParticipants int    `json:"min_participants"`
	MaxParticipants int    `json:"max_participants"`
}

// Ranked pairs an item with its stored rank. Rank 0 means unranked.
type Ranked[T any] struct {
	Item T
	Rank int
}

// ReconcileRows splits rows into ranked and unranked, keeping row order for
// the unranked ones, and reconciles them.
func ReconcileRows[T any](rows []Ranked[T]) []T {
	ranked := make([]Ranked[T], 0, len(rows))
	unranked := make([]T, 0, len(rows))
	for _, r := range rows {
		if r.Rank > 0 {
			ranked = append(ranked, r)
		} else {
			unranked = append(unranked, r.Item)
		}
	}
	return ReconcileWishRanking(ranked, unranked)
}

// ReconcileWishRanking builds one gap-free order out of sparse ranks.
//
// A slot array of length max(rank) receives every ranked item at rank-1; when
// two items share a rank the later one wins. A single cursor then walks the
// array from 0 and drops each unranked item, in order, into the next empty
// slot, appending once it runs past the end. Slots still empty afterwards
// are removed. Items with a non-positive rank are placed as unranked, ahead
// of the unranked list.
func ReconcileWishRanking[T any](ranked []Ranked[T], unranked []T) []T {
	maxRank := 0
	for _, r := range ranked {
		if r.Rank > maxRank {
			maxRank = r.Rank
		}
	}

	slots := make([]*T, maxRank)
	pending := make([]T, 0, len(unranked))
	for _, r := range ranked {
		if r.Rank < 1 {
			pending = append(pending, r.Item)
			continue
		}
		item := r.Item
		slots[r.Rank-1] = &item
	}
	pending = append(pending, unranked...)

	cursor := 0
	for _, u := range pending {
		for cursor < len(slots) && slots[cursor] != nil {
			cursor++
		}
		item := u
		if cursor < len(slots) {
			slots[cursor] = &item
		} else {
			slots = append(slots, &item)
		}
		cursor++
	}

	out := make([]T, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// BuildWishes turns a complete ranking into wish rows. Every option id must
// belong to the campaign (allowed) and appear once.
func BuildWishes(participantID string, ranking []string, allowed map[string]struct{}) ([]Wish, error) {
	seen := make(map[string]struct{}, len(ranking))
	wishes := make([]Wish, 0, len(ranking))
	for i, optionID := range ranking {
		if _, ok := allowed[optionID]; !ok {
			return nil, fmt.Errorf("option %s is not part of the participant's campaign: %w", optionID, ErrInvalidState)
		}
		if _, dup := seen[optionID]; dup {
			return nil, fmt.Errorf("option %s ranked twice: %w", optionID, ErrInvalidState)
		}
		seen[optionID] = struct{}{}
		wishes = append(wishes, Wish{ParticipantID: participantID, OptionID: optionID, Rank: i + 1})
	}
	return wishes, nil
}
