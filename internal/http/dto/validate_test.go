package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateCampaign(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		req    CreateCampaignRequest
		fields []string
	}{
		{"valid", CreateCampaignRequest{Name: "Summer", Start: start, End: start.Add(time.Hour)}, nil},
		{"instant campaign", CreateCampaignRequest{Name: "Flash", Start: start, End: start}, nil},
		{"end before start", CreateCampaignRequest{Name: "Summer", Start: start, End: start.Add(-time.Hour)}, []string{"end: gtefield"}},
		{"missing name", CreateCampaignRequest{Start: start, End: start}, []string{"name: required"}},
		{"name too long", CreateCampaignRequest{Name: "abcdefghijklmnopqrstuvwxyz0123456", Start: start, End: start}, []string{"name: max"}},
		{"missing dates", CreateCampaignRequest{Name: "x"}, []string{"start: required", "end: required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.fields, FieldErrors(err))
		})
	}
}

func TestValidateCreateOption(t *testing.T) {
	assert.NoError(t, Validate(CreateOptionRequest{Name: "A", MinParticipants: 1, MaxParticipants: 1}))
	assert.Error(t, Validate(CreateOptionRequest{Name: "A", MinParticipants: 0, MaxParticipants: 3}))

	err := Validate(CreateOptionRequest{Name: "A", MinParticipants: 5, MaxParticipants: 3})
	require.Error(t, err)
	assert.Equal(t, []string{"max_participants: gtefield"}, FieldErrors(err))
}

func TestValidateParticipantRequests(t *testing.T) {
	assert.NoError(t, Validate(CreateParticipantRequest{Name: "Bob", Email: "bob@example.com"}))
	assert.Error(t, Validate(CreateParticipantRequest{Name: "Bob", Email: "not-an-email"}))

	bad := "nope"
	assert.Error(t, Validate(UpdateParticipantRequest{Email: &bad}))
	assert.Error(t, Validate(UpdateParticipantRequest{WishRanking: []string{"a", ""}}))
	assert.NoError(t, Validate(UpdateParticipantRequest{WishRanking: []string{}}))
}

func TestValidateUpdateOption_ZeroPointerChecked(t *testing.T) {
	zero := 0
	assert.Error(t, Validate(UpdateOptionRequest{MinParticipants: &zero}))
	assert.NoError(t, Validate(UpdateOptionRequest{}))
}

func TestUpdateParticipantRequest_RankingPresence(t *testing.T) {
	tests := []struct {
		body    string
		present bool
		length  int
	}{
		{`{"name":"x"}`, false, 0},
		{`{"wish_ranking":null}`, false, 0},
		{`{"wish_ranking":[]}`, true, 0},
		{`{"wish_ranking":["a","b"]}`, true, 2},
	}

	for _, tt := range tests {
		var req UpdateParticipantRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
		patch := req.Patch()
		assert.Equal(t, tt.present, patch.WishRanking != nil, tt.body)
		assert.Len(t, patch.WishRanking, tt.length, tt.body)
	}
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
