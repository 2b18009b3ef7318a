package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/models"
)

type fakeCampaignService struct {
	creatorID string
	input     models.CampaignInput
	patch     models.CampaignPatch
	deleted   string
	err       error
}

func (f *fakeCampaignService) ListForCreator(_ context.Context, creatorID string) ([]models.CampaignSummary, error) {
	f.creatorID = creatorID
	return []models.CampaignSummary{{ID: "a", Name: "Alpha", Status: models.CampaignStatusActive}}, f.err
}

func (f *fakeCampaignService) GetDetail(_ context.Context, creatorID, campaignID string) (*models.CampaignDetail, error) {
	f.creatorID = creatorID
	if f.err != nil {
		return nil, f.err
	}
	return &models.CampaignDetail{ID: campaignID, MinParticipants: 3, MaxParticipants: 8}, nil
}

func (f *fakeCampaignService) Create(_ context.Context, creatorID string, in models.CampaignInput) (*models.Campaign, error) {
	f.creatorID, f.input = creatorID, in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Campaign{ID: "new", Name: in.Name, CreatorID: creatorID, Start: in.Start, End: in.End}, nil
}

func (f *fakeCampaignService) Edit(_ context.Context, creatorID, campaignID string, patch models.CampaignPatch) (*models.Campaign, error) {
	f.creatorID, f.patch = creatorID, patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.Campaign{ID: campaignID}, nil
}

func (f *fakeCampaignService) Delete(_ context.Context, creatorID, campaignID string) error {
	f.creatorID, f.deleted = creatorID, campaignID
	return f.err
}

func newCampaignApp(svc CampaignService) *fiber.App {
	h := NewCampaignHandler(svc, zap.NewNop())
	return newTestApp(func(r fiber.Router) {
		r.Get("/campaigns", h.ListCampaigns)
		r.Post("/campaigns", h.CreateCampaign)
		r.Get("/campaigns/:campaignId", h.GetCampaign)
		r.Put("/campaigns/:campaignId", h.UpdateCampaign)
		r.Delete("/campaigns/:campaignId", h.DeleteCampaign)
	})
}

func TestCreateCampaign(t *testing.T) {
	svc := &fakeCampaignService{}
	app := newCampaignApp(svc)

	status, env := do(t, app, "POST", "/campaigns",
		`{"name":"Summer","start":"2024-06-01T00:00:00Z","end":"2024-06-30T00:00:00Z"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.OK)
	assert.Equal(t, testCreator, svc.creatorID)
	assert.Equal(t, "Summer", svc.input.Name)
	assert.True(t, svc.input.End.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))
}

func TestCreateCampaign_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"end before start", `{"name":"x","start":"2024-06-02T00:00:00Z","end":"2024-06-01T00:00:00Z"}`},
		{"missing name", `{"start":"2024-06-01T00:00:00Z","end":"2024-06-02T00:00:00Z"}`},
		{"bad date", `{"name":"x","start":"yesterday","end":"2024-06-02T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCampaignService{}
			status, _ := do(t, newCampaignApp(svc), "POST", "/campaigns", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Empty(t, svc.creatorID, "service must not be called")
		})
	}
}

func TestGetCampaign(t *testing.T) {
	status, env := do(t, newCampaignApp(&fakeCampaignService{}), "GET", "/campaigns/abc", "")
	require.Equal(t, fiber.StatusOK, status)

	var detail models.CampaignDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "abc", detail.ID)
	assert.Equal(t, 3, detail.MinParticipants)
	assert.Equal(t, 8, detail.MaxParticipants)
}

func TestGetCampaign_NotFound(t *testing.T) {
	status, env := do(t, newCampaignApp(&fakeCampaignService{err: models.ErrNotFound}), "GET", "/campaigns/abc", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "not found", env.Error)
}

func TestUpdateCampaign_PartialPatch(t *testing.T) {
	svc := &fakeCampaignService{}
	status, _ := do(t, newCampaignApp(svc), "PUT", "/campaigns/abc", `{"name":"Renamed","total_min_places":2}`)
	require.Equal(t, fiber.StatusOK, status)

	require.NotNil(t, svc.patch.Name)
	assert.Equal(t, "Renamed", *svc.patch.Name)
	assert.Nil(t, svc.patch.Start)
	assert.Nil(t, svc.patch.End)
	require.NotNil(t, svc.patch.TotalMinPlaces)
	assert.Equal(t, 2, *svc.patch.TotalMinPlaces)
}

func TestUpdateCampaign_InvalidMerge(t *testing.T) {
	svc := &fakeCampaignService{err: models.ErrInvalidState}
	status, _ := do(t, newCampaignApp(svc), "PUT", "/campaigns/abc", `{"end":"2000-01-01T00:00:00Z"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestDeleteCampaign(t *testing.T) {
	svc := &fakeCampaignService{}
	status, env := do(t, newCampaignApp(svc), "DELETE", "/campaigns/abc", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.OK)
	assert.Equal(t, "abc", svc.deleted)
}

func TestListCampaigns(t *testing.T) {
	svc := &fakeCampaignService{}
	status, env := do(t, newCampaignApp(svc), "GET", "/campaigns", "")
	require.Equal(t, fiber.StatusOK, status)

	var list []models.CampaignSummary
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, models.CampaignStatusActive, list[0].Status)
	assert.Equal(t, testCreator, svc.creatorID)
}
