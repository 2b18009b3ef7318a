package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/http/dto"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type CampaignService interface {
	ListForCreator(ctx context.Context, creatorID string) ([]models.CampaignSummary, error)
	GetDetail(ctx context.Context, creatorID, campaignID string) (*models.CampaignDetail, error)
	Create(ctx context.Context, creatorID string, in models.CampaignInput) (*models.Campaign, error)
	Edit(ctx context.Context, creatorID, campaignID string, patch models.CampaignPatch) (*models.Campaign, error)
	Delete(ctx context.Context, creatorID, campaignID string) error
}

type CampaignHandler struct {
	campaignService CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	campaign, err := h.campaignService.Create(c.UserContext(), middleware.GetUserID(c), req.Input())
	if err != nil {
		return writeError(c, h.log, "create campaign", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.ListForCreator(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, h.log, "list campaigns", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	detail, err := h.campaignService.GetDetail(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"))
	if err != nil {
		return writeError(c, h.log, "get campaign", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: detail})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	var req dto.UpdateCampaignRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	campaign, err := h.campaignService.Edit(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), req.Patch())
	if err != nil {
		return writeError(c, h.log, "update campaign", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	if err := h.campaignService.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId")); err != nil {
		return writeError(c, h.log, "delete campaign", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
