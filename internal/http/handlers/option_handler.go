package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/http/dto"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type OptionService interface {
	ListForCampaign(ctx context.Context, creatorID, campaignID string) ([]models.Option, error)
	GetByID(ctx context.Context, creatorID, campaignID, optionID string) (*models.Option, error)
	Create(ctx context.Context, creatorID, campaignID string, in models.OptionInput) (*models.Option, error)
	Edit(ctx context.Context, creatorID, campaignID, optionID string, patch models.OptionPatch) (*models.Option, error)
	Delete(ctx context.Context, creatorID, campaignID, optionID string) error
}

type OptionHandler struct {
	optionService OptionService
	log           *zap.Logger
}

func NewOptionHandler(optionService OptionService, log *zap.Logger) *OptionHandler {
	return &OptionHandler{optionService: optionService, log: log}
}

func (h *OptionHandler) CreateOption(c *fiber.Ctx) error {
	var req dto.CreateOptionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	opt, err := h.optionService.Create(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), req.Input())
	if err != nil {
		return writeError(c, h.log, "create option", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: opt})
}

func (h *OptionHandler) ListOptions(c *fiber.Ctx) error {
	opts, err := h.optionService.ListForCampaign(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"))
	if err != nil {
		return writeError(c, h.log, "list options", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: opts})
}

func (h *OptionHandler) GetOption(c *fiber.Ctx) error {
	opt, err := h.optionService.GetByID(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), c.Params("optionId"))
	if err != nil {
		return writeError(c, h.log, "get option", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: opt})
}

func (h *OptionHandler) UpdateOption(c *fiber.Ctx) error {
	var req dto.UpdateOptionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	opt, err := h.optionService.Edit(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), c.Params("optionId"), req.Patch())
	if err != nil {
		return writeError(c, h.log, "update option", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: opt})
}

func (h *OptionHandler) DeleteOption(c *fiber.Ctx) error {
	err := h.optionService.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), c.Params("optionId"))
	if err != nil {
		return writeError(c, h.log, "delete option", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
