package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/http/dto"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type ParticipantService interface {
	ListForCampaign(ctx context.Context, creatorID, campaignID string) ([]models.Participant, error)
	GetView(ctx context.Context, creatorID, campaignID, participantID string) (*models.ParticipantView, error)
	Create(ctx context.Context, creatorID, campaignID string, in models.ParticipantInput) (*models.Participant, error)
	Edit(ctx context.Context, creatorID, campaignID, participantID string, patch models.ParticipantPatch) (*models.Participant, error)
	Delete(ctx context.Context, creatorID, campaignID, participantID string) error
}

type ParticipantHandler struct {
	participantService ParticipantService
	log                *zap.Logger
}

func NewParticipantHandler(participantService ParticipantService, log *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService, log: log}
}

func (h *ParticipantHandler) CreateParticipant(c *fiber.Ctx) error {
	var req dto.CreateParticipantRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	p, err := h.participantService.Create(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), req.Input())
	if err != nil {
		return writeError(c, h.log, "create participant", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: p})
}

func (h *ParticipantHandler) ListParticipants(c *fiber.Ctx) error {
	ps, err := h.participantService.ListForCampaign(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"))
	if err != nil {
		return writeError(c, h.log, "list participants", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: ps})
}

// GetParticipant returns the participant with the full ranking over the
// campaign's options.
func (h *ParticipantHandler) GetParticipant(c *fiber.Ctx) error {
	view, err := h.participantService.GetView(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), c.Params("participantId"))
	if err != nil {
		return writeError(c, h.log, "get participant", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: view})
}

func (h *ParticipantHandler) UpdateParticipant(c *fiber.Ctx) error {
	var req dto.UpdateParticipantRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	patch := req.Patch()
	if patch.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nothing to update"})
	}

	p, err := h.participantService.Edit(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), c.Params("participantId"), patch)
	if err != nil {
		return writeError(c, h.log, "update participant", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: p})
}

func (h *ParticipantHandler) DeleteParticipant(c *fiber.Ctx) error {
	err := h.participantService.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("campaignId"), c.Params("participantId"))
	if err != nil {
		return writeError(c, h.log, "delete participant", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
