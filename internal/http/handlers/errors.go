package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/http/dto"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

// writeError maps a service error onto a status code. Anything outside the
// known taxonomy is logged and reported as an opaque internal error.
func writeError(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)

	status, msg := fiber.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, models.ErrNotFound):
		status, msg = fiber.StatusNotFound, "not found"
	case errors.Is(err, models.ErrConflict):
		status, msg = fiber.StatusConflict, "conflict"
	case errors.Is(err, models.ErrInvalidState):
		status, msg = fiber.StatusUnprocessableEntity, err.Error()
		// constraint violations raised by the store carry table and
		// constraint names in their text
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			msg = "constraint violated"
			log.Warn(op+" rejected by store", zap.String("request_id", reqID), zap.Error(err))
		}
	case errors.Is(err, models.ErrUnauthorized):
		status, msg = fiber.StatusUnauthorized, "invalid credentials"
	default:
		log.Error(op+" failed", zap.String("request_id", reqID), zap.Error(err))
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, RequestID: reqID})
}

// parseBody decodes and validates the request body into req. It writes the
// 400 response itself and returns false when the body is unusable.
func parseBody(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := dto.Validate(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:  "validation failed",
			Fields: dto.FieldErrors(err),
		})
	}
	return true, nil
}
