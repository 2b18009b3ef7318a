package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/auth"
	"github.com/lukk-cs/attribo-backend/internal/http/dto"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type AccountService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type SessionRevoker interface {
	Revoke(ctx context.Context, claims *auth.Claims) error
}

type AccountHandler struct {
	accountService AccountService
	revoker        SessionRevoker
	jwtSecret      string
	jwtExpiration  time.Duration
	log            *zap.Logger
}

func NewAccountHandler(
	accountService AccountService,
	revoker SessionRevoker,
	jwtSecret string,
	jwtExpiration time.Duration,
	log *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		revoker:        revoker,
		jwtSecret:      jwtSecret,
		jwtExpiration:  jwtExpiration,
		log:            log,
	}
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	user, err := h.accountService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return writeError(c, h.log, "login", err)
	}

	token, claims, err := auth.GenerateJWT(h.jwtSecret, user.ID, user.Username, h.jwtExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
		User:      user,
	})
}

func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "no session"})
	}
	if err := h.revoker.Revoke(c.UserContext(), claims); err != nil {
		return writeError(c, h.log, "logout", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// Session returns the creator behind the bearer token.
func (h *AccountHandler) Session(c *fiber.Ctx) error {
	user, err := h.accountService.GetUser(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, h.log, "session", err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}
