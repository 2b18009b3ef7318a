package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/auth"
)

const (
	CtxUserID = "user_id"
	CtxClaims = "claims"
)

// TokenRevoker reports whether a token id has been logged out.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func AuthMiddleware(secret string, revoker TokenRevoker, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(secret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		revoked, err := revoker.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			// fail closed
			log.Error("revocation check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "session check unavailable"})
		}
		if revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session ended"})
		}

		c.Locals(CtxUserID, claims.UserID)
		c.Locals(CtxClaims, claims)

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxUserID).(string)
	return id
}

func GetClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(CtxClaims).(*auth.Claims)
	return claims
}
