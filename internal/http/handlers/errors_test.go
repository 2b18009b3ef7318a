package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", fmt.Errorf("campaign x: %w", models.ErrNotFound), fiber.StatusNotFound, "not found"},
		{"conflict", models.ErrConflict, fiber.StatusConflict, "conflict"},
		{"invalid state", fmt.Errorf("bad ranking: %w", models.ErrInvalidState), fiber.StatusUnprocessableEntity, "bad ranking: invalid state"},
		{"unauthorized", models.ErrUnauthorized, fiber.StatusUnauthorized, "invalid credentials"},
		{"persistence", fmt.Errorf("connection reset: %w", models.ErrPersistence), fiber.StatusInternalServerError, "internal error"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(r fiber.Router) {
				r.Get("/", func(c *fiber.Ctx) error {
					return writeError(c, zap.NewNop(), "test", tt.err)
				})
			})

			status, env := do(t, app, "GET", "/", "")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, env.Error)
			assert.Equal(t, "req-1", env.RequestID)
		})
	}
}

func TestWriteError_StoreConstraintTextStaysInternal(t *testing.T) {
	for _, code := range []string{"23503", "23514"} {
		t.Run(code, func(t *testing.T) {
			storeErr := db.Classify(fmt.Errorf("batch: %w", &pgconn.PgError{
				Code:           code,
				ConstraintName: "participant_wishes_option_id_fkey",
				TableName:      "participant_wishes",
				Message:        `insert or update on table "participant_wishes" violates foreign key constraint`,
			}))
			require.ErrorIs(t, storeErr, models.ErrInvalidState)

			app := newTestApp(func(r fiber.Router) {
				r.Get("/", func(c *fiber.Ctx) error {
					return writeError(c, zap.NewNop(), "update participant", storeErr)
				})
			})

			status, env := do(t, app, "GET", "/", "")
			assert.Equal(t, fiber.StatusUnprocessableEntity, status)
			assert.Equal(t, "constraint violated", env.Error)
			assert.NotContains(t, env.Error, "SQLSTATE")
			assert.NotContains(t, env.Error, "participant_wishes")
		})
	}
}
