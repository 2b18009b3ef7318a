package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/auth"
	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
	"github.com/lukk-cs/attribo-backend/internal/repositories"
)

type AccountService struct {
	gw  *db.Gateway
	log *zap.Logger
}

func NewAccountService(gw *db.Gateway, log *zap.Logger) *AccountService {
	return &AccountService{gw: gw, log: log}
}

// Authenticate returns the creator whose credentials match. Unknown
// usernames and wrong passwords both yield ErrUnauthorized.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := repositories.NewUserRepo(s.gw.Querier()).GetByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("login %q: %w", username, models.ErrUnauthorized)
	}
	if err != nil {
		return nil, db.Classify(err)
	}

	ok, err := auth.CheckPassword(u.PasswordHash, password)
	if err != nil {
		s.log.Error("stored password hash unreadable", zap.String("user_id", u.ID), zap.Error(err))
		return nil, fmt.Errorf("login %q: %w", username, models.ErrUnauthorized)
	}
	if !ok {
		return nil, fmt.Errorf("login %q: %w", username, models.ErrUnauthorized)
	}
	return u, nil
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := repositories.NewUserRepo(s.gw.Querier()).GetByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err)
	}
	return u, nil
}

// Register creates a creator account. A taken username is ErrConflict.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", models.ErrInvalidState)
	}
	_, err := repositories.NewUserRepo(s.gw.Querier()).GetByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("username %q taken: %w", username, models.ErrConflict)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, db.Classify(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var u models.User
	_, err = withFreshID(func(id string) error {
		return s.gw.WithTx(ctx, func(q db.Querier) error {
			u = models.User{ID: id, Username: username, PasswordHash: hash}
			if err := repositories.NewUserRepo(q).Create(ctx, &u); err != nil {
				return err
			}
			return repositories.NewAuditRepo(q).Log(ctx, models.AuditLog{
				ActorType:  models.ActorTypeSystem,
				Action:     "user_registered",
				EntityType: models.EntityUser,
				EntityID:   &u.ID,
			})
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", u.ID), zap.String("username", username))
	return &u, nil
}
