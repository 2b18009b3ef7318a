package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/auth"
	"github.com/lukk-cs/attribo-backend/internal/http/dto"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type fakeAccountService struct {
	user *models.User
	err  error
}

func (f fakeAccountService) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if username != f.user.Username || password != "secret" {
		return nil, models.ErrUnauthorized
	}
	return f.user, nil
}

func (f fakeAccountService) GetUser(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeSessionRevoker struct {
	revoked []*auth.Claims
	err     error
}

func (f *fakeSessionRevoker) Revoke(_ context.Context, claims *auth.Claims) error {
	f.revoked = append(f.revoked, claims)
	return f.err
}

func newAccountApp(svc AccountService, revoker SessionRevoker) *fiber.App {
	h := NewAccountHandler(svc, revoker, "jwt-secret", time.Hour, zap.NewNop())
	return newTestApp(func(r fiber.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/session", h.Session)
	})
}

var alice = &models.User{ID: testCreator, Username: "alice", PasswordHash: "$2a$10$hash"}

func TestLogin(t *testing.T) {
	app := newAccountApp(fakeAccountService{user: alice}, &fakeSessionRevoker{})

	status, _ := do(t, app, "POST", "/login", `{"username":"alice","password":"secret"}`)
	require.Equal(t, fiber.StatusOK, status)
}

func TestLogin_TokenCarriesCreator(t *testing.T) {
	app := newAccountApp(fakeAccountService{user: alice}, &fakeSessionRevoker{})

	req := `{"username":"alice","password":"secret"}`
	resp, err := app.Test(jsonRequest("POST", "/login", req))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	claims, err := auth.ParseJWT("jwt-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, testCreator, claims.UserID)
	assert.Equal(t, claims.ExpiresAt.Unix(), out.ExpiresAt)

	user, ok := out.User.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, user, "PasswordHash")
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newAccountApp(fakeAccountService{user: alice}, &fakeSessionRevoker{})

	status, env := do(t, app, "POST", "/login", `{"username":"alice","password":"nope"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid credentials", env.Error)
}

func TestLogin_MissingFields(t *testing.T) {
	app := newAccountApp(fakeAccountService{user: alice}, &fakeSessionRevoker{})

	status, _ := do(t, app, "POST", "/login", `{"username":"alice"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLogout(t *testing.T) {
	revoker := &fakeSessionRevoker{}
	app := newAccountApp(fakeAccountService{user: alice}, revoker)

	status, _ := do(t, app, "POST", "/logout", "")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, revoker.revoked, 1)
	assert.Equal(t, testCreator, revoker.revoked[0].UserID)
}

func TestLogout_StoreDown(t *testing.T) {
	revoker := &fakeSessionRevoker{err: errors.New("redis down")}
	app := newAccountApp(fakeAccountService{user: alice}, revoker)

	status, _ := do(t, app, "POST", "/logout", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestSession(t *testing.T) {
	app := newAccountApp(fakeAccountService{user: alice}, &fakeSessionRevoker{})

	status, env := do(t, app, "GET", "/session", "")
	require.Equal(t, fiber.StatusOK, status)

	var u models.User
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.PasswordHash)
}
