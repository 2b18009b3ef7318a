package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/config"
	"github.com/lukk-cs/attribo-backend/internal/http/handlers"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Health  HealthChecker
	Counter middleware.Counter
	Revoker middleware.TokenRevoker

	Account     *handlers.AccountHandler
	Campaign    *handlers.CampaignHandler
	Option      *handlers.OptionHandler
	Participant *handlers.ParticipantHandler
}

func SetupRouter(app *fiber.App, cfg *config.Config, log *zap.Logger, d Deps) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))
	app.Use(middleware.MetricsMiddleware())
	if latency := cfg.FakeAPILatency(); latency > 0 {
		log.Info("artificial latency enabled", zap.Duration("latency", latency))
		app.Use(middleware.FakeLatencyMiddleware(latency))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := d.Health.Ping(c.UserContext()); err != nil {
			log.Warn("health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(d.Counter, cfg.RateLimitPerMinute, time.Minute))

	// Account (public)
	api.Post("/account/login", d.Account.Login)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret, d.Revoker, log))

	protected.Post("/account/logout", d.Account.Logout)
	protected.Get("/account/session", d.Account.Session)

	// Campaigns
	protected.Get("/campaigns", d.Campaign.ListCampaigns)
	protected.Post("/campaigns", d.Campaign.CreateCampaign)
	protected.Get("/campaigns/:campaignId", d.Campaign.GetCampaign)
	protected.Put("/campaigns/:campaignId", d.Campaign.UpdateCampaign)
	protected.Delete("/campaigns/:campaignId", d.Campaign.DeleteCampaign)

	// Options
	protected.Get("/campaigns/:campaignId/options", d.Option.ListOptions)
	protected.Post("/campaigns/:campaignId/options", d.Option.CreateOption)
	protected.Get("/campaigns/:campaignId/options/:optionId", d.Option.GetOption)
	protected.Put("/campaigns/:campaignId/options/:optionId", d.Option.UpdateOption)
	protected.Delete("/campaigns/:campaignId/options/:optionId", d.Option.DeleteOption)

	// Participants
	protected.Get("/campaigns/:campaignId/participants", d.Participant.ListParticipants)
	protected.Post("/campaigns/:campaignId/participants", d.Participant.CreateParticipant)
	protected.Get("/campaigns/:campaignId/participants/:participantId", d.Participant.GetParticipant)
	protected.Put("/campaigns/:campaignId/participants/:participantId", d.Participant.UpdateParticipant)
	protected.Delete("/campaigns/:campaignId/participants/:participantId", d.Participant.DeleteParticipant)
}
