package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lukk-cs/attribo-backend/internal/auth"
	"github.com/lukk-cs/attribo-backend/internal/config"
	"github.com/lukk-cs/attribo-backend/internal/db"
	apphttp "github.com/lukk-cs/attribo-backend/internal/http"
	"github.com/lukk-cs/attribo-backend/internal/http/handlers"
	"github.com/lukk-cs/attribo-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var log *zap.Logger
	if cfg.IsDevelopment() {
		log, _ = zap.NewDevelopment()
	} else {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, db.DefaultPoolConfig(), log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()
	gw := db.NewGateway(pool, log)

	// Run migrations
	if err := db.RunMigrations(ctx, gw, cfg.MigrationsDir, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()
	revocations := auth.NewRevocationList(rdb)

	// Services
	integrity := services.NewIntegrity(log)
	accountService := services.NewAccountService(gw, log)
	campaignService := services.NewCampaignService(gw, integrity, nil, log)
	optionService := services.NewOptionService(gw, integrity, log)
	participantService := services.NewParticipantService(gw, integrity, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "internal error"
			if e, ok := err.(*fiber.Error); ok {
				code, msg = e.Code, e.Message
			} else {
				log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})

	apphttp.SetupRouter(app, cfg, log, apphttp.Deps{
		Health:      gw,
		Counter:     rdb,
		Revoker:     revocations,
		Account:     handlers.NewAccountHandler(accountService, revocations, cfg.JWTSecret, cfg.JWTExpiration(), log),
		Campaign:    handlers.NewCampaignHandler(campaignService, log),
		Option:      handlers.NewOptionHandler(optionService, log),
		Participant: handlers.NewParticipantHandler(participantService, log),
	})

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
