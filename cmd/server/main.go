package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	httpadapter "resume-api/internal/adapter/http"
	repo "resume-api/internal/adapter/repository"
	"resume-api/internal/auth"
	"resume-api/internal/config"
	"resume-api/internal/infrastructure/migration"
	"resume-api/internal/logger"
	"resume-api/internal/pdf"
	"resume-api/internal/usecase"
	infra "resume-api/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewPool(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database not available")
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	resumeRepo := repo.NewResumeRepo(pool)
	contactRepo := repo.NewContactRepo(pool)
	userRepo := repo.NewUserRepo(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	resumes := usecase.NewResumeService(resumeRepo)
	contacts := usecase.NewContactService(contactRepo, cfg.Contact.RecipientEmail)
	authSvc := usecase.NewAuthService(userRepo, tokens)

	if err := authSvc.Bootstrap(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}
	// seed the default resume if the store is empty
	if _, err := resumes.Get(ctx); err != nil {
		log.Fatal().Err(err).Msg("resume init failed")
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := httpadapter.NewHandler(resumes, contacts, authSvc, pdf.NewRenderer())
	authn := httpadapter.Authenticate(tokens, userRepo)
	httpadapter.RegisterRoutes(app, h, authn, httpadapter.RequireAdmin())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Info().Str("addr", addr).Msg("resume API server started")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("resume API server shutting down")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
