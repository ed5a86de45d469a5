package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/config"
	"github.com/jeil-marcom/site_end/controllers"
	"github.com/jeil-marcom/site_end/mailer"
	"github.com/jeil-marcom/site_end/middleware"
	"github.com/jeil-marcom/site_end/repository"
	"github.com/jeil-marcom/site_end/routes"
	"github.com/jeil-marcom/site_end/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Database connection, shared for the process lifetime.
	dbClient, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dbClient.Close(closeCtx)
	}()

	db := dbClient.Database()

	if err := repository.InitializeCollections(ctx, db); err != nil {
		utils.Logger.Error().Err(err).Msg("failed to initialize collections")
	}
	if err := repository.EnsureAdminAccount(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		utils.Logger.Error().Err(err).Msg("failed to seed admin account")
	}

	// Mail transport, dialed and verified once, reused by every intake.
	smtpMailer, err := mailer.NewSMTPMailer(ctx, mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		Timeout:  cfg.MailTimeout,
	})
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("SMTP transport verification failed")
	}
	defer func() {
		_ = smtpMailer.Close()
	}()

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	contactStore := repository.NewContactStore(db)
	catalogueStore := repository.NewCatalogueStore(db)
	adminStore := repository.NewAdminStore(db)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	routes.RegisterRoutes(router, routes.Deps{
		Intake:            controllers.NewIntakeController(contactStore, catalogueStore, smtpMailer, cfg),
		Contacts:          controllers.NewContactSubmissionController(contactStore),
		Catalogues:        controllers.NewCatalogueSubmissionController(catalogueStore),
		Auth:              controllers.NewAuthController(adminStore, tokens),
		Tokens:            tokens,
		AdminRoleRequired: cfg.AdminRoleRequired,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Error().Err(err).Msg("server shutdown failed")
	}

	utils.Logger.Info().Msg("server stopped")
}
