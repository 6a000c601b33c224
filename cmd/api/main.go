package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/smallbizniz/support-portal/internal/api/http"
	"github.com/smallbizniz/support-portal/internal/api/http/handlers"
	"github.com/smallbizniz/support-portal/internal/auth"
	"github.com/smallbizniz/support-portal/internal/config"
	"github.com/smallbizniz/support-portal/internal/domains"
	"github.com/smallbizniz/support-portal/internal/events"
	"github.com/smallbizniz/support-portal/internal/mail"
	"github.com/smallbizniz/support-portal/internal/observability"
	"github.com/smallbizniz/support-portal/internal/persistence"
	"github.com/smallbizniz/support-portal/internal/repository"
	"github.com/smallbizniz/support-portal/internal/service"
	"github.com/smallbizniz/support-portal/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	cipher, err := auth.NewPasswordCipher(cfg.Registration.EncryptionKey)
	if err != nil {
		logger.Fatal("invalid registration encryption key", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokens, userRepo)

	dispatcher := events.NewInMemoryDispatcher()

	var (
		mailer      mail.Mailer
		objectStore storage.ObjectStore
	)
	if cfg.AWS.Configured() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.AWS.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")),
		)
		if err != nil {
			logger.Fatal("failed to load aws config", zap.Error(err))
		}
		mailer = mail.NewSESMailer(ses.NewFromConfig(awsCfg), cfg.Mail.FromAddress, cfg.App.PublicURL)
		if cfg.AWS.S3Bucket != "" {
			objectStore = storage.NewS3Store(s3.NewFromConfig(awsCfg), cfg.AWS.S3Bucket)
		}
	} else {
		logger.Warn("aws not configured; email delivery and attachments disabled")
		mailer = mail.NewLogMailer(logger)
	}

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
	})
	registrationService := service.NewRegistrationService(service.RegistrationDependencies{
		RegistrationRepo: registrationRepo,
		UserRepo:         userRepo,
		Cipher:           cipher,
		Dispatcher:       dispatcher,
		BcryptCost:       cfg.Auth.BcryptCost,
	})
	identityService := service.NewIdentityService(service.IdentityDependencies{
		UserRepo:   userRepo,
		Tokens:     tokens,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	settingsService := service.NewSettingsService(settingsRepo, redis, logger)
	notificationService := service.NewNotificationService(service.NotificationDependencies{
		Dispatcher: dispatcher,
		Mailer:     mailer,
		UserRepo:   userRepo,
		Logger:     logger,
		AdminAddr:  cfg.Mail.AdminAddress,
	})
	notificationService.RegisterHandlers()

	domainsClient := domains.NewClient(cfg.GoDaddy.BaseURL, cfg.GoDaddy.APIKey, cfg.GoDaddy.APISecret)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
		Registrations:  handlers.NewRegistrationsHandler(registrationService),
		Users:          handlers.NewUsersHandler(identityService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		Contact:        handlers.NewContactHandler(dispatcher),
		Files:          handlers.NewFilesHandler(objectStore),
		Domains:        handlers.NewDomainsHandler(domainsClient),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
