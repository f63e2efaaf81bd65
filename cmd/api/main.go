// Command api runs the FF&E portal HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelierworks/ffe-portal/internal/api"
	"github.com/atelierworks/ffe-portal/internal/core/service"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/config"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/db/redis"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/db/sqlite"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/mail"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/pdf"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/queue"
	"github.com/atelierworks/ffe-portal/pkg/logger"
)

const (
	sessionTTL      = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("failed to open database")
	}
	defer db.Close()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Outbound collaborators ---
	mailer, err := mail.NewMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build smtp client")
	}
	renderer := pdf.NewInvoiceRenderer(cfg.CompanyName)

	// --- Core services ---
	tokens, err := service.NewTokenService(cfg.JWTSecret, sessionTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token service")
	}

	dedup := redis.NewDedupChecker(rdb)
	notifier := service.NewNotificationService(mailer, renderer, dedup, log)
	dispatcher := queue.NewDispatcher(0, notifier, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(sqlite.NewAuthRepository(db), tokens)
	invoiceService := service.NewInvoiceService(sqlite.NewInvoiceRepository(db), dispatcher, log)
	catalogService := service.NewCatalogService(sqlite.NewServiceRepository(db), log)
	contractorService := service.NewContractorService(sqlite.NewContractorRepository(db), dispatcher, log)
	contactService := service.NewContactService(sqlite.NewContactRepository(db), dispatcher, cfg.ContactInbox, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Tokens:     tokens,
		Auth:       authService,
		Invoices:   invoiceService,
		Catalog:    catalogService,
		Contractor: contractorService,
		Contacts:   contactService,
		Mailer:     mailer,
		Renderer:   renderer,
		DB:         db,
		Redis:      rdb,
		CookieTTL:  sessionTTL,
		Log:        log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
