package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz-backend/internal/assets"
	"quiz-backend/internal/config"
	"quiz-backend/internal/database"
	"quiz-backend/internal/mailer"
	"quiz-backend/internal/observability"
	"quiz-backend/internal/repository"
	"quiz-backend/internal/server"
	"quiz-backend/internal/store"
	"quiz-backend/internal/webhook"

	"github.com/rs/zerolog/log"
)

const serviceName = "quiz-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(serviceName, cfg.Server.Env, cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to open store")
	}
	defer closeStore()

	deps := server.Deps{
		QuizResults: repository.NewQuizResultRepo(kv, cfg.Store.QuizResultsTable),
		Feedback:    repository.NewFeedbackRepo(kv, cfg.Store.FeedbackTable),
		Mailer:      mailer.NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.From),
		Assets:      assets.NewLibrary(cfg.Email.AssetsDir),
	}
	if cfg.Feedback.ForwardFeedback() {
		deps.Relay = webhook.NewHTTPRelay(cfg.Feedback.WebhookURL, cfg.Feedback.WebhookTimeout)
		log.Info().Msg("Feedback will be forwarded to the webhook")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.NewRouter(cfg, deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("Server is running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		db, err := database.ConnectMongo(ctx, cfg.Store.MongoURI, cfg.Store.DBName)
		if err != nil {
			return nil, nil, err
		}
		keys := map[string]string{
			cfg.Store.QuizResultsTable: cfg.Store.QuizResultsKey,
			cfg.Store.FeedbackTable:    "FeedbackID",
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
			}
		}
		return store.NewMongoStore(db, keys), closeFn, nil
	default:
		client, err := database.NewDynamoClient(ctx, cfg.AWS)
		if err != nil {
			return nil, nil, err
		}
		return store.NewDynamoStore(client), func() {}, nil
	}
}
