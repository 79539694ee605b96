package server

import (
	"net/http"

	"quiz-backend/internal/config"
	"quiz-backend/internal/handlers"
	"quiz-backend/internal/mailer"
	customMiddleware "quiz-backend/internal/middleware"
	"quiz-backend/internal/webhook"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the adapters behind the routes. When Relay is set, feedback is
// forwarded to the webhook and Feedback is ignored.
type Deps struct {
	QuizResults handlers.QuizResultSaver
	Feedback    handlers.FeedbackCreator
	Relay       webhook.Relay
	Mailer      mailer.Mailer
	Assets      handlers.AssetLoader
}

func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	quizHandler := handlers.NewQuizHandler(deps.QuizResults)
	emailHandler := handlers.NewEmailHandler(deps.Mailer, deps.Assets)

	submitFeedback := handlers.NewFeedbackHandler(deps.Feedback).SubmitFeedback
	if deps.Relay != nil {
		submitFeedback = handlers.NewForwardingFeedbackHandler(deps.Relay).ForwardFeedback
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.Origins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(customMiddleware.LimitBody(cfg.Server.MaxBodyBytes))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"quiz-backend"}`))
	})

	r.Post("/save-quiz-result", quizHandler.SaveQuizResult)
	r.Post("/submit-feedback", submitFeedback)
	r.Post("/send-email", emailHandler.SendResultEmail)

	// Preflights are answered by the CORS handler; this catches bare OPTIONS
	r.Options("/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
