package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/auth"
	"github.com/saulo-duarte/quizgenie-lambda/internal/gateway"
	"github.com/saulo-duarte/quizgenie-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizgenie-lambda/internal/quiz"
)

// RouterConfig holds the feature handlers. A nil QuizHandler leaves
// /quizzes unmounted; AuthEnabled false leaves the whole app API unmounted
// and serves only the functions.
type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	GatewayHandler *gateway.Handler
	QuizHandler    *quiz.Handler
	AuthEnabled    bool
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Mount("/functions/v1", aiquiz.Routes(cfg.AIQuizHandler))

	if !cfg.AuthEnabled {
		return r
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/ai", gateway.Routes(cfg.GatewayHandler))
		if cfg.QuizHandler != nil {
			r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		}
	})
	return r
}
