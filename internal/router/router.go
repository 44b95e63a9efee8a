package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/explain"
	"github.com/rodrigoqf/quizforge/internal/middlewares"
	"github.com/rodrigoqf/quizforge/internal/quizgen"
)

type RouterConfig struct {
	QuizGenHandler *quizgen.Handler
	ExplainHandler *explain.Handler

	// StaticDir, when set, is served at the root path.
	StaticDir string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Mount("/generate-quiz", quizgen.Routes(cfg.QuizGenHandler))
		r.Mount("/explain", explain.Routes(cfg.ExplainHandler))
	})

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}
