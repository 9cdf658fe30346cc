package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jusunglee/jamoro/internal/db"
	"github.com/jusunglee/jamoro/internal/web/handlers"
	"github.com/jusunglee/jamoro/internal/web/middleware"
)

type Router struct {
	repo    db.Repository // nil disables history routes and persistence
	log     *slog.Logger
	origins []string // empty allows any origin
}

func NewRouter(repo db.Repository, log *slog.Logger, origins []string) *Router {
	return &Router{repo: repo, log: log, origins: origins}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	romanizeHandler := handlers.NewRomanizeHandler(r.repo, r.log)

	rateLimiter := middleware.NewRateLimiter(30, 60)

	mux.Handle("POST /api/v1/romanize",
		middleware.Chain(
			http.HandlerFunc(romanizeHandler.Romanize),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	if r.repo != nil {
		historyHandler := handlers.NewHistoryHandler(r.repo, r.log)

		mux.Handle("GET /api/v1/history",
			middleware.Chain(
				http.HandlerFunc(historyHandler.List),
				middleware.PrometheusMetrics(),
				middleware.RequestLogger(r.log),
				middleware.CacheControl("public, s-maxage=5, max-age=0"),
			),
		)

		mux.Handle("GET /api/v1/history/{id}",
			middleware.Chain(
				http.HandlerFunc(historyHandler.Get),
				middleware.PrometheusMetrics(),
				middleware.RequestLogger(r.log),
				middleware.CacheControl("public, s-maxage=5, max-age=0"),
			),
		)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return middleware.CORS(r.origins)(mux)
}
