package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates the chi router and registers all routes
// The health and metrics endpoints are public; everything under /v1 requires
// the API token.
func NewRouter(h *Handler, apiToken string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(apiToken))

		r.Route("/v1/investments", func(r chi.Router) {
			r.Get("/", h.handleList)
			r.Post("/", h.handleCreate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGet)
				r.Put("/", h.handleUpdate)
				r.Post("/payments", h.handleLogPayment)
				r.Post("/close", h.handleClose)
				r.Get("/projections", h.handleProjections)
			})
		})
	})

	return r
}
