package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/metrics"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withHashing, metrics.InstrumentHandler, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/db-check", h.dbCheck)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		r.Post("/auth/register", h.register)
		r.Post("/auth/jwt/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getCurrentUser)
		r.Delete("/users/me", h.deleteCurrentUser)

		r.Route("/meals", func(r chi.Router) {
			if h.rateLimit > 0 {
				r.Use(h.rateLimiter())
			}

			r.Post("/", h.createMeal)
			r.Get("/", h.listMeals)
			r.Get("/stats/daily", h.dailyStats)
			r.Get("/{id}", h.getMeal)
			r.Put("/{id}", h.updateMeal)
			r.Delete("/{id}", h.deleteMeal)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
