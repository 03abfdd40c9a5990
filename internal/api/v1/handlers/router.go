package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"ulascansenturk/weather-dashboard/internal/session"
)

func NewRouter(web *WebHandler, sessions *session.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		web.RegisterRoutes(r)
	})

	return r
}
