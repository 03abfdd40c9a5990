package handlers

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/service"
	"ulascansenturk/weather-dashboard/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var aqiLabels = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

var templateFuncs = template.FuncMap{
	"aqiLabel": func(aqi int) string {
		return aqiLabels[aqi]
	},
	"deref": func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	},
}

type WebHandler struct {
	aggregator service.WeatherAggregator
	resolver   service.Resolver
	store      session.Store
	timeout    time.Duration
	page       *template.Template
}

func NewWebHandler(
	aggregator service.WeatherAggregator,
	resolver service.Resolver,
	store session.Store,
	timeout time.Duration,
) *WebHandler {
	return &WebHandler{
		aggregator: aggregator,
		resolver:   resolver,
		store:      store,
		timeout:    timeout,
		page:       template.Must(template.New("index.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/index.html")),
	}
}

func (h *WebHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/", h.SearchByName)
	r.Post("/weather-by-coords", h.WeatherByCoords)
}

func (h *WebHandler) WeatherByCoords(w http.ResponseWriter, r *http.Request) {
	var req CoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lat, lon, err := req.coordinates()
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing coordinates")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report, err := h.aggregator.WeatherByCoordinates(ctx, lat, lon)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("failed to get weather data")
		if errorStatus(err) == http.StatusBadRequest {
			respondWithError(w, http.StatusBadRequest, "Missing coordinates")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get weather data")
		return
	}

	if err := h.store.Set(ctx, session.ID(ctx), report); err != nil {
		log.Error().Err(err).Msg("failed to store session report")
		respondWithError(w, http.StatusInternalServerError, "failed to store weather data")
		return
	}

	place := h.resolver.CoordinatesToPlaceParts(ctx, lat, lon)

	respondWithJSON(w, http.StatusOK, CoordinatesResponse{
		Status:  "ok",
		City:    place.City,
		State:   place.State,
		Country: place.Country,
	})
}

func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{}

	report, found, err := h.store.Get(r.Context(), session.ID(r.Context()))
	if err != nil {
		log.Error().Err(err).Msg("failed to read session report")
	} else if found {
		data.Report = report
	}

	h.renderPage(w, http.StatusOK, data)
}

func (h *WebHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Debug().Err(err).Msg("invalid search form")
		h.renderPage(w, http.StatusBadRequest, pageData{Error: "Invalid search form."})
		return
	}

	data, err := searchFromForm(r.PostForm)
	if err != nil {
		data.Error = "Please fill in city, state and country (" + err.Error() + ")."
		h.renderPage(w, errorStatus(err), data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report, err := h.aggregator.WeatherByName(ctx, data.City, data.State, data.Country)
	if err != nil {
		log.Error().Err(err).
			Str("city", data.City).
			Str("state", data.State).
			Str("country", data.Country).
			Msg("failed to get weather data")
		code := errorStatus(err)
		data.Error = "Failed to get weather data. Please try again."
		if code == http.StatusBadRequest {
			data.Error = "Please fill in city, state and country."
		}
		h.renderPage(w, code, data)
		return
	}

	if err := h.store.Clear(ctx, session.ID(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to clear session report")
	}

	data.Report = report
	h.renderPage(w, http.StatusOK, data)
}
