package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/service"
)

var searchFields = []string{"cityName", "stateName", "countryName"}

// errorStatus maps missing input to 400 and anything else to 500.
func errorStatus(err error) int {
	if errors.Is(err, service.ErrMissingInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (req CoordinatesRequest) coordinates() (float64, float64, error) {
	if req.Lat == nil || req.Lon == nil {
		return 0, 0, fmt.Errorf("%w: lat and lon are required", service.ErrMissingInput)
	}
	return *req.Lat, *req.Lon, nil
}

// searchFromForm requires every field to be present; empty values are allowed.
func searchFromForm(form url.Values) (pageData, error) {
	fields := make(map[string]string, len(searchFields))
	for _, name := range searchFields {
		values, ok := form[name]
		if !ok || len(values) == 0 {
			return pageData{}, fmt.Errorf("%w: %s", service.ErrMissingInput, name)
		}
		fields[name] = values[0]
	}

	return pageData{
		City:     fields["cityName"],
		State:    fields["stateName"],
		Country:  fields["countryName"],
		Searched: true,
	}, nil
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// renderPage executes the page into a buffer first so a template error can still become a 500.
func (h *WebHandler) renderPage(w http.ResponseWriter, code int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("failed to write page")
	}
}
