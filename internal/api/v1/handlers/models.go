package handlers

import "ulascansenturk/weather-dashboard/internal/service"

// CoordinatesRequest uses pointers so a null or absent coordinate is told apart from 0.
type CoordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type CoordinatesResponse struct {
	Status  string `json:"status"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type pageData struct {
	Report   *service.WeatherReport
	City     string
	State    string
	Country  string
	Searched bool
	Error    string
}

// NotFound is true after a name search that matched no location.
func (p pageData) NotFound() bool {
	return p.Searched && p.Report == nil && p.Error == ""
}
