package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	directGeocodePath  = "/geo/1.0/direct"
	reverseGeocodePath = "/geo/1.0/reverse"
	currentWeatherPath = "/data/2.5/weather"
	forecastPath       = "/data/2.5/forecast"
	airPollutionPath   = "/data/2.5/air_pollution"
)

type OpenWeatherClient interface {
	DirectGeocode(ctx context.Context, query string, limit int) ([]GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lon float64, limit int) ([]GeocodeResult, error)
	CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeatherResponse, error)
	Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
	AirPollution(ctx context.Context, lat, lon float64) (*AirPollutionResponse, error)
}

type openWeatherClient struct {
	apiKey string
	client *resty.Client
}

func NewOpenWeatherClient(baseURL, apiKey string, timeout time.Duration) OpenWeatherClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("path", resp.Request.RawRequest.URL.Path).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			Msg("openweather response")
		return nil
	})

	return &openWeatherClient{
		apiKey: apiKey,
		client: client,
	}
}

// APIError is returned for any non-2xx upstream response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openweather returned status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("openweather returned status code: %d: %s", e.StatusCode, e.Message)
}

func (c *openWeatherClient) DirectGeocode(ctx context.Context, query string, limit int) ([]GeocodeResult, error) {
	var results []GeocodeResult
	err := c.get(ctx, directGeocodePath, map[string]string{
		"q":     query,
		"limit": strconv.Itoa(limit),
	}, &results)
	if err != nil {
		return nil, fmt.Errorf("direct geocoding failed: %w", err)
	}

	return results, nil
}

func (c *openWeatherClient) ReverseGeocode(ctx context.Context, lat, lon float64, limit int) ([]GeocodeResult, error) {
	var results []GeocodeResult
	err := c.get(ctx, reverseGeocodePath, map[string]string{
		"lat":   formatCoordinate(lat),
		"lon":   formatCoordinate(lon),
		"limit": strconv.Itoa(limit),
	}, &results)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding failed: %w", err)
	}

	return results, nil
}

func (c *openWeatherClient) CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeatherResponse, error) {
	var resp CurrentWeatherResponse
	err := c.get(ctx, currentWeatherPath, map[string]string{
		"lat":   formatCoordinate(lat),
		"lon":   formatCoordinate(lon),
		"units": "metric",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("current weather request failed: %w", err)
	}

	return &resp, nil
}

func (c *openWeatherClient) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	var resp ForecastResponse
	err := c.get(ctx, forecastPath, map[string]string{
		"lat":   formatCoordinate(lat),
		"lon":   formatCoordinate(lon),
		"units": "metric",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	return &resp, nil
}

func (c *openWeatherClient) AirPollution(ctx context.Context, lat, lon float64) (*AirPollutionResponse, error) {
	var resp AirPollutionResponse
	err := c.get(ctx, airPollutionPath, map[string]string{
		"lat": formatCoordinate(lat),
		"lon": formatCoordinate(lon),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("air pollution request failed: %w", err)
	}

	return &resp, nil
}

func (c *openWeatherClient) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("appid", c.apiKey).
		Get(path)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return parseAPIError(resp)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}

	return nil
}

// parseAPIError reads the {"cod": ..., "message": ...} body OpenWeather sends with errors.
// cod is a number on some endpoints and a string on others.
func parseAPIError(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body struct {
		Cod     json.RawMessage `json:"cod"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Message
		var code string
		if json.Unmarshal(body.Cod, &code) == nil {
			apiErr.Code = code
		} else {
			apiErr.Code = string(body.Cod)
		}
	}

	return apiErr
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
