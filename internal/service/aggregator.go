package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/db/weatherquery"
	"ulascansenturk/weather-dashboard/internal/providers"
)

const (
	maxHourlyEntries = 6
	maxDailyEntries  = 3
	middaySlot       = "12:00:00"
)

type WeatherAggregator interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (CurrentConditions, error)
	Forecasts(ctx context.Context, lat, lon float64) ([]ForecastEntry, []ForecastEntry, error)
	AirPollution(ctx context.Context, lat, lon float64) (*AirQuality, error)
	WeatherByCoordinates(ctx context.Context, lat, lon float64) (*WeatherReport, error)
	WeatherByName(ctx context.Context, city, state, country string) (*WeatherReport, error)
}

type weatherAggregator struct {
	weatherAPI       providers.OpenWeatherClient
	resolver         Resolver
	weatherQueryRepo weatherquery.Repository
}

// NewWeatherAggregator wires the aggregator. weatherQueryRepo may be nil, in which case lookups are not logged.
func NewWeatherAggregator(
	weatherAPI providers.OpenWeatherClient,
	resolver Resolver,
	weatherQueryRepo weatherquery.Repository,
) WeatherAggregator {
	return &weatherAggregator{
		weatherAPI:       weatherAPI,
		resolver:         resolver,
		weatherQueryRepo: weatherQueryRepo,
	}
}

func (w *weatherAggregator) CurrentConditions(ctx context.Context, lat, lon float64) (CurrentConditions, error) {
	resp, err := w.weatherAPI.CurrentWeather(ctx, lat, lon)
	if err != nil {
		return CurrentConditions{}, err
	}

	if len(resp.Weather) == 0 {
		return CurrentConditions{}, newUpstreamError("current weather", "no weather conditions")
	}
	if resp.Main == nil || resp.Main.Temp == nil {
		return CurrentConditions{}, newUpstreamError("current weather", "no temperature")
	}

	condition := resp.Weather[0]

	return CurrentConditions{
		Main:        condition.Main,
		Description: condition.Description,
		Icon:        condition.Icon,
		Temperature: int(*resp.Main.Temp),
	}, nil
}

// Forecasts walks the 3-hourly feed once. Hourly takes the first six entries and daily takes the
// 12:00 entries, and the walk stops as soon as daily is full, even if hourly is still short.
// Only entries that are selected need weather and temperature.
func (w *weatherAggregator) Forecasts(ctx context.Context, lat, lon float64) ([]ForecastEntry, []ForecastEntry, error) {
	resp, err := w.weatherAPI.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, nil, err
	}

	hourly := make([]ForecastEntry, 0, maxHourlyEntries)
	daily := make([]ForecastEntry, 0, maxDailyEntries)

	for _, item := range resp.List {
		date, clock, ok := strings.Cut(item.DtTxt, " ")
		if !ok || len(clock) < 5 {
			return nil, nil, newUpstreamError("forecast", fmt.Sprintf("bad dt_txt %q", item.DtTxt))
		}

		wantHourly := len(hourly) < maxHourlyEntries
		midday := strings.Contains(item.DtTxt, middaySlot)
		if !wantHourly && !midday {
			continue
		}

		if len(item.Weather) == 0 {
			return nil, nil, newUpstreamError("forecast", "no weather conditions at "+item.DtTxt)
		}
		if item.Main == nil || item.Main.Temp == nil {
			return nil, nil, newUpstreamError("forecast", "no temperature at "+item.DtTxt)
		}

		entry := ForecastEntry{
			Temperature: int(*item.Main.Temp),
			Main:        item.Weather[0].Main,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
		}

		if wantHourly {
			hourlyEntry := entry
			hourlyEntry.Time = clock[:5]
			hourly = append(hourly, hourlyEntry)
		}

		if midday {
			dailyEntry := entry
			dailyEntry.Date = date
			daily = append(daily, dailyEntry)
		}

		if len(daily) == maxDailyEntries {
			break
		}
	}

	return hourly, daily, nil
}

func (w *weatherAggregator) AirPollution(ctx context.Context, lat, lon float64) (*AirQuality, error) {
	resp, err := w.weatherAPI.AirPollution(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if len(resp.List) == 0 {
		return nil, nil
	}

	data := resp.List[0]
	if data.Main.AQI < 1 || data.Main.AQI > 5 {
		return nil, newUpstreamError("air pollution", fmt.Sprintf("aqi %d out of range", data.Main.AQI))
	}

	return &AirQuality{
		AQI:  data.Main.AQI,
		PM25: data.Components.PM25,
		PM10: data.Components.PM10,
		CO:   data.Components.CO,
		NO2:  data.Components.NO2,
		SO2:  data.Components.SO2,
		O3:   data.Components.O3,
	}, nil
}

func (w *weatherAggregator) WeatherByCoordinates(ctx context.Context, lat, lon float64) (*WeatherReport, error) {
	report, err := w.buildReport(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	report.LocationName, err = w.resolver.CoordinatesToPlaceName(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	w.logQuery(weatherquery.SourceCoordinates, fmt.Sprintf("%g,%g", lat, lon), lat, lon, report)

	return report, nil
}

// WeatherByName returns a nil report without error when the place cannot be geocoded.
func (w *weatherAggregator) WeatherByName(ctx context.Context, city, state, country string) (*WeatherReport, error) {
	location, err := w.resolver.NameToCoordinates(ctx, city, state, country)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	report, err := w.buildReport(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return nil, err
	}

	w.logQuery(weatherquery.SourceName, fmt.Sprintf("%s,%s,%s", city, state, country), location.Latitude, location.Longitude, report)

	return report, nil
}

func (w *weatherAggregator) buildReport(ctx context.Context, lat, lon float64) (*WeatherReport, error) {
	current, err := w.CurrentConditions(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	hourly, daily, err := w.Forecasts(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	pollution, err := w.AirPollution(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	return &WeatherReport{
		Current:   current,
		Hourly:    hourly,
		Forecast:  daily,
		Pollution: pollution,
	}, nil
}

func (w *weatherAggregator) logQuery(source, query string, lat, lon float64, report *WeatherReport) {
	if w.weatherQueryRepo == nil {
		return
	}

	entry := weatherquery.WeatherQuery{
		Source:      source,
		Query:       query,
		Latitude:    lat,
		Longitude:   lon,
		Temperature: report.Current.Temperature,
	}
	if report.Pollution != nil {
		aqi := report.Pollution.AQI
		entry.AQI = &aqi
	}

	if err := w.weatherQueryRepo.LogWeatherQuery(entry); err != nil {
		log.Error().Err(err).Str("source", source).Str("query", query).Msg("Failed to log weather query")
	}
}
