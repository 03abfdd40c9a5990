package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/providers"
)

const unknownPlace = "Unknown"

type Resolver interface {
	NameToCoordinates(ctx context.Context, city, state, country string) (Location, error)
	CoordinatesToPlaceName(ctx context.Context, lat, lon float64) (string, error)
	CoordinatesToPlaceParts(ctx context.Context, lat, lon float64) PlaceName
}

type resolver struct {
	weatherAPI providers.OpenWeatherClient
	reverse    *cache.Cache
}

// NewResolver returns a Resolver. A positive cacheTTL memoises reverse lookups
// so labelling a report and reading its place parts cost one upstream call.
func NewResolver(weatherAPI providers.OpenWeatherClient, cacheTTL time.Duration) Resolver {
	r := &resolver{weatherAPI: weatherAPI}
	if cacheTTL > 0 {
		r.reverse = cache.New(cacheTTL, 2*cacheTTL)
	}
	return r
}

func (r *resolver) NameToCoordinates(ctx context.Context, city, state, country string) (Location, error) {
	query := fmt.Sprintf("%s,%s,%s", city, state, country)

	results, err := r.weatherAPI.DirectGeocode(ctx, query, 1)
	if err != nil {
		return Location{}, err
	}

	if len(results) == 0 {
		return Location{}, fmt.Errorf("%w: %s", ErrNotFound, query)
	}

	return Location{Latitude: results[0].Lat, Longitude: results[0].Lon}, nil
}

func (r *resolver) CoordinatesToPlaceName(ctx context.Context, lat, lon float64) (string, error) {
	place, err := r.reverseLookup(ctx, lat, lon)
	if err != nil {
		return "", err
	}

	if place.City == "" {
		return unknownPlace, nil
	}

	return fmt.Sprintf("%s, %s", place.City, place.Country), nil
}

func (r *resolver) CoordinatesToPlaceParts(ctx context.Context, lat, lon float64) PlaceName {
	place, err := r.reverseLookup(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("reverse geocoding failed, returning empty place")
		return PlaceName{}
	}

	return place
}

func (r *resolver) reverseLookup(ctx context.Context, lat, lon float64) (PlaceName, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if r.reverse != nil {
		if cached, found := r.reverse.Get(key); found {
			return cached.(PlaceName), nil
		}
	}

	results, err := r.weatherAPI.ReverseGeocode(ctx, lat, lon, 1)
	if err != nil {
		return PlaceName{}, err
	}

	var place PlaceName
	if len(results) > 0 {
		place = PlaceName{
			City:    results[0].Name,
			State:   results[0].State,
			Country: results[0].Country,
		}
	}

	if r.reverse != nil {
		r.reverse.Set(key, place, cache.DefaultExpiration)
	}

	return place, nil
}
