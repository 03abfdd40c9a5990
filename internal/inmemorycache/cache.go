package inmemorycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"ulascansenturk/weather-dashboard/internal/service"
)

// InMemoryCache is a session.Store that keeps one report per session in process memory.
// Reports are held as JSON so callers never share a mutable report.
type InMemoryCache struct {
	cache *cache.Cache
}

func NewInMemoryCacheProvider(ttl, cleanupInterval time.Duration) *InMemoryCache {
	return &InMemoryCache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (m *InMemoryCache) Get(_ context.Context, sessionID string) (*service.WeatherReport, bool, error) {
	value, found := m.cache.Get(sessionID)
	if !found {
		return nil, false, nil
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("unexpected session payload type %T", value)
	}

	var report service.WeatherReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false, err
	}

	return &report, true, nil
}

func (m *InMemoryCache) Set(_ context.Context, sessionID string, report *service.WeatherReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return err
	}

	m.cache.Set(sessionID, jsonData, cache.DefaultExpiration)

	return nil
}

func (m *InMemoryCache) Clear(_ context.Context, sessionID string) error {
	m.cache.Delete(sessionID)
	return nil
}

// Len counts stored sessions, including expired ones the janitor has not removed yet.
func (m *InMemoryCache) Len() int {
	return m.cache.ItemCount()
}
