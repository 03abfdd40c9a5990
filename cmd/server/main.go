package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weather-dashboard/config"
	"ulascansenturk/weather-dashboard/internal/api/v1/handlers"
	"ulascansenturk/weather-dashboard/internal/db/sessionstore"
	"ulascansenturk/weather-dashboard/internal/db/weatherquery"
	"ulascansenturk/weather-dashboard/internal/inmemorycache"
	"ulascansenturk/weather-dashboard/internal/providers"
	"ulascansenturk/weather-dashboard/internal/service"
	"ulascansenturk/weather-dashboard/internal/session"
)

const sessionPurgeInterval = 10 * time.Minute

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	if conf.OpenWeatherAPIKey == "" {
		log.Warn().Msg("API_KEY is empty, upstream requests will be rejected")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var db *gorm.DB
	if conf.NeedsDatabase() {
		db, err = initializeDatabase(conf)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
	}

	weatherAPI := providers.NewOpenWeatherClient(conf.OpenWeatherBaseURL, conf.OpenWeatherAPIKey, conf.HTTPTimeoutDuration())
	resolver := service.NewResolver(weatherAPI, conf.GeocodeCacheTTL)

	var weatherQueryRepo weatherquery.Repository
	if conf.LookupLogEnabled {
		weatherQueryRepo = weatherquery.NewRepository(db)
	}
	aggregator := service.NewWeatherAggregator(weatherAPI, resolver, weatherQueryRepo)

	store, err := newSessionStore(ctx, conf, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session store")
	}

	secret := conf.SessionSecret
	if secret == "" {
		secret = randomSecret()
		log.Warn().Msg("SECRET_KEY is empty, using a random secret; sessions will not survive a restart")
	}
	sessions := session.NewManager(conf.SessionCookieName, secret, conf.SessionTTL, conf.Env == "production")

	web := handlers.NewWebHandler(aggregator, resolver, store, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.NewRouter(web, sessions),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Str("storage_backend", conf.StorageBackend).Msgf("started server on %s", conf.ServerAddress)

	if err := runServer(ctx, httpServer); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

// runServer blocks until the server fails or a graceful shutdown has finished.
func runServer(ctx context.Context, srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-ctx.Done()
	return nil
}

func newSessionStore(ctx context.Context, conf *config.Config, db *gorm.DB) (session.Store, error) {
	switch conf.StorageBackend {
	case config.StorageMemory:
		return inmemorycache.NewInMemoryCacheProvider(conf.SessionTTL, time.Minute), nil
	case config.StoragePostgres:
		store := sessionstore.NewRepository(db, conf.SessionTTL)
		go purgeExpiredSessions(ctx, store)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.StorageBackend)
	}
}

func purgeExpiredSessions(ctx context.Context, store *sessionstore.Repository) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := store.PurgeExpired(ctx)
			if err != nil {
				log.Error().Err(err).Msg("failed to purge expired sessions")
				continue
			}
			if purged > 0 {
				log.Debug().Int64("purged", purged).Msg("purged expired sessions")
			}
		}
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal().Err(err).Msg("failed to generate session secret")
	}
	return hex.EncodeToString(buf)
}

func initializeDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conf.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}, &sessionstore.SessionReport{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
