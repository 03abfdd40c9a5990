package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/service"
)

// Store keeps the last coordinate-based report of a browser session.
type Store interface {
	Get(ctx context.Context, sessionID string) (*service.WeatherReport, bool, error)
	Set(ctx context.Context, sessionID string, report *service.WeatherReport) error
	Clear(ctx context.Context, sessionID string) error
}

type contextKey struct{}

type Manager struct {
	cookieName string
	secret     []byte
	ttl        time.Duration
	secure     bool
}

func NewManager(cookieName, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		cookieName: cookieName,
		secret:     []byte(secret),
		ttl:        ttl,
		secure:     secure,
	}
}

// Middleware puts the session id on the request context, issuing a fresh
// session when the cookie is absent, expired or fails verification.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.sessionFromRequest(r)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				log.Debug().Err(err).Msg("discarding invalid session cookie")
			}

			sessionID = uuid.NewString()
			cookie, err := m.newCookie(sessionID)
			if err != nil {
				log.Error().Err(err).Msg("failed to sign session cookie")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, cookie)
		}

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), sessionID)))
	})
}

func (m *Manager) sessionFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return "", err
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("session subject: %w", err)
	}

	return claims.Subject, nil
}

func (m *Manager) newCookie(sessionID string) (*http.Cookie, error) {
	expiresAt := time.Now().Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func WithID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKey{}, sessionID)
}

// ID returns the session id set by Middleware, or "" outside of it.
func ID(ctx context.Context) string {
	sessionID, _ := ctx.Value(contextKey{}).(string)
	return sessionID
}
