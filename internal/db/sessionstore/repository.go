package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ulascansenturk/weather-dashboard/internal/service"
)

// Repository is a session.Store backed by the session_reports table.
type Repository struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewRepository(db *gorm.DB, ttl time.Duration) *Repository {
	return &Repository{db: db, ttl: ttl}
}

func (r *Repository) Get(ctx context.Context, sessionID string) (*service.WeatherReport, bool, error) {
	var row SessionReport
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", sessionID, time.Now()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var report service.WeatherReport
	if err := json.Unmarshal(row.Payload, &report); err != nil {
		return nil, false, err
	}

	return &report, true, nil
}

func (r *Repository) Set(ctx context.Context, sessionID string, report *service.WeatherReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	row := SessionReport{
		SessionID: sessionID,
		Payload:   payload,
		ExpiresAt: time.Now().Add(r.ttl),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
	}).Create(&row).Error
}

func (r *Repository) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&SessionReport{}).Error
}

// PurgeExpired removes rows whose session has lapsed.
func (r *Repository) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&SessionReport{})
	return result.RowsAffected, result.Error
}
