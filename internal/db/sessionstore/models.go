package sessionstore

import (
	"time"
)

type SessionReport struct {
	SessionID string    `json:"session_id" gorm:"column:session_id;primaryKey;size:64"`
	Payload   []byte    `json:"payload" gorm:"column:payload;type:jsonb;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;index:idx_session_reports_expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SessionReport) TableName() string {
	return "session_reports"
}
