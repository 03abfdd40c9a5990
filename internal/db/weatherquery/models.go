package weatherquery

import (
	"time"
)

const (
	SourceCoordinates = "coordinates"
	SourceName        = "name"
)

type WeatherQuery struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Source      string    `json:"source" gorm:"index:idx_source_created_at"`
	Query       string    `json:"query" gorm:"index:idx_query"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Temperature int       `json:"temperature"`
	AQI         *int      `json:"aqi" gorm:"column:aqi"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_source_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
