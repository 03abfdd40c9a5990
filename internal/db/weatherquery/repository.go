package weatherquery

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogWeatherQuery(query WeatherQuery) error
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

func (r *WeatherSQLRepository) LogWeatherQuery(query WeatherQuery) error {
	query.ID = 0
	query.CreatedAt = time.Now()

	return r.db.Create(&query).Error
}
