package service

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PlaceName struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type CurrentConditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Temperature int    `json:"temperature"`
}

// ForecastEntry carries Time for hourly entries and Date for daily ones.
type ForecastEntry struct {
	Time        string `json:"time,omitempty"`
	Date        string `json:"date,omitempty"`
	Temperature int    `json:"temperature"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type AirQuality struct {
	AQI  int      `json:"aqi"`
	PM25 *float64 `json:"pm2_5"`
	PM10 *float64 `json:"pm10"`
	CO   *float64 `json:"co"`
	NO2  *float64 `json:"no2"`
	SO2  *float64 `json:"so2"`
	O3   *float64 `json:"o3"`
}

type WeatherReport struct {
	Current      CurrentConditions `json:"current"`
	Hourly       []ForecastEntry   `json:"hourly"`
	Forecast     []ForecastEntry   `json:"forecast"`
	Pollution    *AirQuality       `json:"pollution"`
	LocationName string            `json:"location_name,omitempty"`
}
