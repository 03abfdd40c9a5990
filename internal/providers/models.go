package providers

type GeocodeResult struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainReadings uses a pointer so a missing temperature can be told apart from 0 °C.
type MainReadings struct {
	Temp *float64 `json:"temp"`
}

type CurrentWeatherResponse struct {
	Weather []WeatherCondition `json:"weather"`
	Main    *MainReadings      `json:"main"`
	Name    string             `json:"name"`
}

type ForecastItem struct {
	Dt      int64              `json:"dt"`
	DtTxt   string             `json:"dt_txt"`
	Main    *MainReadings      `json:"main"`
	Weather []WeatherCondition `json:"weather"`
}

type ForecastResponse struct {
	List []ForecastItem `json:"list"`
}

type PollutionComponents struct {
	CO   *float64 `json:"co"`
	NO2  *float64 `json:"no2"`
	O3   *float64 `json:"o3"`
	SO2  *float64 `json:"so2"`
	PM25 *float64 `json:"pm2_5"`
	PM10 *float64 `json:"pm10"`
}

type AirQualityIndex struct {
	AQI int `json:"aqi"`
}

type AirPollutionItem struct {
	Dt         int64               `json:"dt"`
	Main       AirQualityIndex     `json:"main"`
	Components PollutionComponents `json:"components"`
}

type AirPollutionResponse struct {
	List []AirPollutionItem `json:"list"`
}
