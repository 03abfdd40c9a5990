package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-dashboard/internal/api/v1/handlers"
	"ulascansenturk/weather-dashboard/internal/mocks"
	"ulascansenturk/weather-dashboard/internal/service"
	"ulascansenturk/weather-dashboard/internal/session"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WebHandlerTestSuite struct {
	suite.Suite
	mockAggregator *mocks.MockWeatherAggregator
	mockResolver   *mocks.MockResolver
	mockStore      *mocks.MockStore
	router         http.Handler
}

func (s *WebHandlerTestSuite) SetupTest() {
	s.mockAggregator = mocks.NewMockWeatherAggregator(s.T())
	s.mockResolver = mocks.NewMockResolver(s.T())
	s.mockStore = mocks.NewMockStore(s.T())
	s.router = s.newRouter(5 * time.Second)
}

func (s *WebHandlerTestSuite) newRouter(timeout time.Duration) http.Handler {
	web := handlers.NewWebHandler(s.mockAggregator, s.mockResolver, s.mockStore, timeout)
	return handlers.NewRouter(web, session.NewManager("weather_session", "test-secret", time.Hour, false))
}

func (s *WebHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func coordsRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/weather-by-coords", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sampleReport(locationName string) *service.WeatherReport {
	pm25 := 12.345
	return &service.WeatherReport{
		Current: service.CurrentConditions{Main: "Rain", Description: "light rain", Icon: "10d", Temperature: 14},
		Hourly: []service.ForecastEntry{
			{Time: "09:00", Temperature: 13, Main: "Rain", Description: "light rain", Icon: "10d"},
			{Time: "12:00", Temperature: 15, Main: "Clouds", Description: "overcast clouds", Icon: "04d"},
		},
		Forecast: []service.ForecastEntry{
			{Date: "2024-06-02", Temperature: 17, Main: "Clear", Description: "clear sky", Icon: "01d"},
		},
		Pollution:    &service.AirQuality{AQI: 4, PM25: &pm25},
		LocationName: locationName,
	}
}

func (s *WebHandlerTestSuite) TestHealth() {
	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"status":"ok"}`, recorder.Body.String())
	s.Empty(recorder.Result().Cookies())
}

func (s *WebHandlerTestSuite) TestWeatherByCoords() {
	report := sampleReport("Lisbon, PT")

	s.mockAggregator.On("WeatherByCoordinates", mock.Anything, 38.7223, -9.1393).Return(report, nil).Once()
	s.mockStore.On("Set", mock.Anything, mock.AnythingOfType("string"), report).Return(nil).Once()
	s.mockResolver.On("CoordinatesToPlaceParts", mock.Anything, 38.7223, -9.1393).
		Return(service.PlaceName{City: "Lisbon", State: "Lisbon", Country: "PT"}).Once()

	recorder := s.serve(coordsRequest(`{"lat":38.7223,"lon":-9.1393}`))

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))
	s.JSONEq(`{"status":"ok","city":"Lisbon","state":"Lisbon","country":"PT"}`, recorder.Body.String())
	s.NotEmpty(recorder.Result().Cookies())
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsStoresUnderSessionID() {
	report := sampleReport("Unknown")
	var storedFor string

	s.mockAggregator.On("WeatherByCoordinates", mock.Anything, 0.0, 0.0).Return(report, nil).Once()
	s.mockStore.On("Set", mock.Anything, mock.AnythingOfType("string"), report).
		Run(func(args mock.Arguments) {
			storedFor = args.String(1)
			s.Equal(storedFor, session.ID(args.Get(0).(context.Context)))
		}).
		Return(nil).Once()
	s.mockResolver.On("CoordinatesToPlaceParts", mock.Anything, 0.0, 0.0).Return(service.PlaceName{}).Once()

	recorder := s.serve(coordsRequest(`{"lat":0,"lon":0}`))

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"status":"ok","city":"","state":"","country":""}`, recorder.Body.String())
	s.NotEmpty(storedFor)
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsMissingCoordinates() {
	for _, body := range []string{`{"lat":null,"lon":10}`, `{"lat":10}`, `{}`} {
		recorder := s.serve(coordsRequest(body))

		s.Equal(http.StatusBadRequest, recorder.Code, body)
		s.JSONEq(`{"error":"Missing coordinates"}`, recorder.Body.String(), body)
	}

	s.mockAggregator.AssertNotCalled(s.T(), "WeatherByCoordinates", mock.Anything, mock.Anything, mock.Anything)
	s.mockStore.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsInvalidBody() {
	recorder := s.serve(coordsRequest(`{"lat":`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.JSONEq(`{"error":"Invalid request body"}`, recorder.Body.String())
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsUpstreamFailure() {
	s.mockAggregator.On("WeatherByCoordinates", mock.Anything, 1.0, 2.0).
		Return(nil, &service.UpstreamError{Endpoint: "forecast", Reason: "no temperature"}).Once()

	recorder := s.serve(coordsRequest(`{"lat":1,"lon":2}`))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.JSONEq(`{"error":"failed to get weather data"}`, recorder.Body.String())
	s.mockStore.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsStoreFailure() {
	report := sampleReport("Unknown")
	s.mockAggregator.On("WeatherByCoordinates", mock.Anything, 1.0, 2.0).Return(report, nil).Once()
	s.mockStore.On("Set", mock.Anything, mock.Anything, report).Return(errors.New("database error")).Once()

	recorder := s.serve(coordsRequest(`{"lat":1,"lon":2}`))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.mockResolver.AssertNotCalled(s.T(), "CoordinatesToPlaceParts", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsTimeout() {
	s.router = s.newRouter(50 * time.Millisecond)

	s.mockAggregator.On("WeatherByCoordinates", mock.Anything, 1.0, 2.0).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded).Once()

	recorder := s.serve(coordsRequest(`{"lat":1,"lon":2}`))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.JSONEq(`{"error":"failed to get weather data"}`, recorder.Body.String())
}

func (s *WebHandlerTestSuite) TestIndexEmptySession() {
	s.mockStore.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil).Once()

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Header().Get("Content-Type"), "text/html")
	body := recorder.Body.String()
	s.Contains(body, `name="cityName"`)
	s.NotContains(body, `id="current"`)
	s.NotContains(body, "Location not found")
}

func (s *WebHandlerTestSuite) TestIndexRendersSessionReport() {
	s.mockStore.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(sampleReport("Lisbon, PT"), true, nil).Once()

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	s.Contains(body, "Lisbon, PT")
	s.Contains(body, "light rain")
	s.Contains(body, "09:00")
	s.Contains(body, "2024-06-02")
	s.Contains(body, "Air quality: Poor (4)")
	s.Contains(body, "PM2.5: 12.3")
	s.NotContains(body, "PM10:")
}

func (s *WebHandlerTestSuite) TestIndexStoreFailureStillRenders() {
	s.mockStore.On("Get", mock.Anything, mock.Anything).Return(nil, false, errors.New("connection refused")).Once()

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.NotContains(recorder.Body.String(), `id="current"`)
}

func (s *WebHandlerTestSuite) TestSearchByName() {
	report := sampleReport("")
	s.mockAggregator.On("WeatherByName", mock.Anything, "Austin", "TX", "US").Return(report, nil).Once()
	s.mockStore.On("Clear", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

	recorder := s.serve(formRequest(url.Values{
		"cityName":    {"Austin"},
		"stateName":   {"TX"},
		"countryName": {"US"},
	}))

	s.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	s.Contains(body, `value="Austin"`)
	s.Contains(body, "<h2>Austin</h2>")
	s.Contains(body, "light rain")
}

func (s *WebHandlerTestSuite) TestSearchByNameNotFound() {
	s.mockAggregator.On("WeatherByName", mock.Anything, "Atlantis", "", "").Return(nil, nil).Once()
	s.mockStore.On("Clear", mock.Anything, mock.Anything).Return(nil).Once()

	recorder := s.serve(formRequest(url.Values{
		"cityName":    {"Atlantis"},
		"stateName":   {""},
		"countryName": {""},
	}))

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Location not found")
	s.NotContains(recorder.Body.String(), `id="current"`)
}

func (s *WebHandlerTestSuite) TestSearchByNameMissingField() {
	recorder := s.serve(formRequest(url.Values{
		"cityName":  {"Austin"},
		"stateName": {"TX"},
	}))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(recorder.Header().Get("Content-Type"), "text/html")
	s.Contains(recorder.Body.String(), "Please fill in city, state and country")
	s.Contains(recorder.Body.String(), "missing input: countryName")
	s.mockAggregator.AssertNotCalled(s.T(), "WeatherByName", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockStore.AssertNotCalled(s.T(), "Clear", mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestSearchByNameInvalidForm() {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("cityName=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := s.serve(req)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(recorder.Header().Get("Content-Type"), "text/html")
	s.Contains(recorder.Body.String(), "Invalid search form.")
	s.Contains(recorder.Body.String(), `name="cityName"`)
	s.mockAggregator.AssertNotCalled(s.T(), "WeatherByName", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestSearchByNameMissingInputIsBadRequest() {
	s.mockAggregator.On("WeatherByName", mock.Anything, "", "", "").
		Return(nil, fmt.Errorf("%w: city", service.ErrMissingInput)).Once()

	recorder := s.serve(formRequest(url.Values{
		"cityName":    {""},
		"stateName":   {""},
		"countryName": {""},
	}))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(recorder.Body.String(), "Please fill in city, state and country.")
	s.mockStore.AssertNotCalled(s.T(), "Clear", mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestWeatherByCoordsMissingInputIsBadRequest() {
	s.mockAggregator.On("WeatherByCoordinates", mock.Anything, 1.0, 2.0).
		Return(nil, fmt.Errorf("lookup: %w", service.ErrMissingInput)).Once()

	recorder := s.serve(coordsRequest(`{"lat":1,"lon":2}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.JSONEq(`{"error":"Missing coordinates"}`, recorder.Body.String())
	s.mockStore.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestSearchByNameUpstreamFailureKeepsSession() {
	s.mockAggregator.On("WeatherByName", mock.Anything, "Oslo", "", "NO").
		Return(nil, errors.New("forecast request failed: timeout")).Once()

	recorder := s.serve(formRequest(url.Values{
		"cityName":    {"Oslo"},
		"stateName":   {""},
		"countryName": {"NO"},
	}))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Contains(recorder.Body.String(), "Failed to get weather data")
	s.NotContains(recorder.Body.String(), "Location not found")
	s.mockStore.AssertNotCalled(s.T(), "Clear", mock.Anything, mock.Anything)
}

func (s *WebHandlerTestSuite) TestSessionCookieIsReused() {
	var firstID, secondID string

	s.mockStore.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { firstID = args.String(1) }).
		Return(nil, false, nil).Once()

	first := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := first.Result().Cookies()
	s.Require().Len(cookies, 1)

	s.mockStore.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { secondID = args.String(1) }).
		Return(nil, false, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	second := s.serve(req)

	s.Empty(second.Result().Cookies())
	s.NotEmpty(firstID)
	s.Equal(firstID, secondID)
}

func (s *WebHandlerTestSuite) TestUnknownRoute() {
	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/forecast", nil))

	s.Equal(http.StatusNotFound, recorder.Code)
}

func TestWebHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebHandlerTestSuite))
}
