package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airadvisor/airadvisor/internal/advisory"
	"github.com/airadvisor/airadvisor/internal/api"
	"github.com/airadvisor/airadvisor/internal/cityprofile"
	"github.com/airadvisor/airadvisor/internal/classifier"
	"github.com/airadvisor/airadvisor/internal/dashboard"
	"github.com/airadvisor/airadvisor/internal/reading"
)

// fixedModel always predicts the same label.
type fixedModel struct {
	label string
}

func (m fixedModel) Predict([]float64) (string, error) {
	return m.label, nil
}

func (m fixedModel) PredictProbabilities([]float64) (map[string]float64, error) {
	return map[string]float64{m.label: 0.9, "Low": 0.1}, nil
}

func testRouterConfig(profiles *cityprofile.Store, data dashboard.Data) api.RouterConfig {
	bundle := classifier.NewBundle(
		[]string{"pm25", "pm10", "no2", "so2", "co", "o3", "temperature", "humidity"},
		fixedModel{label: "Moderate"},
	)
	logger := zerolog.New(io.Discard)

	return api.RouterConfig{
		Version: "test",
		Logger:  logger,
		AdvisoryService: advisory.NewService(advisory.ServiceConfig{
			Profiles: profiles,
			Bundle:   bundle,
			Logger:   logger,
		}),
		Profiles:  profiles,
		Dashboard: data,
	}
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Liveness(t *testing.T) {
	router := api.NewRouter(testRouterConfig(nil, nil))

	rec := doRequest(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["status"], "running")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_Predict_EndToEnd(t *testing.T) {
	router := api.NewRouter(testRouterConfig(nil, nil))

	rec := doRequest(t, router, http.MethodPost, "/predict", []byte(`{"pm25": 35.4}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		City          *string             `json:"city"`
		Prediction    string              `json:"prediction"`
		Probabilities map[string]float64  `json:"probabilities"`
		SubAQI        map[string]*float64 `json:"sub_aqi"`
		AQI           *float64            `json:"aqi"`
		AQICategory   *string             `json:"aqi_category"`
		MainPollutant *string             `json:"main_pollutant"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Nil(t, body.City)
	assert.Equal(t, "Moderate", body.Prediction)
	assert.InDelta(t, 1.0, body.Probabilities["Moderate"]+body.Probabilities["Low"], 1e-9)

	require.NotNil(t, body.SubAQI["pm25"])
	assert.Equal(t, 100.0, *body.SubAQI["pm25"])
	assert.Nil(t, body.SubAQI["pm10"])

	require.NotNil(t, body.AQI)
	assert.Equal(t, 100.0, *body.AQI)
	require.NotNil(t, body.AQICategory)
	assert.Equal(t, "Moderate", *body.AQICategory)
	require.NotNil(t, body.MainPollutant)
	assert.Equal(t, "pm25", *body.MainPollutant)
}

func TestRouter_Predict_CityDefaults(t *testing.T) {
	profiles := cityprofile.NewStore(map[string]reading.Set{
		"Manila": {reading.FieldPM25: 12.0, reading.FieldPM10: 30},
	})
	router := api.NewRouter(testRouterConfig(profiles, nil))

	rec := doRequest(t, router, http.MethodPost, "/predict", []byte(`{"city": "manila", "pm25": 35.4}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		City       *string             `json:"city"`
		InputsUsed map[string]*float64 `json:"inputs_used"`
		AQI        *float64            `json:"aqi"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// The request city is echoed verbatim.
	require.NotNil(t, body.City)
	assert.Equal(t, "manila", *body.City)

	// Explicit pm25 wins, stored pm10 survives.
	require.NotNil(t, body.InputsUsed["pm25"])
	assert.Equal(t, 35.4, *body.InputsUsed["pm25"])
	require.NotNil(t, body.InputsUsed["pm10"])
	assert.Equal(t, 30.0, *body.InputsUsed["pm10"])
	assert.Nil(t, body.InputsUsed["no2"])
}

func TestRouter_Predict_InvalidBody(t *testing.T) {
	router := api.NewRouter(testRouterConfig(nil, nil))

	rec := doRequest(t, router, http.MethodPost, "/predict", []byte(`{broken`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRouter_Cities_FromStore(t *testing.T) {
	profiles := cityprofile.NewStore(map[string]reading.Set{
		"Taguig": {},
		"Makati": {},
	})
	router := api.NewRouter(testRouterConfig(profiles, nil))

	rec := doRequest(t, router, http.MethodGet, "/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cities []string `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Makati", "Taguig"}, body.Cities)
}

func TestRouter_Cities_Fallback(t *testing.T) {
	router := api.NewRouter(testRouterConfig(cityprofile.NewStore(nil), nil))

	rec := doRequest(t, router, http.MethodGet, "/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cities []string `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Cities, "Quezon City")
	assert.Contains(t, body.Cities, "Manila")
}

func TestRouter_Dashboard_Verbatim(t *testing.T) {
	data := dashboard.Data{"model_accuracy": 0.91, "top_city": "Pasig"}
	router := api.NewRouter(testRouterConfig(nil, data))

	rec := doRequest(t, router, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0.91, body["model_accuracy"])
	assert.Equal(t, "Pasig", body["top_city"])
}

func TestRouter_Dashboard_Fallback(t *testing.T) {
	router := api.NewRouter(testRouterConfig(nil, nil))

	rec := doRequest(t, router, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, ok := body["model_accuracy"]
	assert.True(t, ok)
}

func TestRouter_CORSHeaders(t *testing.T) {
	router := api.NewRouter(testRouterConfig(nil, nil))

	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
