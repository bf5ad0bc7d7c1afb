package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout-trader/internal/api/models"
	"breakout-trader/internal/data"
)

var demoPrices = []float64{
	100, 101, 99, 102, 103, 104, 103, 105, 106, 107,
	108, 109, 110, 111, 110, 112, 113, 114, 115, 116, 118,
}

var demoVolumes = []float64{
	1000, 1100, 900, 1200, 1300, 1250, 1400, 1500, 1600, 1550,
	1700, 1800, 1750, 1900, 1850, 2000, 2100, 2200, 2300, 2400, 6000,
}

func newTestRouter(store *data.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	evaluateHandler := NewEvaluateHandler(store)
	datasetHandler := NewDatasetHandler(store)
	strategyHandler := NewStrategyHandler()

	api := router.Group("/api/v1")
	api.POST("/evaluate", evaluateHandler.Evaluate)
	api.POST("/analyze", evaluateHandler.Analyze)
	api.GET("/strategies", strategyHandler.ListStrategies)
	api.PUT("/datasets/:name", datasetHandler.Upload)
	api.GET("/datasets", datasetHandler.List)
	api.DELETE("/datasets/:name", datasetHandler.Delete)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEvaluateInlineSeriesBuys(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate", models.EvaluateRequest{
		Series:            &models.SeriesPayload{Prices: demoPrices, Volumes: demoVolumes},
		Portfolio:         models.PortfolioPayload{CashBalance: 1000},
		IncludeIndicators: true,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BUY", string(resp.Result.Action))
	assert.Equal(t, "ALL-IN BUY on breakout", resp.Result.Message)
	assert.InDelta(t, 1000.0/118.0, resp.Result.SharesTraded, 1e-9)
	require.NotNil(t, resp.Indicators)
	assert.Equal(t, 116.0, resp.Indicators.RecentHigh)
}

func TestEvaluateShortSeriesStops(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate", models.EvaluateRequest{
		Series:    &models.SeriesPayload{Prices: demoPrices[:19], Volumes: demoVolumes[:19]},
		Portfolio: models.PortfolioPayload{CashBalance: 1000},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STOP", string(resp.Result.Action))
	assert.Contains(t, resp.Result.Message, "Not enough data")
	assert.Contains(t, resp.Result.Message, "21")
	assert.Contains(t, resp.Result.Message, "20")
}

func TestEvaluateAgainstUploadedDataset(t *testing.T) {
	store := data.NewStore()
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPut, "/api/v1/datasets/demo", models.SeriesPayload{
		Prices:  demoPrices,
		Volumes: demoVolumes,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/evaluate", models.EvaluateRequest{
		Dataset:   "demo",
		Portfolio: models.PortfolioPayload{CashBalance: 1000},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BUY", string(resp.Result.Action))
	assert.Nil(t, resp.Indicators)
}

func TestEvaluateUnknownDataset(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate", models.EvaluateRequest{
		Dataset:   "missing",
		Portfolio: models.PortfolioPayload{CashBalance: 1000},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNKNOWN_DATASET", resp.Error.Code)
}

func TestEvaluateMissingSeries(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate", models.EvaluateRequest{
		Portfolio: models.PortfolioPayload{CashBalance: 1000},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MISSING_SERIES", resp.Error.Code)
}

func TestEvaluateRejectsBadOverrides(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate", models.EvaluateRequest{
		Series:    &models.SeriesPayload{Prices: demoPrices, Volumes: demoVolumes},
		Portfolio: models.PortfolioPayload{CashBalance: 1000},
		Strategy:  models.StrategyOverrides{LongWindow: -3},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_STRATEGY", resp.Error.Code)
}

func TestAnalyzeReturnsSnapshot(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{
		Series: &models.SeriesPayload{Prices: demoPrices, Volumes: demoVolumes},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Indicators)
	assert.Equal(t, 118.0, resp.Indicators.CurrentPrice)
	assert.Equal(t, 116.0, resp.Indicators.RecentHigh)
	assert.InDelta(t, 1890.0, resp.Indicators.AvgVolume, 1e-9)
}

func TestAnalyzeShortSeries(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", models.AnalyzeRequest{
		Series: &models.SeriesPayload{Prices: demoPrices[:5], Volumes: demoVolumes[:5]},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListStrategies(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodGet, "/api/v1/strategies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Strategies []models.StrategyInfo `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Strategies, 1)
	assert.Equal(t, "breakout", resp.Strategies[0].Name)
	assert.Len(t, resp.Strategies[0].Parameters, 5)
}

func TestDatasetLifecycle(t *testing.T) {
	store := data.NewStore()
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPut, "/api/v1/datasets/aapl", models.SeriesPayload{
		Prices:  demoPrices,
		Volumes: demoVolumes,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/datasets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Datasets []models.DatasetInfo `json:"datasets"`
		Count    int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, 1, listResp.Count)
	assert.Equal(t, "aapl", listResp.Datasets[0].Name)
	assert.Equal(t, 21, listResp.Datasets[0].Points)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/datasets/aapl", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, ok := store.Get("aapl")
	assert.False(t, ok)
}

func TestUploadRejectsMisalignedDataset(t *testing.T) {
	router := newTestRouter(data.NewStore())

	w := doJSON(t, router, http.MethodPut, "/api/v1/datasets/bad", models.SeriesPayload{
		Prices:  []float64{1, 2, 3},
		Volumes: []float64{1},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DATASET", resp.Error.Code)
}
