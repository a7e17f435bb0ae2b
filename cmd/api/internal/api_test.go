package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfox/stockpulse/Internal/analysis"
	"github.com/quantfox/stockpulse/Internal/providers"
	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils/config"
)

func testAPI() *API {
	cfg := config.DefaultConfig()
	analyzer := analysis.New(
		providers.NewMockPriceProvider(1),
		providers.NewMockFundamentalsProvider(2),
		providers.NewMockSentimentProvider(3),
		cfg,
	)
	return &API{Analyzer: analyzer, MaxTopN: len(cfg.Analysis.Symbols)}
}

func TestHandleRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	testAPI().HandleRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Welcome to the Stock Analysis API", body["message"])
}

func TestHandleAnalyze_ReturnsFullResult(t *testing.T) {
	rec := httptest.NewRecorder()
	testAPI().HandleAnalyze(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result types.AnalysisResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Len(t, result.TopStocks, 5)
	assert.NotEmpty(t, result.MarketData.Indices)
}

func TestHandleAnalyze_TopNQueryParameter(t *testing.T) {
	rec := httptest.NewRecorder()
	testAPI().HandleAnalyze(rec, httptest.NewRequest(http.MethodGet, "/api/analyze?n=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AnalysisResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Len(t, result.TopStocks, 2)
}

func TestHandleAnalyze_RejectsInvalidN(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-1", "99"} {
		rec := httptest.NewRecorder()
		testAPI().HandleAnalyze(rec, httptest.NewRequest(http.MethodGet, "/api/analyze?n="+raw, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
	}
}
