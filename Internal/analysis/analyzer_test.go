package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfox/stockpulse/Internal/providers"
	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Analysis.Symbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA"}
	cfg.Analysis.TopN = 3
	return cfg
}

func testAnalyzer() *Analyzer {
	return New(
		providers.NewMockPriceProvider(1),
		providers.NewMockFundamentalsProvider(2),
		providers.NewMockSentimentProvider(3),
		testConfig(),
	)
}

func TestAnalyzerRun_FullPipeline(t *testing.T) {
	result, err := testAnalyzer().Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.TopStocks, 3)

	for i, stock := range result.TopStocks {
		assert.NotEmpty(t, stock.Symbol)
		assert.NotEmpty(t, stock.Name)
		assert.NotEmpty(t, stock.Recommendation)
		assert.GreaterOrEqual(t, stock.Score, 0.0)
		assert.LessOrEqual(t, stock.Score, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, result.TopStocks[i-1].Score, stock.Score)
		}
	}

	assert.NotEmpty(t, result.MarketData.Indices)
	assert.NotEmpty(t, result.MarketData.Sectors)
}

func TestAnalyzerRunTopN_CappedAtUniverseSize(t *testing.T) {
	result, err := testAnalyzer().RunTopN(context.Background(), 100)

	require.NoError(t, err)
	assert.Len(t, result.TopStocks, 6)
}

type failingPriceProvider struct{}

func (failingPriceProvider) FetchPrices(ctx context.Context, symbols []string) (map[string][]types.DailyBar, error) {
	return nil, errors.New("upstream unavailable")
}

func TestAnalyzerRun_ProviderFailureAbortsRun(t *testing.T) {
	a := New(
		failingPriceProvider{},
		providers.NewMockFundamentalsProvider(2),
		providers.NewMockSentimentProvider(3),
		testConfig(),
	)

	result, err := a.Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "fetching market data")
}

func TestAnalyzerRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := testAnalyzer().Run(ctx)

	require.Error(t, err)
	assert.Nil(t, result)
}
