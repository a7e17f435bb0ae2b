package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSymbols = []string{"AAPL", "MSFT", "GOOGL"}

func TestMockPriceProvider_ShapeContract(t *testing.T) {
	prices, err := NewMockPriceProvider(42).FetchPrices(context.Background(), testSymbols)

	require.NoError(t, err)
	require.Len(t, prices, len(testSymbols))

	for symbol, bars := range prices {
		require.Len(t, bars, priceHistoryDays, symbol)
		for i, bar := range bars {
			assert.Greater(t, bar.Close, 0.0)
			assert.Greater(t, bar.Volume, int64(0))
			assert.GreaterOrEqual(t, bar.High, bar.Low)
			if i > 0 {
				// Newest-first ordering, dates strictly descending.
				assert.Greater(t, bars[i-1].Date, bar.Date)
			}
		}
	}
}

func TestMockFundamentalsProvider_ShapeContract(t *testing.T) {
	fundamentals, err := NewMockFundamentalsProvider(42).FetchFundamentals(context.Background(), testSymbols)

	require.NoError(t, err)
	require.Len(t, fundamentals, len(testSymbols))

	for symbol, rec := range fundamentals {
		assert.Equal(t, symbol+" Inc.", rec.CompanyName)
		assert.NotEmpty(t, rec.Sector)
		assert.Greater(t, rec.PERatio, 0.0)
		assert.GreaterOrEqual(t, rec.DebtToEquity, 0.0)
	}
}

func TestMockSentimentProvider_ShapeContract(t *testing.T) {
	sentiment, err := NewMockSentimentProvider(42).FetchSentiment(context.Background(), testSymbols)

	require.NoError(t, err)
	require.Len(t, sentiment, len(testSymbols))

	for symbol, rec := range sentiment {
		assert.Equal(t, rec.ArticleCount, rec.Positive+rec.Negative+rec.Neutral, symbol)
		assert.GreaterOrEqual(t, rec.ArticleCount, 10)
		assert.GreaterOrEqual(t, rec.BuySignal, 5)
		assert.GreaterOrEqual(t, rec.HoldSignal, 3)
		assert.GreaterOrEqual(t, rec.SellSignal, 0)
	}
}

func TestMockProviders_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockPriceProvider(1).FetchPrices(ctx, testSymbols)
	assert.Error(t, err)

	_, err = NewMockFundamentalsProvider(1).FetchFundamentals(ctx, testSymbols)
	assert.Error(t, err)

	_, err = NewMockSentimentProvider(1).FetchSentiment(ctx, testSymbols)
	assert.Error(t, err)
}
