package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantfox/stockpulse/Internal/types"
)

func barsFrom(closes []float64, volumes []int64) []types.DailyBar {
	bars := make([]types.DailyBar, len(closes))
	for i := range closes {
		bars[i] = types.DailyBar{Close: closes[i], Volume: volumes[i]}
	}
	return bars
}

func TestTechnicalScore_StrongMomentumClampsToOne(t *testing.T) {
	// 5-day return of (110-98)/98 ≈ 0.1224 pushes the raw score past 1.
	bars := barsFrom(
		[]float64{110, 105, 102, 100, 98},
		[]int64{1000, 900, 1000, 1000, 1000},
	)

	assert.Equal(t, 1.0, TechnicalScore(bars))
}

func TestTechnicalScore_InsufficientHistoryIsNeutral(t *testing.T) {
	bars := barsFrom(
		[]float64{110, 105, 102, 100},
		[]int64{1000, 900, 1000, 1000},
	)

	assert.Equal(t, NeutralScore, TechnicalScore(bars))
	assert.Equal(t, NeutralScore, TechnicalScore(nil))
}

func TestTechnicalScore_ZeroBaselineIsNeutral(t *testing.T) {
	zeroClose := barsFrom(
		[]float64{110, 105, 102, 100, 0},
		[]int64{1000, 900, 1000, 1000, 1000},
	)
	zeroVolume := barsFrom(
		[]float64{110, 105, 102, 100, 98},
		[]int64{1000, 900, 1000, 1000, 0},
	)

	assert.Equal(t, NeutralScore, TechnicalScore(zeroClose))
	assert.Equal(t, NeutralScore, TechnicalScore(zeroVolume))
}

func TestTechnicalScore_SharpDropClampsToZero(t *testing.T) {
	bars := barsFrom(
		[]float64{50, 90, 95, 98, 100},
		[]int64{1000, 1000, 1000, 1000, 1000},
	)

	assert.Equal(t, 0.0, TechnicalScore(bars))
}

func TestTechnicalScores_CoversEverySymbol(t *testing.T) {
	prices := map[string][]types.DailyBar{
		"AAPL": barsFrom([]float64{110, 105, 102, 100, 98}, []int64{1000, 900, 1000, 1000, 1000}),
		"MSFT": nil,
	}

	scores := TechnicalScores(prices)

	assert.Len(t, scores, 2)
	for symbol, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, symbol)
		assert.LessOrEqual(t, score, 1.0, symbol)
	}
}
