package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantfox/stockpulse/Internal/types"
)

func flatBars(n int, close float64) []types.DailyBar {
	bars := make([]types.DailyBar, n)
	for i := range bars {
		bars[i] = types.DailyBar{Close: close, Volume: 1000}
	}
	return bars
}

func TestRiskScore_InsufficientHistoryIsNeutral(t *testing.T) {
	assert.Equal(t, NeutralScore, RiskScore(flatBars(19, 100)))
	assert.Equal(t, NeutralScore, RiskScore(nil))
}

func TestRiskScore_FlatSeriesScoresPerfect(t *testing.T) {
	// Zero volatility, best possible inverse-risk score.
	assert.Equal(t, 1.0, RiskScore(flatBars(20, 100)))
}

func TestRiskScore_WildSwingsClampToZero(t *testing.T) {
	bars := make([]types.DailyBar, 20)
	for i := range bars {
		if i%2 == 0 {
			bars[i] = types.DailyBar{Close: 200}
		} else {
			bars[i] = types.DailyBar{Close: 100}
		}
	}

	assert.Equal(t, 0.0, RiskScore(bars))
}

func TestRiskScore_ZeroPriorCloseCountsAsZeroReturn(t *testing.T) {
	bars := flatBars(20, 100)
	bars[10].Close = 0

	score := RiskScore(bars)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestRiskScore_UsesOnlyRecentWindow(t *testing.T) {
	// Volatility beyond the 20 most recent closes must not matter.
	bars := flatBars(20, 100)
	bars = append(bars, types.DailyBar{Close: 1}, types.DailyBar{Close: 900})

	assert.Equal(t, 1.0, RiskScore(bars))
}
