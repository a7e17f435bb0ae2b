package analysis

import (
	"math"

	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils"
)

// riskWindow is the number of recent closes used for the volatility proxy.
const riskWindow = 20

// RiskScore rewards low-volatility symbols. Volatility is the root mean
// square of the 19 single-day returns over the most recent 20 closes; it is
// a proxy, not a true standard deviation, since the mean return is not
// subtracted. Fewer than 20 bars returns the neutral score. A zero prior
// close makes that day's return undefined and it counts as 0.
func RiskScore(bars []types.DailyBar) float64 {
	if len(bars) < riskWindow {
		return NeutralScore
	}

	n := riskWindow - 1
	var sumSquares float64
	for i := 0; i < n; i++ {
		prev := bars[i+1].Close
		if prev == 0 {
			continue
		}
		r := (bars[i].Close - prev) / prev
		sumSquares += r * r
	}

	volatility := math.Sqrt(sumSquares / float64(n))
	return utils.Clamp(1-volatility*10, 0, 1)
}

// RiskScores scores every symbol in the price map.
func RiskScores(prices map[string][]types.DailyBar) map[string]float64 {
	scores := make(map[string]float64, len(prices))
	for symbol, bars := range prices {
		scores[symbol] = RiskScore(bars)
	}
	return scores
}
