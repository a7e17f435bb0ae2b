package analysis

import (
	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils"
)

// technicalWindow is the lookback for the momentum signal: the latest close
// and volume are compared against the bar five sessions back.
const technicalWindow = 5

// TechnicalScore converts recent price momentum and volume change into a
// [0,1] score. Momentum dominates (weight 5), volume change is a minor
// confirming signal (weight 0.2). Fewer than five bars cannot support the
// five-day signal, so the neutral score is returned. A zero baseline close
// or volume would make the ratios undefined and is treated the same way.
func TechnicalScore(bars []types.DailyBar) float64 {
	if len(bars) < technicalWindow {
		return NeutralScore
	}

	base := bars[technicalWindow-1]
	if base.Close == 0 || base.Volume == 0 {
		return NeutralScore
	}

	priceChange := (bars[0].Close - base.Close) / base.Close
	volumeChange := float64(bars[0].Volume-base.Volume) / float64(base.Volume)

	return utils.Clamp(0.5+priceChange*5+volumeChange*0.2, 0, 1)
}

// TechnicalScores scores every symbol in the price map.
func TechnicalScores(prices map[string][]types.DailyBar) map[string]float64 {
	scores := make(map[string]float64, len(prices))
	for symbol, bars := range prices {
		scores[symbol] = TechnicalScore(bars)
	}
	return scores
}
