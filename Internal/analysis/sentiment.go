package analysis

import (
	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils"
)

// SentimentScore converts news coverage counts into a [0,1] score. Zero
// total articles means no coverage and therefore no signal. The analyst
// ratio is left at 0 when all derived signals are zero, so the score then
// rests on the article ratio alone.
func SentimentScore(rec types.SentimentRecord) float64 {
	total := rec.Positive + rec.Negative + rec.Neutral
	if total == 0 {
		return NeutralScore
	}

	sentimentRatio := float64(rec.Positive-rec.Negative) / float64(total)

	analystRatio := 0.0
	if signals := rec.BuySignal + rec.HoldSignal + rec.SellSignal; signals > 0 {
		analystRatio = float64(rec.BuySignal-rec.SellSignal) / float64(signals)
	}

	return utils.Clamp(0.5+sentimentRatio*0.25+analystRatio*0.25, 0, 1)
}

// SentimentScores scores every symbol in the sentiment map.
func SentimentScores(sentiment map[string]types.SentimentRecord) map[string]float64 {
	scores := make(map[string]float64, len(sentiment))
	for symbol, rec := range sentiment {
		scores[symbol] = SentimentScore(rec)
	}
	return scores
}
