package analysis

import (
	"math"

	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils"
)

// FundamentalScore blends valuation, growth and leverage into a [0,1] score.
//
// The P/E sub-score penalizes ratios above 15 and decays toward 0 as the
// ratio grows; at or below 15 it stays at 1. The growth sub-score is the
// plain average of EPS and revenue growth and can go negative. The debt
// sub-score decays with leverage; a negative debt-to-equity (broken
// reported equity) is floored at 0 so the sub-score stays defined.
func FundamentalScore(rec types.FundamentalsRecord) float64 {
	peScore := 1 / (1 + math.Max(0, rec.PERatio-15)/10)
	growthScore := (rec.EPSGrowth + rec.RevenueGrowth) / 2
	debtScore := 1 / (1 + math.Max(0, rec.DebtToEquity))

	return utils.Clamp((peScore+growthScore+debtScore)/3, 0, 1)
}

// FundamentalScores scores every symbol in the fundamentals map.
func FundamentalScores(fundamentals map[string]types.FundamentalsRecord) map[string]float64 {
	scores := make(map[string]float64, len(fundamentals))
	for symbol, rec := range fundamentals {
		scores[symbol] = FundamentalScore(rec)
	}
	return scores
}
