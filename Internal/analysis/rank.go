package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/quantfox/stockpulse/Internal/types"
)

// buyThreshold separates Buy from Hold. The boundary is exclusive: a
// combined score of exactly 0.6 is a Hold.
const buyThreshold = 0.6

// Recommendation maps a combined score to its display label.
func Recommendation(score float64) string {
	if score > buyThreshold {
		return types.RecommendationBuy
	}
	return types.RecommendationHold
}

// TopStocks selects the n highest-scoring symbols and shapes them for
// display. Ties on combined score break on symbol name ascending so output
// is reproducible. Each selected symbol must have at least two price bars
// (for the day-over-day change) and a fundamentals record (for the company
// name); anything missing is a MissingDataError.
func TopStocks(combined map[string]float64, prices map[string][]types.DailyBar, fundamentals map[string]types.FundamentalsRecord, n int) ([]types.StockData, error) {
	symbols := make([]string, 0, len(combined))
	for symbol := range combined {
		symbols = append(symbols, symbol)
	}
	sort.SliceStable(symbols, func(i, j int) bool {
		si, sj := combined[symbols[i]], combined[symbols[j]]
		if si == sj {
			return symbols[i] < symbols[j]
		}
		return si > sj
	})

	if n > len(symbols) {
		n = len(symbols)
	}
	if n < 0 {
		n = 0
	}

	top := make([]types.StockData, 0, n)
	for _, symbol := range symbols[:n] {
		bars := prices[symbol]
		if len(bars) < 2 {
			return nil, &MissingDataError{Symbol: symbol, Factor: "price history"}
		}
		rec, ok := fundamentals[symbol]
		if !ok {
			return nil, &MissingDataError{Symbol: symbol, Factor: FactorFundamental}
		}

		change := 0.0
		if prev := bars[1].Close; prev != 0 {
			change = (bars[0].Close - prev) / prev * 100
		}

		top = append(top, types.StockData{
			Symbol:         symbol,
			Name:           rec.CompanyName,
			Price:          roundTo(bars[0].Close, 2),
			Change:         roundTo(change, 2),
			Score:          combined[symbol],
			Recommendation: Recommendation(combined[symbol]),
		})
	}
	return top, nil
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
