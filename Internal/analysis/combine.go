package analysis

import (
	"fmt"

	"github.com/quantfox/stockpulse/Internal/utils/config"
)

// MissingDataError reports a symbol that one of the factor sets (or the
// ranker's source data) does not cover. It always aborts the run; partial
// results are never produced.
type MissingDataError struct {
	Symbol string
	Factor string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing %s data for symbol %s", e.Factor, e.Symbol)
}

// CombineScores produces the weighted blend of the four factor scores per
// symbol. The technical set is the iteration key; a symbol absent from any
// other factor set is a MissingDataError, never silently skipped, because
// ranking requires all four scores for every symbol.
func CombineScores(technical, fundamental, sentiment, risk map[string]float64, w config.Weights) (map[string]float64, error) {
	combined := make(map[string]float64, len(technical))
	for symbol, t := range technical {
		f, ok := fundamental[symbol]
		if !ok {
			return nil, &MissingDataError{Symbol: symbol, Factor: FactorFundamental}
		}
		s, ok := sentiment[symbol]
		if !ok {
			return nil, &MissingDataError{Symbol: symbol, Factor: FactorSentiment}
		}
		r, ok := risk[symbol]
		if !ok {
			return nil, &MissingDataError{Symbol: symbol, Factor: FactorRisk}
		}

		combined[symbol] = t*w.Technical + f*w.Fundamental + s*w.Sentiment + r*w.Risk
	}
	return combined, nil
}
