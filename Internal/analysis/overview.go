package analysis

import "github.com/quantfox/stockpulse/Internal/types"

// MarketOverview returns the static indices/sectors snapshot attached to
// every analysis result. Live index data is out of scope for now.
func MarketOverview() types.MarketData {
	return types.MarketData{
		Indices: map[string]map[string]float64{
			"S&P 500": {"value": 4200, "change": 0.5},
			"NASDAQ":  {"value": 14000, "change": 0.7},
			"DOW":     {"value": 34000, "change": 0.3},
		},
		Sectors: map[string]map[string]float64{
			"Technology": {"performance": 1.2, "weight": 25},
			"Healthcare": {"performance": 0.8, "weight": 15},
			"Finance":    {"performance": 0.5, "weight": 20},
			"Consumer":   {"performance": 0.3, "weight": 15},
			"Energy":     {"performance": -0.2, "weight": 10},
			"Others":     {"performance": 0.1, "weight": 15},
		},
	}
}
