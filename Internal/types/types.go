package types

// DailyBar is a single day's OHLCV record. Bar sequences are ordered
// newest-first and are never mutated after fetch.
type DailyBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// FundamentalsRecord is a company snapshot, one per symbol.
type FundamentalsRecord struct {
	CompanyName     string  `json:"companyName"`
	Sector          string  `json:"sector"`
	Industry        string  `json:"industry"`
	MarketCap       float64 `json:"marketCap"`
	PERatio         float64 `json:"peRatio"`
	Dividend        float64 `json:"dividend"`
	Beta            float64 `json:"beta"`
	PriceToBook     float64 `json:"priceToBook"`
	PriceToSales    float64 `json:"priceToSales"`
	DebtToEquity    float64 `json:"debtToEquity"`
	EPSGrowth       float64 `json:"epsGrowth"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	NetIncomeGrowth float64 `json:"netIncomeGrowth"`
}

// SentimentRecord aggregates news coverage for one symbol. The buy/hold/sell
// signals are derived weights, not literal analyst counts.
type SentimentRecord struct {
	ArticleCount int `json:"articles"`
	Positive     int `json:"positive"`
	Negative     int `json:"negative"`
	Neutral      int `json:"neutral"`
	BuySignal    int `json:"buy"`
	HoldSignal   int `json:"hold"`
	SellSignal   int `json:"sell"`
}

// Recommendation labels. The current score mapping only emits Buy and Hold,
// the full scale stays part of the output contract.
const (
	RecommendationStrongBuy = "Strong Buy"
	RecommendationBuy       = "Buy"
	RecommendationHold      = "Hold"
	RecommendationSell      = "Sell"
)

// StockData is one display-ready row of the analysis output.
type StockData struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Change         float64 `json:"change"`
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation"`
}

// MarketData is the market-overview snapshot attached to every result.
type MarketData struct {
	Indices map[string]map[string]float64 `json:"indices"`
	Sectors map[string]map[string]float64 `json:"sectors"`
}

// AnalysisResult is the single externally visible output of one analysis run.
type AnalysisResult struct {
	TopStocks  []StockData `json:"topStocks"`
	MarketData MarketData  `json:"marketData"`
}
