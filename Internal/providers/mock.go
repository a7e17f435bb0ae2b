package providers

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/quantfox/stockpulse/Internal/types"
)

// Mock providers generate random data with the same shapes as their live
// counterparts. They are used whenever a data source's credentials are
// missing, so the pipeline stays runnable out of the box.

// MockPriceProvider generates a 30-day random walk per symbol.
type MockPriceProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockPriceProvider(seed int64) *MockPriceProvider {
	return &MockPriceProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *MockPriceProvider) FetchPrices(ctx context.Context, symbols []string) (map[string][]types.DailyBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	result := make(map[string][]types.DailyBar, len(symbols))
	for _, symbol := range symbols {
		basePrice := 50 + p.rng.Float64()*450
		bars := make([]types.DailyBar, 0, priceHistoryDays)
		for i := 0; i < priceHistoryDays; i++ {
			change := -0.03 + p.rng.Float64()*0.06
			price := basePrice * (1 + change)
			bars = append(bars, types.DailyBar{
				Date:   now.AddDate(0, 0, -i).Format("2006-01-02"),
				Open:   price * (1 - p.rng.Float64()*0.01),
				High:   price * (1 + p.rng.Float64()*0.01),
				Low:    price * (1 - p.rng.Float64()*0.01),
				Close:  price,
				Volume: int64(100000 + p.rng.Float64()*900000),
			})
			basePrice = price
		}
		result[symbol] = bars
	}
	return result, nil
}

// MockFundamentalsProvider generates uniform-random company snapshots.
type MockFundamentalsProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockFundamentalsProvider(seed int64) *MockFundamentalsProvider {
	return &MockFundamentalsProvider{rng: rand.New(rand.NewSource(seed))}
}

var mockSectors = []string{"Technology", "Healthcare", "Finance", "Consumer Goods"}

func (p *MockFundamentalsProvider) FetchFundamentals(ctx context.Context, symbols []string) (map[string]types.FundamentalsRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make(map[string]types.FundamentalsRecord, len(symbols))
	for _, symbol := range symbols {
		result[symbol] = types.FundamentalsRecord{
			CompanyName:     fmt.Sprintf("%s Inc.", symbol),
			Sector:          mockSectors[p.rng.Intn(len(mockSectors))],
			Industry:        "Various",
			MarketCap:       1e9 + p.rng.Float64()*(1e12-1e9),
			PERatio:         10 + p.rng.Float64()*40,
			Dividend:        p.rng.Float64() * 5,
			Beta:            0.5 + p.rng.Float64()*1.5,
			PriceToBook:     1 + p.rng.Float64()*9,
			PriceToSales:    1 + p.rng.Float64()*19,
			DebtToEquity:    p.rng.Float64() * 2,
			EPSGrowth:       -0.1 + p.rng.Float64()*0.4,
			RevenueGrowth:   -0.05 + p.rng.Float64()*0.25,
			NetIncomeGrowth: -0.1 + p.rng.Float64()*0.35,
		}
	}
	return result, nil
}

// MockSentimentProvider generates random article counts with the derived
// buy/hold/sell signal arithmetic of the live provider.
type MockSentimentProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockSentimentProvider(seed int64) *MockSentimentProvider {
	return &MockSentimentProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *MockSentimentProvider) FetchSentiment(ctx context.Context, symbols []string) (map[string]types.SentimentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make(map[string]types.SentimentRecord, len(symbols))
	for _, symbol := range symbols {
		total := 10 + p.rng.Intn(41)
		positive := p.rng.Intn(total + 1)
		negative := p.rng.Intn(total - positive + 1)
		neutral := total - positive - negative

		result[symbol] = types.SentimentRecord{
			ArticleCount: total,
			Positive:     positive,
			Negative:     negative,
			Neutral:      neutral,
			BuySignal:    5 + 10*positive/total,
			HoldSignal:   3 + 5*neutral/total,
			SellSignal:   5 * negative / total,
		}
	}
	return result, nil
}
