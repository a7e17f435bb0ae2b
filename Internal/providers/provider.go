package providers

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quantfox/stockpulse/Internal/types"
)

// PriceProvider yields, per symbol, daily OHLCV bars ordered newest-first.
type PriceProvider interface {
	FetchPrices(ctx context.Context, symbols []string) (map[string][]types.DailyBar, error)
}

// FundamentalsProvider yields one company snapshot per symbol.
type FundamentalsProvider interface {
	FetchFundamentals(ctx context.Context, symbols []string) (map[string]types.FundamentalsRecord, error)
}

// SentimentProvider yields aggregate news sentiment counts per symbol.
type SentimentProvider interface {
	FetchSentiment(ctx context.Context, symbols []string) (map[string]types.SentimentRecord, error)
}

// Credentials holds the per-source API keys. An empty key switches that
// source to its mock variant at construction time.
type Credentials struct {
	AlpacaKey    string
	AlpacaSecret string
	FMPKey       string
	NewsAPIKey   string
}

func CredentialsFromEnv() Credentials {
	return Credentials{
		AlpacaKey:    os.Getenv("ALPACA_API_KEY"),
		AlpacaSecret: os.Getenv("ALPACA_API_SECRET"),
		FMPKey:       os.Getenv("FMP_API_KEY"),
		NewsAPIKey:   os.Getenv("NEWS_API_KEY"),
	}
}

// NewPriceProvider selects the live Alpaca client when credentials are
// present, otherwise the mock generator.
func NewPriceProvider(creds Credentials) PriceProvider {
	if creds.AlpacaKey == "" || creds.AlpacaSecret == "" {
		logrus.Warn("Alpaca API keys not configured, using mock price data")
		return NewMockPriceProvider(time.Now().UnixNano())
	}
	return NewAlpacaPriceProvider(creds.AlpacaKey, creds.AlpacaSecret)
}

func NewFundamentalsProvider(creds Credentials) FundamentalsProvider {
	if creds.FMPKey == "" {
		logrus.Warn("FMP API key not configured, using mock fundamentals data")
		return NewMockFundamentalsProvider(time.Now().UnixNano())
	}
	return NewFMPProvider(creds.FMPKey)
}

func NewSentimentProvider(creds Credentials) SentimentProvider {
	if creds.NewsAPIKey == "" {
		logrus.Warn("News API key not configured, using mock sentiment data")
		return NewMockSentimentProvider(time.Now().UnixNano())
	}
	return NewNewsAPIProvider(creds.NewsAPIKey)
}
