package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/quantfox/stockpulse/Internal/providers"
	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils/config"
)

// Analyzer runs the full scoring pipeline: concurrent provider fetch, four
// factor scorers, weighted combination and top-N selection. Each run is
// stateless and independent of prior runs.
type Analyzer struct {
	prices       providers.PriceProvider
	fundamentals providers.FundamentalsProvider
	sentiment    providers.SentimentProvider

	symbols      []string
	topN         int
	weights      config.Weights
	fetchTimeout time.Duration

	log *logrus.Entry
}

func New(prices providers.PriceProvider, fundamentals providers.FundamentalsProvider, sentiment providers.SentimentProvider, cfg *config.Config) *Analyzer {
	return &Analyzer{
		prices:       prices,
		fundamentals: fundamentals,
		sentiment:    sentiment,
		symbols:      cfg.Analysis.Symbols,
		topN:         cfg.Analysis.TopN,
		weights:      cfg.Analysis.Weights,
		fetchTimeout: time.Duration(cfg.Analysis.FetchTimeoutSeconds) * time.Second,
		log:          logrus.WithField("component", "analyzer"),
	}
}

// Run executes one analysis with the configured top-N.
func (a *Analyzer) Run(ctx context.Context) (*types.AnalysisResult, error) {
	return a.RunTopN(ctx, a.topN)
}

// RunTopN executes one analysis returning the n best symbols. The three
// provider fetches run concurrently; any failure or timeout aborts the whole
// run, a partial result is never returned.
func (a *Analyzer) RunTopN(ctx context.Context, n int) (*types.AnalysisResult, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	var (
		prices       map[string][]types.DailyBar
		fundamentals map[string]types.FundamentalsRecord
		sentiment    map[string]types.SentimentRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prices, err = a.prices.FetchPrices(ctx, a.symbols)
		return err
	})
	g.Go(func() error {
		var err error
		fundamentals, err = a.fundamentals.FetchFundamentals(ctx, a.symbols)
		return err
	})
	g.Go(func() error {
		var err error
		sentiment, err = a.sentiment.FetchSentiment(ctx, a.symbols)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching market data: %w", err)
	}

	technicalScores := TechnicalScores(prices)
	fundamentalScores := FundamentalScores(fundamentals)
	sentimentScores := SentimentScores(sentiment)
	riskScores := RiskScores(prices)

	combined, err := CombineScores(technicalScores, fundamentalScores, sentimentScores, riskScores, a.weights)
	if err != nil {
		return nil, err
	}

	top, err := TopStocks(combined, prices, fundamentals, n)
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"symbols":  len(a.symbols),
		"top_n":    n,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Info("analysis run complete")

	return &types.AnalysisResult{
		TopStocks:  top,
		MarketData: MarketOverview(),
	}, nil
}
