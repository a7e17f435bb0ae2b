package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/sirupsen/logrus"

	"github.com/quantfox/stockpulse/Internal/types"
)

// priceHistoryDays is how many daily bars each analysis run works with. The
// risk scorer needs 20, so 30 leaves headroom for holidays.
const priceHistoryDays = 30

// AlpacaPriceProvider fetches daily bars from the Alpaca Market Data API.
type AlpacaPriceProvider struct {
	client *marketdata.Client
	log    *logrus.Entry
}

func NewAlpacaPriceProvider(apiKey, apiSecret string) *AlpacaPriceProvider {
	return &AlpacaPriceProvider{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
		log: logrus.WithField("provider", "alpaca"),
	}
}

func (p *AlpacaPriceProvider) FetchPrices(ctx context.Context, symbols []string) (map[string][]types.DailyBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Calendar window is twice the bar count so weekends and holidays do not
	// starve the history.
	start := time.Now().UTC().AddDate(0, 0, -priceHistoryDays*2)

	p.log.WithField("symbols", len(symbols)).Debug("fetching daily bars")
	multiBars, err := p.client.GetMultiBars(symbols, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca bars request: %w", err)
	}

	result := make(map[string][]types.DailyBar, len(symbols))
	for _, symbol := range symbols {
		raw := multiBars[symbol]
		if len(raw) == 0 {
			return nil, fmt.Errorf("alpaca returned no bars for %s", symbol)
		}

		// The API returns bars oldest-first; reverse to newest-first.
		bars := make([]types.DailyBar, 0, len(raw))
		for i := len(raw) - 1; i >= 0; i-- {
			b := raw[i]
			bars = append(bars, types.DailyBar{
				Date:   b.Timestamp.Format("2006-01-02"),
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: int64(b.Volume),
			})
		}
		if len(bars) > priceHistoryDays {
			bars = bars[:priceHistoryDays]
		}
		result[symbol] = bars
	}
	return result, nil
}
