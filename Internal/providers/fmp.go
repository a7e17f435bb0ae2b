package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/quantfox/stockpulse/Internal/types"
	"github.com/quantfox/stockpulse/Internal/utils"
)

const (
	fmpBaseURL   = "https://financialmodelingprep.com/api/v3"
	fmpRateLimit = 5 // requests per second
)

// FMPProvider fetches company fundamentals from Financial Modeling Prep.
// One symbol needs three endpoints: profile, ratios and financial growth.
type FMPProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

func NewFMPProvider(apiKey string) *FMPProvider {
	return &FMPProvider{
		apiKey:  apiKey,
		baseURL: fmpBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(fmpRateLimit), fmpRateLimit),
		log:     logrus.WithField("provider", "fmp"),
	}
}

type fmpProfile struct {
	CompanyName string  `json:"companyName"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	MktCap      float64 `json:"mktCap"`
	PE          float64 `json:"pe"`
	LastDiv     float64 `json:"lastDiv"`
	Beta        float64 `json:"beta"`
}

type fmpRatios struct {
	PriceToBookRatio  float64 `json:"priceToBookRatio"`
	PriceToSalesRatio float64 `json:"priceToSalesRatio"`
	DebtToEquity      float64 `json:"debtToEquity"`
}

type fmpGrowth struct {
	EPSGrowth       float64 `json:"epsgrowth"`
	RevenueGrowth   float64 `json:"revenuegrowth"`
	NetIncomeGrowth float64 `json:"netIncomegrowth"`
}

func (p *FMPProvider) FetchFundamentals(ctx context.Context, symbols []string) (map[string]types.FundamentalsRecord, error) {
	result := make(map[string]types.FundamentalsRecord, len(symbols))
	for _, symbol := range symbols {
		rec, err := p.fetchCompany(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("fundamentals for %s: %w", symbol, err)
		}
		result[symbol] = rec
	}
	return result, nil
}

func (p *FMPProvider) fetchCompany(ctx context.Context, symbol string) (types.FundamentalsRecord, error) {
	var profiles []fmpProfile
	if err := p.get(ctx, "/profile/"+url.PathEscape(symbol), nil, &profiles); err != nil {
		return types.FundamentalsRecord{}, err
	}

	var ratios []fmpRatios
	if err := p.get(ctx, "/ratios/"+url.PathEscape(symbol), url.Values{"limit": {"1"}}, &ratios); err != nil {
		return types.FundamentalsRecord{}, err
	}

	var growth []fmpGrowth
	if err := p.get(ctx, "/financial-growth/"+url.PathEscape(symbol), url.Values{"limit": {"4"}}, &growth); err != nil {
		return types.FundamentalsRecord{}, err
	}

	rec := types.FundamentalsRecord{
		CompanyName: symbol,
		Sector:      "Unknown",
		Industry:    "Unknown",
		Beta:        1,
	}
	if len(profiles) > 0 {
		pr := profiles[0]
		if pr.CompanyName != "" {
			rec.CompanyName = pr.CompanyName
		}
		if pr.Sector != "" {
			rec.Sector = pr.Sector
		}
		if pr.Industry != "" {
			rec.Industry = pr.Industry
		}
		rec.MarketCap = pr.MktCap
		rec.PERatio = pr.PE
		rec.Dividend = pr.LastDiv
		rec.Beta = pr.Beta
	}
	if len(ratios) > 0 {
		rec.PriceToBook = ratios[0].PriceToBookRatio
		rec.PriceToSales = ratios[0].PriceToSalesRatio
		rec.DebtToEquity = ratios[0].DebtToEquity
	}
	rec.EPSGrowth = averageGrowth(growth, func(g fmpGrowth) float64 { return g.EPSGrowth })
	rec.RevenueGrowth = averageGrowth(growth, func(g fmpGrowth) float64 { return g.RevenueGrowth })
	rec.NetIncomeGrowth = averageGrowth(growth, func(g fmpGrowth) float64 { return g.NetIncomeGrowth })
	return rec, nil
}

func averageGrowth(rows []fmpGrowth, pick func(fmpGrowth) float64) float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		values = append(values, pick(row))
	}
	return utils.Average(values)
}

func (p *FMPProvider) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("apikey", p.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", p.baseURL, path, query.Encode())

	return utils.RetryWithBackoff(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fmp returned status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}, utils.DefaultRetryConfig())
}
