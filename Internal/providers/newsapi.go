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
	newsAPIBaseURL   = "https://newsapi.org/v2"
	newsAPIRateLimit = 5 // requests per second
)

// NewsAPIProvider fetches recent articles per symbol from NewsAPI and
// classifies each headline with the keyword analyzer. Analyst-style
// buy/hold/sell signals are derived from the classified counts.
type NewsAPIProvider struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	limiter  *rate.Limiter
	analyzer *SentimentAnalyzer
	log      *logrus.Entry
}

func NewNewsAPIProvider(apiKey string) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey:   apiKey,
		baseURL:  newsAPIBaseURL,
		client:   &http.Client{Timeout: 15 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(newsAPIRateLimit), newsAPIRateLimit),
		analyzer: NewSentimentAnalyzer(),
		log:      logrus.WithField("provider", "newsapi"),
	}
}

type newsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type newsResponse struct {
	Status   string        `json:"status"`
	Articles []newsArticle `json:"articles"`
}

func (p *NewsAPIProvider) FetchSentiment(ctx context.Context, symbols []string) (map[string]types.SentimentRecord, error) {
	result := make(map[string]types.SentimentRecord, len(symbols))
	for _, symbol := range symbols {
		rec, err := p.fetchSymbolNews(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("news sentiment for %s: %w", symbol, err)
		}
		result[symbol] = rec
	}
	return result, nil
}

func (p *NewsAPIProvider) fetchSymbolNews(ctx context.Context, symbol string) (types.SentimentRecord, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return types.SentimentRecord{}, err
	}

	query := url.Values{
		"q":        {symbol + " stock"},
		"sortBy":   {"publishedAt"},
		"language": {"en"},
		"apiKey":   {p.apiKey},
	}
	reqURL := fmt.Sprintf("%s/everything?%s", p.baseURL, query.Encode())

	var body newsResponse
	err := utils.RetryWithBackoff(func() error {
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
			return fmt.Errorf("newsapi returned status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&body)
	}, utils.DefaultRetryConfig())
	if err != nil {
		return types.SentimentRecord{}, err
	}

	positive, negative, neutral := 0, 0, 0
	for _, article := range body.Articles {
		switch p.analyzer.Classify(article.Title + " " + article.Description) {
		case SentimentPositive:
			positive++
		case SentimentNegative:
			negative++
		default:
			neutral++
		}
	}

	articles := len(body.Articles)
	return types.SentimentRecord{
		ArticleCount: articles,
		Positive:     positive,
		Negative:     negative,
		Neutral:      neutral,
		BuySignal:    5 + 10*positive/(positive+negative+1),
		HoldSignal:   3 + 5*neutral/(articles+1),
		SellSignal:   5 * negative / (positive + negative + 1),
	}, nil
}
