package providers

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentAnalyzer classifies headline text with weighted keyword lists.
type SentimentAnalyzer struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		positiveWords: map[string]float64{
			// Strong positive (0.9-1.0)
			"surge": 1.0, "soar": 1.0, "skyrocket": 1.0, "breakthrough": 1.0,
			"bullish": 0.95, "rally": 0.95, "boom": 0.95,
			"outperform": 0.9, "breakout": 0.9,

			// Moderate positive (0.7-0.89)
			"beat": 0.85, "exceed": 0.85, "upgrade": 0.85, "optimistic": 0.85,
			"profit": 0.8, "growth": 0.8, "gain": 0.8, "jump": 0.8,
			"strong": 0.8, "boost": 0.8, "win": 0.8,
			"improve": 0.75, "rising": 0.75, "climb": 0.75, "momentum": 0.75,
			"recover": 0.7, "rebound": 0.7, "strength": 0.7,

			// Mild positive (0.5-0.69)
			"positive": 0.65, "rise": 0.65, "higher": 0.65, "increase": 0.65,
			"good": 0.65, "solid": 0.65, "confident": 0.65,
			"opportunity": 0.6, "promising": 0.6, "attractive": 0.6,
			"buying": 0.55, "healthy": 0.55, "steady": 0.5, "stable": 0.5,
		},
		negativeWords: map[string]float64{
			// Strong negative (0.9-1.0)
			"crash": 1.0, "plunge": 1.0, "collapse": 1.0, "disaster": 1.0,
			"crisis": 0.95, "bankruptcy": 0.95, "plummet": 0.95, "tumble": 0.95,
			"panic": 0.9, "worst": 0.9,

			// Moderate negative (0.7-0.89)
			"bearish": 0.85, "downgrade": 0.85, "warning": 0.85, "lawsuit": 0.85,
			"miss": 0.8, "loss": 0.8, "losses": 0.8, "slump": 0.8,
			"decline": 0.8, "underperform": 0.8, "fail": 0.8,
			"struggle": 0.75, "weak": 0.75, "drop": 0.75, "fall": 0.75,
			"concern": 0.7, "concerns": 0.7, "worry": 0.7, "disappoint": 0.7,
			"uncertain": 0.7, "risky": 0.7,

			// Mild negative (0.5-0.69)
			"problem": 0.65, "issue": 0.65, "risk": 0.65, "volatile": 0.65,
			"doubt": 0.65, "pressure": 0.6, "lower": 0.6, "negative": 0.6,
			"poor": 0.6, "slowdown": 0.6, "dip": 0.55, "slip": 0.55,
			"caution": 0.55, "correction": 0.5, "pullback": 0.5, "headwind": 0.5,
		},
	}
}

// Classify scores the text word by word and maps the averaged score to a
// sentiment label. Scores within ±0.1 of zero count as neutral.
func (sa *SentimentAnalyzer) Classify(text string) Sentiment {
	words := strings.Fields(strings.ToLower(text))

	var score float64
	var matches int
	for _, word := range words {
		word = strings.Trim(word, ".,!?\"'()[]{}:;")

		if val, exists := sa.positiveWords[word]; exists {
			score += val
			matches++
		} else if val, exists := sa.negativeWords[word]; exists {
			score -= val
			matches++
		}
	}

	if matches > 0 {
		score /= float64(matches)
	}
	if score > 0.1 {
		return SentimentPositive
	}
	if score < -0.1 {
		return SentimentNegative
	}
	return SentimentNeutral
}
