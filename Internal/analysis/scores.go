package analysis

// NeutralScore is returned whenever a scorer does not have enough data to
// produce a meaningful signal.
const NeutralScore = 0.5

// Factor names, used in error reporting.
const (
	FactorTechnical   = "technical"
	FactorFundamental = "fundamental"
	FactorSentiment   = "sentiment"
	FactorRisk        = "risk"
)
