package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.Analysis.Weights.Sum(), 1e-9)
}

func TestValidate_RejectsBadWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.Weights = Weights{Technical: 0.5, Fundamental: 0.5, Sentiment: 0.5, Risk: 0.5}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestValidate_RejectsEmptyUniverse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.Symbols = nil

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveTopN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.TopN = 0

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.FetchTimeoutSeconds = 0

	assert.Error(t, cfg.Validate())
}
