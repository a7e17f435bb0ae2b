package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Analysis AnalysisConfig `yaml:"analysis"`
}

type AnalysisConfig struct {
	Symbols             []string `yaml:"symbols"`
	TopN                int      `yaml:"top_n"`
	FetchTimeoutSeconds int      `yaml:"fetch_timeout_seconds"`
	Weights             Weights  `yaml:"weights"`
}

// Weights blends the four factor scores into one ranking value. They must
// sum to 1 so the combined score stays inside [0,1].
type Weights struct {
	Technical   float64 `yaml:"technical"`
	Fundamental float64 `yaml:"fundamental"`
	Sentiment   float64 `yaml:"sentiment"`
	Risk        float64 `yaml:"risk"`
}

func (w Weights) Sum() float64 {
	return w.Technical + w.Fundamental + w.Sentiment + w.Risk
}

// DefaultConfig is used when no config.yaml can be found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Analysis = AnalysisConfig{
		Symbols:             []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"},
		TopN:                5,
		FetchTimeoutSeconds: 30,
		Weights:             Weights{Technical: 0.3, Fundamental: 0.3, Sentiment: 0.2, Risk: 0.2},
	}
	return cfg
}

// LoadConfig reads config.yaml, trying the working directory first and then
// a few conventional locations. A missing file falls back to DefaultConfig;
// an unreadable or invalid file is an error.
func LoadConfig() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	possiblePaths := []string{
		"config.yaml",
		filepath.Join(cwd, "config.yaml"),
		filepath.Join(cwd, "..", "..", "config.yaml"),
	}

	var data []byte
	found := false
	for _, path := range possiblePaths {
		data, err = os.ReadFile(path)
		if err == nil {
			found = true
			break
		}
	}

	cfg := DefaultConfig()
	if found {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Analysis.Symbols) == 0 {
		return fmt.Errorf("config: symbol universe is empty")
	}
	if c.Analysis.TopN < 1 {
		return fmt.Errorf("config: top_n must be at least 1, got %d", c.Analysis.TopN)
	}
	if c.Analysis.FetchTimeoutSeconds < 1 {
		return fmt.Errorf("config: fetch_timeout_seconds must be at least 1, got %d", c.Analysis.FetchTimeoutSeconds)
	}
	if sum := c.Analysis.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("config: factor weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}
