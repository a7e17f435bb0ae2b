package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/quantfox/stockpulse/Internal/analysis"
	"github.com/quantfox/stockpulse/Internal/providers"
	"github.com/quantfox/stockpulse/Internal/utils/config"
	"github.com/quantfox/stockpulse/cmd/api/internal"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../../.env")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	creds := providers.CredentialsFromEnv()
	priceProvider := providers.NewPriceProvider(creds)
	fundamentalsProvider := providers.NewFundamentalsProvider(creds)
	sentimentProvider := providers.NewSentimentProvider(creds)

	analyzer := analysis.New(priceProvider, fundamentalsProvider, sentimentProvider, cfg)

	apiServer := &internal.API{
		Analyzer: analyzer,
		MaxTopN:  len(cfg.Analysis.Symbols),
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(internal.CorsMiddleware)

	r.Get("/", apiServer.HandleRoot)
	r.Get("/health", apiServer.HandleHealth)
	r.Get("/api/analyze", apiServer.HandleAnalyze)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithFields(logrus.Fields{
		"addr":    addr,
		"symbols": len(cfg.Analysis.Symbols),
		"top_n":   cfg.Analysis.TopN,
	}).Info("Starting API server")

	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.Fatal(err)
	}
}
