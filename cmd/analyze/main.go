package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/quantfox/stockpulse/Internal/analysis"
	"github.com/quantfox/stockpulse/Internal/providers"
	"github.com/quantfox/stockpulse/Internal/utils/config"
)

// Runs a single analysis from the command line and prints the ranked table.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../../.env")

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	creds := providers.CredentialsFromEnv()
	analyzer := analysis.New(
		providers.NewPriceProvider(creds),
		providers.NewFundamentalsProvider(creds),
		providers.NewSentimentProvider(creds),
		cfg,
	)

	result, err := analyzer.Run(context.Background())
	if err != nil {
		logrus.Fatalf("Analysis failed: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tPRICE\tCHANGE\tSCORE\tRECOMMENDATION")
	for _, stock := range result.TopStocks {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%+.2f%%\t%.4f\t%s\n",
			stock.Symbol, stock.Name, stock.Price, stock.Change, stock.Score, stock.Recommendation)
	}
	tw.Flush()
}
