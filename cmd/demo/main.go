package main

import (
	"flag"
	"fmt"

	"breakout-trader/internal/config"
	"breakout-trader/internal/model"
	"breakout-trader/internal/strategy"
)

// Demo:
// - Build a strategy from defaults (or a YAML config)
// - Evaluate one hardcoded 21-point series
// - Print the resulting decision
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Example data (replace with real historical data).
	prices := []float64{
		100, 101, 99, 102, 103, 104, 103, 105, 106, 107,
		108, 109, 110, 111, 110, 112, 113, 114, 115, 116, 118,
	}
	volumes := []float64{
		1000, 1100, 900, 1200, 1300, 1250, 1400, 1500, 1600, 1550,
		1700, 1800, 1750, 1900, 1850, 2000, 2100, 2200, 2300, 2400, 6000,
	}

	portfolio := model.Portfolio{CashBalance: 1000, SharesHeld: 0}
	params := strategy.DefaultParams()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Strategy.ToParams()
		portfolio = cfg.Portfolio.ToModel()
	}

	strat, err := strategy.NewBreakout(params)
	if err != nil {
		panic(err)
	}

	result := strat.Evaluate(strategy.Context{
		Market:    model.MarketData{Prices: prices, Volumes: volumes},
		Portfolio: portfolio,
	})

	fmt.Printf("Action: %s\n", result.Action)
	fmt.Printf("Message: %s\n", result.Message)
	fmt.Printf("Shares traded: %.6f\n", result.SharesTraded)
	fmt.Printf("Cash balance: %.2f\n", result.CashBalance)
	fmt.Printf("Shares held: %.6f\n", result.SharesHeld)
}
