package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"breakout-trader/internal/analysis"
	"breakout-trader/internal/config"
	"breakout-trader/internal/data"
	"breakout-trader/internal/model"
	"breakout-trader/internal/strategy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "analyze":
		cmdAnalyze(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --data series.csv --cash 1000 [--config config.yaml] [--out report.csv]")
	fmt.Println("  cli analyze --data series.csv [--config config.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - data files are CSV (price,volume per row) or JSON ({\"prices\":[...],\"volumes\":[...]})")
	fmt.Println("  - evaluate prints the decision (BUY/SELL/HOLD/STOP) for the last observation")
	fmt.Println("  - analyze prints the indicator values without making a decision")
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to price/volume series (CSV or JSON)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	cash := fs.Float64("cash", 0, "Cash balance (overrides config when non-zero)")
	shares := fs.Float64("shares", 0, "Shares held (overrides config when non-zero)")
	outPath := fs.String("out", "", "Optional path to write a CSV evaluation report")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	market := loadSeries(*dataPath)
	cfg := loadConfig(*cfgPath)

	portfolio := cfg.Portfolio.ToModel()
	if *cash != 0 {
		portfolio.CashBalance = *cash
	}
	if *shares != 0 {
		portfolio.SharesHeld = *shares
	}

	params := cfg.Strategy.ToParams()
	strat, err := strategy.NewBreakout(params)
	if err != nil {
		panic(err)
	}

	result := strat.Evaluate(strategy.Context{Market: market, Portfolio: portfolio})

	fmt.Printf("Action: %s\n", result.Action)
	fmt.Printf("Message: %s\n", result.Message)
	fmt.Printf("Shares traded: %.6f\n", result.SharesTraded)
	fmt.Printf("Cash balance: %.2f\n", result.CashBalance)
	fmt.Printf("Shares held: %.6f\n", result.SharesHeld)

	if *outPath != "" {
		// The snapshot is informational; a STOP result may have none.
		snap, _ := analysis.Compute(market, params)

		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := data.WriteReportCSV(*outPath, result, snap); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote report: %s\n", *outPath)
	}
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to price/volume series (CSV or JSON)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	market := loadSeries(*dataPath)
	cfg := loadConfig(*cfgPath)

	snap, err := analysis.Compute(market, cfg.Strategy.ToParams())
	if err != nil {
		fmt.Printf("analyze: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Observations: %d\n", market.Len())
	fmt.Printf("Current price: %.6f\n", snap.CurrentPrice)
	fmt.Printf("Last volume: %.6f\n", snap.LastVolume)
	fmt.Printf("Recent high (prev %d): %.6f\n", cfg.Strategy.BreakoutLookback, snap.RecentHigh)
	fmt.Printf("Avg volume (%d): %.6f\n", cfg.Strategy.VolLookback, snap.AvgVolume)
	fmt.Printf("Short MA (%d): %.6f\n", cfg.Strategy.ShortWindow, snap.ShortMA)
	fmt.Printf("Long MA (%d): %.6f\n", cfg.Strategy.LongWindow, snap.LongMA)
	fmt.Printf("Momentum (%d): %.6f\n", cfg.Strategy.MomentumDays, snap.Momentum)
	fmt.Printf("Short EMA: %.6f  Long EMA: %.6f  RSI: %.2f\n", snap.ShortEMA, snap.LongEMA, snap.RSI)
	fmt.Printf("Breakout satisfied: %v  Bearish crossover: %v\n", snap.BreakoutSatisfied(), snap.Bearish())
}

func loadSeries(path string) model.MarketData {
	var (
		market model.MarketData
		err    error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		market, err = data.LoadSeriesJSON(path)
	} else {
		market, err = data.LoadSeriesCSV(path)
	}
	if err != nil {
		panic(err)
	}
	return market
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
