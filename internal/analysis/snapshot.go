// Package analysis produces indicator reports for a market series. The
// snapshot is informational output for the CLI and API; trading decisions are
// made exclusively by the strategy package.
package analysis

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"breakout-trader/internal/indicator"
	"breakout-trader/internal/model"
	"breakout-trader/internal/strategy"
)

// rsiPeriod is the standard Wilder RSI window used for the context values.
const rsiPeriod = 14

// Snapshot is the set of indicator values computed from the tail of a series.
// The first five drive the breakout strategy's rules; the EMA and RSI values
// are supplementary context.
type Snapshot struct {
	CurrentPrice float64 `json:"current_price"`
	LastVolume   float64 `json:"last_volume"`

	RecentHigh float64 `json:"recent_high"`
	AvgVolume  float64 `json:"avg_volume"`
	ShortMA    float64 `json:"short_ma"`
	LongMA     float64 `json:"long_ma"`
	Momentum   float64 `json:"momentum"`

	ShortEMA float64 `json:"short_ema"`
	LongEMA  float64 `json:"long_ema"`
	RSI      float64 `json:"rsi,omitempty"`
}

// Compute builds a snapshot for the series under the given parameters.
// The series must satisfy the same minimum lengths the strategy requires.
func Compute(md model.MarketData, params strategy.Params) (*Snapshot, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !md.Aligned() {
		return nil, fmt.Errorf("prices and volumes must be the same length")
	}
	minPrices, minVolumes := params.MinPrices(), params.MinVolumes()
	if md.Len() < minPrices || len(md.Volumes) < minVolumes {
		return nil, fmt.Errorf("not enough data (need at least %d prices and %d volumes)", minPrices, minVolumes)
	}

	recentHigh, err := indicator.RecentHigh(md.Prices, params.BreakoutLookback)
	if err != nil {
		return nil, err
	}
	avgVolume, err := indicator.AvgVolume(md.Volumes, params.VolLookback)
	if err != nil {
		return nil, err
	}
	shortMA, err := indicator.SMA(md.Prices, params.ShortWindow)
	if err != nil {
		return nil, err
	}
	longMA, err := indicator.SMA(md.Prices, params.LongWindow)
	if err != nil {
		return nil, err
	}
	momentum, err := indicator.Momentum(md.Prices, params.MomentumDays)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		CurrentPrice: md.CurrentPrice(),
		LastVolume:   md.LastVolume(),
		RecentHigh:   recentHigh,
		AvgVolume:    avgVolume,
		ShortMA:      shortMA,
		LongMA:       longMA,
		Momentum:     momentum,
		ShortEMA:     last(talib.Ema(md.Prices, params.ShortWindow)),
		LongEMA:      last(talib.Ema(md.Prices, params.LongWindow)),
	}
	if md.Len() > rsiPeriod {
		snap.RSI = last(talib.Rsi(md.Prices, rsiPeriod))
	}
	return snap, nil
}

// BreakoutSatisfied reports whether the snapshot meets all three entry
// conditions (breakout, volume surge, positive momentum).
func (s *Snapshot) BreakoutSatisfied() bool {
	return s.CurrentPrice > s.RecentHigh &&
		s.LastVolume > 2*s.AvgVolume &&
		s.Momentum > 0
}

// Bearish reports whether the short MA sits under the long MA.
func (s *Snapshot) Bearish() bool { return s.ShortMA < s.LongMA }

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
