package strategy

import (
	"errors"
	"fmt"

	"breakout-trader/internal/indicator"
	"breakout-trader/internal/model"
)

// Params defines how many trailing observations each indicator consumes.
// All values are positive integers.
type Params struct {
	// BreakoutLookback is the recent-high window (previous N days, current
	// excluded), so breakout detection needs BreakoutLookback+1 price points.
	BreakoutLookback int
	// VolLookback is the average-volume window, current volume included.
	VolLookback int
	// ShortWindow and LongWindow are the moving-average windows for the
	// crossover exit rule.
	ShortWindow int
	LongWindow  int
	// MomentumDays defines momentum = current price - price N days ago.
	MomentumDays int
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		BreakoutLookback: 20,
		VolLookback:      20,
		ShortWindow:      5,
		LongWindow:       15,
		MomentumDays:     5,
	}
}

// Validate checks that every window length is a positive integer.
func (p Params) Validate() error {
	if p.BreakoutLookback <= 0 {
		return errors.New("breakout_lookback must be > 0")
	}
	if p.VolLookback <= 0 {
		return errors.New("vol_lookback must be > 0")
	}
	if p.ShortWindow <= 0 {
		return errors.New("short_window must be > 0")
	}
	if p.LongWindow <= 0 {
		return errors.New("long_window must be > 0")
	}
	if p.MomentumDays <= 0 {
		return errors.New("momentum_days must be > 0")
	}
	return nil
}

// MinPrices returns the minimum price count the parameter set requires.
func (p Params) MinPrices() int {
	min := p.BreakoutLookback + 1
	for _, n := range []int{p.LongWindow, p.ShortWindow, p.MomentumDays + 1} {
		if n > min {
			min = n
		}
	}
	return min
}

// MinVolumes returns the minimum volume count the parameter set requires.
func (p Params) MinVolumes() int {
	if p.VolLookback > 1 {
		return p.VolLookback
	}
	return 1
}

// Breakout is an all-in/all-out breakout strategy:
//   - BUY the entire cash balance when the current price breaks above the
//     recent high on a volume surge with positive momentum and no open position
//   - SELL the entire position when the short moving average crosses under the
//     long one
//   - otherwise HOLD
//
// All business-rule failures (misaligned series, negative balances, not enough
// history, non-positive price at buy time) come back as STOP results, never as
// errors; callers branch on the result action.
type Breakout struct {
	Params Params
}

// NewBreakout validates params and returns a Breakout strategy.
func NewBreakout(params Params) (*Breakout, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("breakout params invalid: %w", err)
	}
	return &Breakout{Params: params}, nil
}

func (b *Breakout) Name() string { return "breakout" }

// Evaluate applies the ordered rule set to one context. Validation failures
// short-circuit before any indicator arithmetic runs.
func (b *Breakout) Evaluate(ctx Context) model.TradeResult {
	market := ctx.Market
	portfolio := ctx.Portfolio

	if !market.Aligned() {
		return model.Stop("Prices and volumes must be the same length", portfolio)
	}
	if portfolio.Validate() != nil {
		return model.Stop("cash_balance and shares_held must be non-negative", portfolio)
	}

	minPrices := b.Params.MinPrices()
	minVolumes := b.Params.MinVolumes()
	if market.Len() < minPrices || len(market.Volumes) < minVolumes {
		return model.Stop(
			fmt.Sprintf("Not enough data (need at least %d prices and %d volumes)", minPrices, minVolumes),
			portfolio,
		)
	}

	currentPrice := market.CurrentPrice()
	lastVolume := market.LastVolume()

	// The length checks above guarantee every window fits, so indicator
	// failures here are unreachable; they still surface as STOP.
	avgVolume, err := indicator.AvgVolume(market.Volumes, b.Params.VolLookback)
	if err != nil {
		return model.Stop(err.Error(), portfolio)
	}
	recentHigh, err := indicator.RecentHigh(market.Prices, b.Params.BreakoutLookback)
	if err != nil {
		return model.Stop(err.Error(), portfolio)
	}
	shortMA, err := indicator.SMA(market.Prices, b.Params.ShortWindow)
	if err != nil {
		return model.Stop(err.Error(), portfolio)
	}
	longMA, err := indicator.SMA(market.Prices, b.Params.LongWindow)
	if err != nil {
		return model.Stop(err.Error(), portfolio)
	}
	momentum, err := indicator.Momentum(market.Prices, b.Params.MomentumDays)
	if err != nil {
		return model.Stop(err.Error(), portfolio)
	}

	// BUY (all-in). SharesHeld is only ever set to 0 or a computed quotient,
	// so the exact-equality test is deliberate.
	if portfolio.SharesHeld == 0 &&
		currentPrice > recentHigh &&
		lastVolume > 2*avgVolume &&
		momentum > 0 {

		bought, err := portfolio.BuyAll(currentPrice)
		if err != nil {
			return model.Stop("Invalid current price (must be > 0) for buying", ctx.Portfolio)
		}
		return model.TradeResult{
			Action:       model.ActionBuy,
			Message:      "ALL-IN BUY on breakout",
			SharesTraded: bought,
			CashBalance:  portfolio.CashBalance,
			SharesHeld:   portfolio.SharesHeld,
		}
	}

	// SELL (all-out) on bearish crossover.
	if portfolio.SharesHeld > 0 && shortMA < longMA {
		sold := portfolio.SellAll(currentPrice)
		return model.TradeResult{
			Action:       model.ActionSell,
			Message:      "SELL due to trend reversal",
			SharesTraded: sold,
			CashBalance:  portfolio.CashBalance,
			SharesHeld:   portfolio.SharesHeld,
		}
	}

	return model.TradeResult{
		Action:      model.ActionHold,
		Message:     "Holding position",
		CashBalance: portfolio.CashBalance,
		SharesHeld:  portfolio.SharesHeld,
	}
}
