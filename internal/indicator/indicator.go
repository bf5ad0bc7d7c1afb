// Package indicator provides the small set of technical indicators consumed by
// the breakout strategy. All functions are pure and operate on trailing slices
// of a price or volume series (index 0 oldest, last index current).
package indicator

import "errors"

// ErrEmptyInput is returned when an indicator is asked to operate on a
// zero-length window. The strategy's minimum-length validation makes this
// unreachable through Evaluate, but direct callers keep the guarantee.
var ErrEmptyInput = errors.New("cannot average an empty series")

// Average returns the arithmetic mean of xs.
func Average(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// RecentHigh returns the maximum of the lookback observations immediately
// preceding the current one. The current observation is excluded, so prices
// must hold at least lookback+1 points.
func RecentHigh(prices []float64, lookback int) (float64, error) {
	if lookback <= 0 || len(prices) < lookback+1 {
		return 0, ErrEmptyInput
	}
	window := prices[len(prices)-1-lookback : len(prices)-1]
	high := window[0]
	for _, p := range window[1:] {
		if p > high {
			high = p
		}
	}
	return high, nil
}

// AvgVolume returns the mean of the trailing lookback volumes, current
// observation included.
func AvgVolume(volumes []float64, lookback int) (float64, error) {
	if lookback <= 0 || len(volumes) < lookback {
		return 0, ErrEmptyInput
	}
	return Average(volumes[len(volumes)-lookback:])
}

// SMA returns the mean of the trailing window prices, current observation
// included. It serves both the short and the long moving average.
func SMA(prices []float64, window int) (float64, error) {
	if window <= 0 || len(prices) < window {
		return 0, ErrEmptyInput
	}
	return Average(prices[len(prices)-window:])
}

// Momentum returns the signed price change over the trailing window:
// current price minus the price days observations ago. Positive means the
// price rose over the window.
func Momentum(prices []float64, days int) (float64, error) {
	if days <= 0 || len(prices) < days+1 {
		return 0, ErrEmptyInput
	}
	return prices[len(prices)-1] - prices[len(prices)-1-days], nil
}
