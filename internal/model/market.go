package model

// MarketData holds aligned price and volume history for a single instrument.
// Index 0 is the oldest observation; the last index is the current one.
// Inputs are treated as immutable by the evaluator.
type MarketData struct {
	Prices  []float64 `json:"prices"`
	Volumes []float64 `json:"volumes"`
}

// Len returns the number of price observations.
func (m MarketData) Len() int { return len(m.Prices) }

// Aligned reports whether the price and volume series have equal length.
func (m MarketData) Aligned() bool { return len(m.Prices) == len(m.Volumes) }

// CurrentPrice returns the most recent price, or 0 for an empty series.
func (m MarketData) CurrentPrice() float64 {
	if len(m.Prices) == 0 {
		return 0
	}
	return m.Prices[len(m.Prices)-1]
}

// LastVolume returns the most recent volume, or 0 for an empty series.
func (m MarketData) LastVolume() float64 {
	if len(m.Volumes) == 0 {
		return 0
	}
	return m.Volumes[len(m.Volumes)-1]
}
