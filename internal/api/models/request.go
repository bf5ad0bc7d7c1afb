package models

// EvaluateRequest represents the request body for a single strategy
// evaluation. The series may be supplied inline or by naming a previously
// uploaded dataset; inline wins when both are present.
type EvaluateRequest struct {
	Dataset   string            `json:"dataset,omitempty"`
	Series    *SeriesPayload    `json:"series,omitempty"`
	Portfolio PortfolioPayload  `json:"portfolio"`
	Strategy  StrategyOverrides `json:"strategy,omitempty"`

	// IncludeIndicators attaches the indicator snapshot to the response.
	IncludeIndicators bool `json:"include_indicators,omitempty"`
}

// SeriesPayload is an aligned price/volume history, oldest first.
type SeriesPayload struct {
	Prices  []float64 `json:"prices"`
	Volumes []float64 `json:"volumes"`
}

// PortfolioPayload is the portfolio state going into the evaluation.
type PortfolioPayload struct {
	CashBalance float64 `json:"cash_balance"`
	SharesHeld  float64 `json:"shares_held"`
}

// StrategyOverrides carries optional window overrides; zero fields fall back
// to the defaults (20, 20, 5, 15, 5).
type StrategyOverrides struct {
	BreakoutLookback int `json:"breakout_lookback,omitempty"`
	VolLookback      int `json:"vol_lookback,omitempty"`
	ShortWindow      int `json:"short_window,omitempty"`
	LongWindow       int `json:"long_window,omitempty"`
	MomentumDays     int `json:"momentum_days,omitempty"`
}

// AnalyzeRequest asks for an indicator snapshot without making a decision.
type AnalyzeRequest struct {
	Dataset  string            `json:"dataset,omitempty"`
	Series   *SeriesPayload    `json:"series,omitempty"`
	Strategy StrategyOverrides `json:"strategy,omitempty"`
}
