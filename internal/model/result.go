package model

// TradeResult is the outcome of one strategy evaluation.
// CashBalance and SharesHeld always reflect the portfolio after applying the
// decision (or the original state, unchanged, for HOLD and STOP). Results are
// created fresh per call and never mutated afterward.
type TradeResult struct {
	Action       Action  `json:"action"`
	Message      string  `json:"message"`
	SharesTraded float64 `json:"shares_traded"`
	CashBalance  float64 `json:"cash_balance"`
	SharesHeld   float64 `json:"shares_held"`
}

// Stop builds a STOP result that carries the unchanged portfolio state.
func Stop(message string, p Portfolio) TradeResult {
	return TradeResult{
		Action:      ActionStop,
		Message:     message,
		CashBalance: p.CashBalance,
		SharesHeld:  p.SharesHeld,
	}
}
