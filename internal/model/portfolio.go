package model

import "errors"

// Portfolio captures the account state the strategy trades against.
// The breakout strategy is all-in/all-out: under its own rules exactly one of
// CashBalance or SharesHeld is non-zero at a time, but the model does not
// enforce that — it is a behavioral invariant of the rules.
type Portfolio struct {
	// CashBalance is uninvested cash, must be >= 0.
	CashBalance float64
	// SharesHeld is the current position size, must be >= 0.
	SharesHeld float64
}

// Validate checks the structural constraints on the portfolio.
func (p Portfolio) Validate() error {
	if p.CashBalance < 0 || p.SharesHeld < 0 {
		return errors.New("cash_balance and shares_held must be non-negative")
	}
	return nil
}

// BuyAll converts the entire cash balance into shares at the given price and
// returns the number of shares bought. Fails if price is not positive, so the
// division is never attempted.
func (p *Portfolio) BuyAll(price float64) (float64, error) {
	if price <= 0 {
		return 0, errors.New("price must be > 0")
	}
	shares := p.CashBalance / price
	p.CashBalance = 0
	p.SharesHeld = shares
	return shares, nil
}

// SellAll liquidates the entire position at the given price and returns the
// number of shares sold.
func (p *Portfolio) SellAll(price float64) float64 {
	sold := p.SharesHeld
	p.CashBalance = p.SharesHeld * price
	p.SharesHeld = 0
	return sold
}
