package strategy

import "breakout-trader/internal/model"

// Context bundles everything a strategy may look at for one evaluation:
// the aligned market history and the portfolio state going in.
type Context struct {
	Market    model.MarketData
	Portfolio model.Portfolio
}

// Strategy evaluates a single trading decision from a context.
// Implementations must be pure: no state is carried across evaluations and
// the inputs are never mutated, so a Strategy value is safe for concurrent use.
type Strategy interface {
	Name() string
	Evaluate(ctx Context) model.TradeResult
}
