package model

// Action is the decision emitted for a single strategy evaluation.
// Keep these values stable; they are intended for CSV and JSON output.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
	ActionStop Action = "STOP"
)

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionBuy, ActionSell, ActionHold, ActionStop:
		return true
	}
	return false
}
