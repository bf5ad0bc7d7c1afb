package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breakout-trader/internal/api/models"
	"breakout-trader/internal/strategy"
)

// StrategyHandler handles strategy metadata requests.
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	defaults := strategy.DefaultParams()
	strategies := []models.StrategyInfo{
		{
			Name:        "breakout",
			Description: "All-in/all-out breakout strategy. Buys the full cash balance on a confirmed breakout, sells the full position on a bearish moving-average crossover, otherwise holds.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "breakout_lookback",
					Type:        "int",
					Description: "Recent-high window in days; the current observation is excluded",
					Default:     defaults.BreakoutLookback,
				},
				{
					Name:        "vol_lookback",
					Type:        "int",
					Description: "Average-volume window in days, current volume included",
					Default:     defaults.VolLookback,
				},
				{
					Name:        "short_window",
					Type:        "int",
					Description: "Short moving-average window in days",
					Default:     defaults.ShortWindow,
				},
				{
					Name:        "long_window",
					Type:        "int",
					Description: "Long moving-average window in days",
					Default:     defaults.LongWindow,
				},
				{
					Name:        "momentum_days",
					Type:        "int",
					Description: "Momentum window: current price minus the price this many days ago",
					Default:     defaults.MomentumDays,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
