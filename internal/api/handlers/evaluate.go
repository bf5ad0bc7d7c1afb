package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"breakout-trader/internal/analysis"
	"breakout-trader/internal/api/models"
	"breakout-trader/internal/config"
	"breakout-trader/internal/data"
	"breakout-trader/internal/model"
	"breakout-trader/internal/strategy"
)

// EvaluateHandler handles evaluation requests.
type EvaluateHandler struct {
	store *data.Store
}

// NewEvaluateHandler creates an evaluation handler backed by the dataset store.
func NewEvaluateHandler(store *data.Store) *EvaluateHandler {
	return &EvaluateHandler{store: store}
}

// Evaluate handles POST /api/v1/evaluate.
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	market, errDetail := resolveSeries(h.store, req.Dataset, req.Series)
	if errDetail != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: *errDetail})
		return
	}

	params := paramsFrom(req.Strategy)
	strat, err := strategy.NewBreakout(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_STRATEGY", Message: err.Error()},
		})
		return
	}

	result := strat.Evaluate(strategy.Context{
		Market: market,
		Portfolio: model.Portfolio{
			CashBalance: req.Portfolio.CashBalance,
			SharesHeld:  req.Portfolio.SharesHeld,
		},
	})

	logrus.WithFields(logrus.Fields{
		"action": result.Action,
		"points": market.Len(),
	}).Info("evaluation complete")

	resp := models.EvaluateResponse{Result: result}
	if req.IncludeIndicators {
		// Snapshot failures mean the series was too short for indicators;
		// the STOP result already says so, so the snapshot is just omitted.
		if snap, err := analysis.Compute(market, params); err == nil {
			resp.Indicators = snap
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Analyze handles POST /api/v1/analyze.
func (h *EvaluateHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	market, errDetail := resolveSeries(h.store, req.Dataset, req.Series)
	if errDetail != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: *errDetail})
		return
	}

	snap, err := analysis.Compute(market, paramsFrom(req.Strategy))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "ANALYSIS_ERROR", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{Indicators: snap})
}

// resolveSeries picks the inline series when present, otherwise looks the
// dataset up in the store.
func resolveSeries(store *data.Store, dataset string, series *models.SeriesPayload) (model.MarketData, *models.ErrorDetail) {
	if series != nil {
		if len(series.Prices) == 0 {
			return model.MarketData{}, &models.ErrorDetail{
				Code:    "EMPTY_SERIES",
				Message: "series.prices must not be empty",
			}
		}
		return model.MarketData{Prices: series.Prices, Volumes: series.Volumes}, nil
	}
	if dataset == "" {
		return model.MarketData{}, &models.ErrorDetail{
			Code:    "MISSING_SERIES",
			Message: "either series or dataset is required",
		}
	}
	md, ok := store.Get(dataset)
	if !ok {
		return model.MarketData{}, &models.ErrorDetail{
			Code:    "UNKNOWN_DATASET",
			Message: "no dataset named " + dataset,
		}
	}
	return md, nil
}

// paramsFrom overlays request-level overrides on the default windows.
func paramsFrom(o models.StrategyOverrides) strategy.Params {
	merged := config.MergeStrategy(config.Default().Strategy, config.StrategyConfig{
		BreakoutLookback: o.BreakoutLookback,
		VolLookback:      o.VolLookback,
		ShortWindow:      o.ShortWindow,
		LongWindow:       o.LongWindow,
		MomentumDays:     o.MomentumDays,
	})
	return merged.ToParams()
}
