package models

import (
	"breakout-trader/internal/analysis"
	"breakout-trader/internal/model"
)

// EvaluateResponse is the result of one evaluation, optionally with the
// indicator values that produced it.
type EvaluateResponse struct {
	Result     model.TradeResult  `json:"result"`
	Indicators *analysis.Snapshot `json:"indicators,omitempty"`
}

// AnalyzeResponse wraps an indicator snapshot.
type AnalyzeResponse struct {
	Indicators *analysis.Snapshot `json:"indicators"`
}

// StrategyInfo describes an available strategy.
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// DatasetInfo describes a registered dataset.
type DatasetInfo struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
