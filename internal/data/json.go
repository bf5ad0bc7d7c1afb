package data

import (
	"encoding/json"
	"fmt"
	"os"

	"breakout-trader/internal/model"
)

// LoadSeriesJSON reads a series from a JSON file with the shape
// {"prices": [...], "volumes": [...]}.
func LoadSeriesJSON(path string) (model.MarketData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.MarketData{}, err
	}
	var md model.MarketData
	if err := json.Unmarshal(raw, &md); err != nil {
		return model.MarketData{}, err
	}
	if md.Len() == 0 {
		return model.MarketData{}, fmt.Errorf("no price data in %s", path)
	}
	return md, nil
}
