package data

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout-trader/internal/analysis"
	"breakout-trader/internal/model"
)

func TestReadSeriesCSV(t *testing.T) {
	md, err := ReadSeriesCSV(strings.NewReader("100,1000\n101.5,1100\n99,900\n"))
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 101.5, 99}, md.Prices)
	assert.Equal(t, []float64{1000, 1100, 900}, md.Volumes)
}

func TestReadSeriesCSVSkipsHeader(t *testing.T) {
	md, err := ReadSeriesCSV(strings.NewReader("price,volume\n100,1000\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, md.Len())
}

func TestReadSeriesCSVRejectsBadRow(t *testing.T) {
	_, err := ReadSeriesCSV(strings.NewReader("100,1000\nabc,def\n"))
	assert.ErrorContains(t, err, "row 2")
}

func TestReadSeriesCSVEmpty(t *testing.T) {
	_, err := ReadSeriesCSV(strings.NewReader(""))
	assert.ErrorContains(t, err, "no data rows")
}

func TestLoadSeriesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prices":[1,2,3],"volumes":[10,20,30]}`), 0o644))

	md, err := LoadSeriesJSON(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, md.Prices)
	assert.Equal(t, []float64{10, 20, 30}, md.Volumes)
}

func TestLoadSeriesJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prices":[],"volumes":[]}`), 0o644))

	_, err := LoadSeriesJSON(path)
	assert.Error(t, err)
}

func TestWriteReportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	result := model.TradeResult{
		Action:       model.ActionBuy,
		Message:      "ALL-IN BUY on breakout",
		SharesTraded: 8.474576,
		SharesHeld:   8.474576,
	}
	snap := &analysis.Snapshot{CurrentPrice: 118, RecentHigh: 116, AvgVolume: 1890, Momentum: 6}

	require.NoError(t, WriteReportCSV(path, result, snap))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "action", rows[0][0])
	assert.Equal(t, "BUY", rows[1][0])
	assert.Equal(t, "ALL-IN BUY on breakout", rows[1][1])
	assert.Equal(t, "118.000000", rows[1][5])
}

func TestStore(t *testing.T) {
	store := NewStore()
	md := model.MarketData{Prices: []float64{1, 2}, Volumes: []float64{10, 20}}

	require.NoError(t, store.Put("demo", md))
	got, ok := store.Get("demo")
	assert.True(t, ok)
	assert.Equal(t, md, got)

	require.NoError(t, store.Put("abc", md))
	assert.Equal(t, []string{"abc", "demo"}, store.Names())

	store.Delete("demo")
	_, ok = store.Get("demo")
	assert.False(t, ok)
}

func TestStoreRejectsBadDatasets(t *testing.T) {
	store := NewStore()

	assert.Error(t, store.Put("", model.MarketData{Prices: []float64{1}, Volumes: []float64{1}}))
	assert.Error(t, store.Put("empty", model.MarketData{}))
	assert.Error(t, store.Put("misaligned", model.MarketData{Prices: []float64{1, 2}, Volumes: []float64{1}}))
}
