package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"breakout-trader/internal/analysis"
	"breakout-trader/internal/model"
)

// LoadSeriesCSV reads an aligned price/volume series from a CSV file.
// Each row is "price,volume"; a single header row is skipped if the first
// field does not parse as a number.
func LoadSeriesCSV(path string) (model.MarketData, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.MarketData{}, err
	}
	defer f.Close()
	return ReadSeriesCSV(f)
}

// ReadSeriesCSV parses a price/volume series from r.
func ReadSeriesCSV(r io.Reader) (model.MarketData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	var md model.MarketData
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.MarketData{}, err
		}
		line++

		price, perr := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		volume, verr := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if perr != nil || verr != nil {
			if line == 1 {
				// header row
				continue
			}
			return model.MarketData{}, fmt.Errorf("row %d: expected numeric price,volume, got %q,%q", line, record[0], record[1])
		}
		md.Prices = append(md.Prices, price)
		md.Volumes = append(md.Volumes, volume)
	}

	if md.Len() == 0 {
		return model.MarketData{}, fmt.Errorf("no data rows")
	}
	return md, nil
}

// WriteReportCSV writes a one-row evaluation report: the decision plus the
// indicator values that produced it.
func WriteReportCSV(path string, result model.TradeResult, snap *analysis.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"action",
		"message",
		"shares_traded",
		"cash_balance",
		"shares_held",
		"current_price",
		"last_volume",
		"recent_high",
		"avg_volume",
		"short_ma",
		"long_ma",
		"momentum",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := []string{
		string(result.Action),
		result.Message,
		fmtFloat(result.SharesTraded),
		fmtFloat(result.CashBalance),
		fmtFloat(result.SharesHeld),
	}
	if snap != nil {
		row = append(row,
			fmtFloat(snap.CurrentPrice),
			fmtFloat(snap.LastVolume),
			fmtFloat(snap.RecentHigh),
			fmtFloat(snap.AvgVolume),
			fmtFloat(snap.ShortMA),
			fmtFloat(snap.LongMA),
			fmtFloat(snap.Momentum),
		)
	} else {
		row = append(row, "", "", "", "", "", "", "")
	}
	if err := w.Write(row); err != nil {
		return err
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
