package binance

import (
	"encoding/json"
	"strconv"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/market"
)

// ParseKlineRows converts raw kline rows into a price series, keeping open
// time (index 0) and close price (index 4) and discarding the rest. Rows that
// are too short or fail to parse are skipped rather than failing the whole
// payload; relative order of the surviving rows is preserved.
func ParseKlineRows(rows [][]json.RawMessage) market.PriceSeries {
	var out market.PriceSeries

	for _, row := range rows {
		if len(row) < 5 {
			continue // skip incomplete row
		}

		ms, err := parseCellInt(row[0])
		if err != nil {
			continue
		}
		price, err := parseCellFloat(row[4])
		if err != nil {
			continue
		}

		out = append(out, market.PricePoint{TimestampMs: ms, Price: price})
	}
	return out
}

// parseCellInt reads a kline cell that may be a JSON number or a quoted
// string holding an integer.
func parseCellInt(raw json.RawMessage) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseCellFloat reads a kline cell that may be a JSON number or a quoted
// string holding a decimal.
func parseCellFloat(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
