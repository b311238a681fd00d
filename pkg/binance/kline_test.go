package binance

import (
	"encoding/json"
	"testing"
)

// Binance returns open time as a number and prices as quoted strings, but
// the parser accepts either form per cell.
func TestParseKlineRowsMixedCellTypes(t *testing.T) {
	raw := `[
		[1000, "1", "1", "1", "100.5", "0", 1999],
		["2000", 1, 1, 1, 200.5, 0, 2999]
	]`
	var rows [][]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	series := ParseKlineRows(rows)
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[0].TimestampMs != 1000 || series[0].Price != 100.5 {
		t.Errorf("unexpected first point: %+v", series[0])
	}
	if series[1].TimestampMs != 2000 || series[1].Price != 200.5 {
		t.Errorf("unexpected second point: %+v", series[1])
	}
}

func TestParseKlineRowsShortRow(t *testing.T) {
	raw := `[[1000, "1", "1"], [2000, "1", "1", "1", "200", "0", 2999]]`
	var rows [][]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	series := ParseKlineRows(rows)
	if len(series) != 1 {
		t.Fatalf("expected short row to be skipped, got %d points", len(series))
	}
	if series[0].TimestampMs != 2000 {
		t.Errorf("unexpected surviving point: %+v", series[0])
	}
}
