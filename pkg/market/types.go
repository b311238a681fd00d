package market

// PricePoint is a single sample of a price series: the open time of an hourly
// candle (in milliseconds since epoch) and the closing price for that hour.
type PricePoint struct {
	TimestampMs int64   `json:"t"`
	Price       float64 `json:"p"`
}

// PriceSeries is an ascending-by-timestamp sequence of PricePoints, one per
// hour bucket. Gaps from unparseable upstream rows are dropped, not filled.
type PriceSeries []PricePoint

// FxQuote represents a spot rate: 1 unit of Base buys Rate units of the
// requested target currency, as of Date (upstream's quote date, "YYYY-MM-DD").
type FxQuote struct {
	Rate float64 `json:"rate"`
	Date string  `json:"date"`
	Base string  `json:"base"`
}

// LiveQuote is the passthrough shape of the live aggregator's simple-price
// response: coin id -> field -> value, where fields are the currency code
// itself plus "<code>_24h_change" and "last_updated_at".
type LiveQuote map[string]map[string]float64
