package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/market"
)

const (
	// Binance caps klines at 1000 rows per call. Requests for more history
	// are clamped, not paginated.
	maxKlineLimit = 1000
	minKlineLimit = 1

	// Upstream error bodies are truncated before being forwarded to callers.
	errBodyLimit = 300
)

// Client fetches candlestick history from the Binance REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetHistory fetches up to `hours` hourly closing prices for the coin's USDT
// pair, denominated in USDT (treated as USD by callers). hours is clamped to
// [1, 1000]. Malformed rows are dropped; a payload with zero usable rows
// yields a NoDataError.
func (c *Client) GetHistory(ctx context.Context, coinID string, hours int) (market.PriceSeries, error) {
	symbol := ToSymbol(coinID)

	limit := hours
	if limit < minKlineLimit {
		limit = minKlineLimit
	}
	if limit > maxKlineLimit {
		limit = maxKlineLimit
	}

	endpoint := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=1h&limit=%d", c.baseURL, symbol, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &market.UpstreamError{Source: "binance", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return nil, &market.UpstreamError{Source: "binance", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var rows [][]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &market.NoDataError{Symbol: symbol}
	}
	if len(rows) == 0 {
		return nil, &market.NoDataError{Symbol: symbol}
	}

	series := ParseKlineRows(rows)
	if len(series) == 0 {
		return nil, &market.NoDataError{Symbol: symbol}
	}
	return series, nil
}
