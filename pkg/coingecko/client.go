package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/market"
)

const errBodyLimit = 300

// Client fetches live prices from the CoinGecko simple-price endpoint.
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

// GetSimplePrices fetches current price, 24h change and last-updated time for
// each coin id against each display currency. The upstream shape is passed
// through as-is; ids and currencies unknown to the aggregator come back as
// absent or empty entries, not as an error.
func (c *Client) GetSimplePrices(ctx context.Context, coinIDs, vsCurrencies []string) (market.LiveQuote, error) {
	lower := make([]string, len(vsCurrencies))
	for i, v := range vsCurrencies {
		lower[i] = strings.ToLower(v)
	}

	q := url.Values{}
	q.Set("ids", strings.Join(coinIDs, ","))
	q.Set("vs_currencies", strings.Join(lower, ","))
	q.Set("include_24hr_change", "true")
	q.Set("include_last_updated_at", "true")
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &market.UpstreamError{Source: "coingecko", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return nil, &market.UpstreamError{Source: "coingecko", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var quote market.LiveQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return quote, nil
}
