package frankfurter

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

// Client fetches spot exchange rates from the Frankfurter API.
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

// latestResponse mirrors the /latest endpoint payload.
type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// GetRate fetches the latest spot rate from one currency to another. Both
// codes are uppercased before the call. A response without a rate for the
// target code yields an UnsupportedPairError.
func (c *Client) GetRate(ctx context.Context, from, to string) (market.FxQuote, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	q := url.Values{}
	q.Set("base", from)
	q.Set("symbols", to)
	endpoint := fmt.Sprintf("%s/latest?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return market.FxQuote{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return market.FxQuote{}, &market.UpstreamError{Source: "frankfurter", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return market.FxQuote{}, &market.UpstreamError{Source: "frankfurter", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return market.FxQuote{}, fmt.Errorf("decode response: %w", err)
	}

	rate, ok := parsed.Rates[to]
	if !ok {
		return market.FxQuote{}, &market.UnsupportedPairError{From: from, To: to}
	}

	return market.FxQuote{Rate: rate, Date: parsed.Date, Base: parsed.Base}, nil
}
