package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/config"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/market"
	storage "github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/storage/postgres/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPrices struct {
	quote  market.LiveQuote
	err    error
	gotIDs []string
	gotVs  []string
}

func (s *stubPrices) GetSimplePrices(ctx context.Context, ids, vs []string) (market.LiveQuote, error) {
	s.gotIDs = ids
	s.gotVs = vs
	return s.quote, s.err
}

type stubRates struct {
	quote market.FxQuote
	err   error
}

func (s *stubRates) GetRate(ctx context.Context, from, to string) (market.FxQuote, error) {
	return s.quote, s.err
}

type stubHistory struct {
	series  market.PriceSeries
	err     error
	gotCoin string
	gotVs   string
	gotDays int
}

func (s *stubHistory) HistoryIn(ctx context.Context, coinID, target string, days int) (market.PriceSeries, error) {
	s.gotCoin = coinID
	s.gotVs = target
	s.gotDays = days
	return s.series, s.err
}

func testDefaults() config.DefaultsConfig {
	return config.DefaultsConfig{
		BaseFiat:   "GBP",
		Coins:      []string{"bitcoin", "ethereum", "solana"},
		VsCurrency: "gbp",
	}
}

func setupRouter(prices PriceSource, rates RateSource, hist HistorySource, store WatchlistStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(testDefaults(), prices, rates, hist, store, zap.NewNop())
	return NewRouter(h)
}

func doGET(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetPrices(t *testing.T) {
	prices := &stubPrices{quote: market.LiveQuote{
		"bitcoin": {"gbp": 34000.0, "gbp_24h_change": -1.2, "last_updated_at": 1700000000},
	}}
	r := setupRouter(prices, &stubRates{}, &stubHistory{}, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/crypto/price?ids=bitcoin&vs=GBP")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"bitcoin"`)
	assert.Equal(t, []string{"bitcoin"}, prices.gotIDs)
	assert.Equal(t, []string{"gbp"}, prices.gotVs, "currencies should be lowercased")
}

func TestGetPricesDefaults(t *testing.T) {
	prices := &stubPrices{quote: market.LiveQuote{}}
	r := setupRouter(prices, &stubRates{}, &stubHistory{}, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/crypto/price")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bitcoin", "ethereum", "solana"}, prices.gotIDs)
	assert.Equal(t, []string{"gbp"}, prices.gotVs)
}

func TestGetPricesUpstreamFailure(t *testing.T) {
	prices := &stubPrices{err: &market.UpstreamError{
		Source: "coingecko", StatusCode: 429, Body: `{"status":{"error_code":429}}`,
	}}
	r := setupRouter(prices, &stubRates{}, &stubHistory{}, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/crypto/price")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
	// Error body snippets are forwarded on every endpoint
	assert.Contains(t, w.Body.String(), `"body"`)
}

func TestGetHistory(t *testing.T) {
	hist := &stubHistory{series: market.PriceSeries{
		{TimestampMs: 1000, Price: 100.5},
		{TimestampMs: 2000, Price: 200.5},
	}}
	r := setupRouter(&stubPrices{}, &stubRates{}, hist, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/crypto/history?coin_id=ethereum&vs=eur&days=3")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ethereum", hist.gotCoin)
	assert.Equal(t, "eur", hist.gotVs)
	assert.Equal(t, 3, hist.gotDays)

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Prices [][2]float64 `json:"prices"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, [][2]float64{{1000, 100.5}, {2000, 200.5}}, resp.Data.Prices)
}

func TestGetHistoryBadDays(t *testing.T) {
	r := setupRouter(&stubPrices{}, &stubRates{}, &stubHistory{}, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/crypto/history?days=abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistoryUpstreamFailure(t *testing.T) {
	hist := &stubHistory{err: &market.UpstreamError{
		Source: "binance", StatusCode: 400, Body: `{"code":-1121,"msg":"Invalid symbol."}`,
	}}
	r := setupRouter(&stubPrices{}, &stubRates{}, hist, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/crypto/history?coin_id=nonsense")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid symbol")
}

func TestConvert(t *testing.T) {
	rates := &stubRates{quote: market.FxQuote{Rate: 0.79, Date: "2024-01-01", Base: "USD"}}
	r := setupRouter(&stubPrices{}, rates, &stubHistory{}, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/fx/convert?amount=100&from=usd&to=gbp")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Success bool `json:"success"`
			Query   struct {
				From   string  `json:"from"`
				To     string  `json:"to"`
				Amount float64 `json:"amount"`
			} `json:"query"`
			Info struct {
				Rate float64 `json:"rate"`
				Date string  `json:"date"`
				Base string  `json:"base"`
			} `json:"info"`
			Result float64 `json:"result"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Success)
	assert.Equal(t, "USD", resp.Data.Query.From)
	assert.Equal(t, "GBP", resp.Data.Query.To)
	assert.Equal(t, 0.79, resp.Data.Info.Rate)
	assert.InDelta(t, 79.0, resp.Data.Result, 1e-9)
}

func TestConvertDefaultsToBaseFiat(t *testing.T) {
	rates := &stubRates{quote: market.FxQuote{Rate: 0.79, Date: "2024-01-01", Base: "USD"}}
	r := setupRouter(&stubPrices{}, rates, &stubHistory{}, storage.NewMemoryWatchlist())

	w := doGET(r, "/api/fx/convert")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"to":"GBP"`)
	assert.Contains(t, w.Body.String(), `"amount":1`)
}

func TestWatchlistLifecycle(t *testing.T) {
	store := storage.NewMemoryWatchlist()
	r := setupRouter(&stubPrices{}, &stubRates{}, &stubHistory{}, store)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	// Missing fields are rejected
	w := post(`{"coin_id":"bitcoin","symbol":"  ","name":"Bitcoin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Valid insert
	w = post(`{"coin_id":"bitcoin","symbol":"btc","name":"Bitcoin","target_price":50000}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// Duplicate coin_id conflicts
	w = post(`{"coin_id":"bitcoin","symbol":"btc","name":"Bitcoin"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// List includes the entry
	w = doGET(r, "/api/watchlist")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coin_id":"bitcoin"`)
	assert.Contains(t, w.Body.String(), `"target_price":50000`)

	// Delete, then delete again: both succeed
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/api/watchlist/bitcoin", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w = doGET(r, "/api/watchlist")
	assert.NotContains(t, w.Body.String(), "bitcoin")
}
