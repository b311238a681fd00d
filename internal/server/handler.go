package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/config"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/market"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/storage/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PriceSource provides live prices for a set of coins.
type PriceSource interface {
	GetSimplePrices(ctx context.Context, coinIDs, vsCurrencies []string) (market.LiveQuote, error)
}

// RateSource provides spot FX rates.
type RateSource interface {
	GetRate(ctx context.Context, from, to string) (market.FxQuote, error)
}

// HistorySource provides currency-converted price history.
type HistorySource interface {
	HistoryIn(ctx context.Context, coinID, target string, days int) (market.PriceSeries, error)
}

// WatchlistStore persists the user's tracked coins.
type WatchlistStore interface {
	ListWatchlist(ctx context.Context) ([]postgres.WatchlistRecord, error)
	AddToWatchlist(ctx context.Context, record *postgres.WatchlistRecord) error
	RemoveFromWatchlist(ctx context.Context, coinID string) error
}

type Handler struct {
	defaults config.DefaultsConfig
	prices   PriceSource
	rates    RateSource
	history  HistorySource
	store    WatchlistStore
	log      *zap.Logger
}

func NewHandler(defaults config.DefaultsConfig, prices PriceSource, rates RateSource,
	history HistorySource, store WatchlistStore, log *zap.Logger) *Handler {
	return &Handler{
		defaults: defaults,
		prices:   prices,
		rates:    rates,
		history:  history,
		store:    store,
		log:      log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "ts": time.Now().Unix()})
}

func (h *Handler) GetPrices(c *gin.Context) {
	ids := splitCSV(c.DefaultQuery("ids", strings.Join(h.defaults.Coins, ",")))
	vs := splitCSV(strings.ToLower(c.DefaultQuery("vs", h.defaults.VsCurrency)))

	data, err := h.prices.GetSimplePrices(c.Request.Context(), ids, vs)
	if err != nil {
		h.failUpstream(c, "live price fetch failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func (h *Handler) GetHistory(c *gin.Context) {
	coin := c.DefaultQuery("coin_id", "bitcoin")
	vs := c.DefaultQuery("vs", h.defaults.VsCurrency)

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "days must be an integer"})
		return
	}

	series, err := h.history.HistoryIn(c.Request.Context(), coin, vs, days)
	if err != nil {
		h.failUpstream(c, "history fetch failed", err)
		return
	}

	// [[ms, price], ...] pairs, the shape the chart consumes directly
	prices := make([][2]float64, len(series))
	for i, p := range series {
		prices[i] = [2]float64{float64(p.TimestampMs), p.Price}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"prices": prices}})
}

func (h *Handler) Convert(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "1"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "amount must be a number"})
		return
	}
	from := strings.ToUpper(c.DefaultQuery("from", "USD"))
	to := strings.ToUpper(c.DefaultQuery("to", h.defaults.BaseFiat))

	quote, err := h.rates.GetRate(c.Request.Context(), from, to)
	if err != nil {
		h.failUpstream(c, "fx rate fetch failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{
		"success": true,
		"query":   gin.H{"from": from, "to": to, "amount": amount},
		"info":    gin.H{"rate": quote.Rate, "date": quote.Date, "base": quote.Base},
		"result":  amount * quote.Rate,
	}})
}

// failUpstream maps any core failure to a 502 with the {ok:false} envelope.
// When the upstream supplied an HTTP error body, its snippet is forwarded on
// every endpoint, not just history.
func (h *Handler) failUpstream(c *gin.Context, msg string, err error) {
	h.log.Warn(msg, zap.Error(err))

	resp := gin.H{"ok": false, "error": err.Error()}
	var ue *market.UpstreamError
	if errors.As(err, &ue) && ue.Body != "" {
		resp["body"] = ue.Body
	}
	c.JSON(http.StatusBadGateway, resp)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
