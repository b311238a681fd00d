package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/storage/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addWatchlistReq struct {
	CoinID       string   `json:"coin_id"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	TargetPrice  *float64 `json:"target_price"`
	AlertEnabled bool     `json:"alert_enabled"`
}

func (h *Handler) ListWatchlist(c *gin.Context) {
	records, err := h.store.ListWatchlist(c.Request.Context())
	if err != nil {
		h.log.Error("watchlist query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": records})
}

func (h *Handler) AddWatchlist(c *gin.Context) {
	var req addWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON body"})
		return
	}

	req.CoinID = strings.TrimSpace(req.CoinID)
	req.Symbol = strings.TrimSpace(req.Symbol)
	req.Name = strings.TrimSpace(req.Name)
	if req.CoinID == "" || req.Symbol == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "coin_id, symbol, name required"})
		return
	}

	record := &postgres.WatchlistRecord{
		CoinID:       req.CoinID,
		Symbol:       req.Symbol,
		Name:         req.Name,
		TargetPrice:  req.TargetPrice,
		AlertEnabled: req.AlertEnabled,
	}

	if err := h.store.AddToWatchlist(c.Request.Context(), record); err != nil {
		if errors.Is(err, postgres.ErrDuplicateCoin) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
			return
		}
		h.log.Error("watchlist insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) DeleteWatchlist(c *gin.Context) {
	coinID := c.Param("coin_id")

	if err := h.store.RemoveFromWatchlist(c.Request.Context(), coinID); err != nil {
		h.log.Error("watchlist delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
