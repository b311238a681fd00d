package server

import "github.com/gin-gonic/gin"

// NewRouter wires all routes onto a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/crypto/price", h.GetPrices)
		api.GET("/crypto/history", h.GetHistory)
		api.GET("/fx/convert", h.Convert)

		api.GET("/watchlist", h.ListWatchlist)
		api.POST("/watchlist", h.AddWatchlist)
		api.DELETE("/watchlist/:coin_id", h.DeleteWatchlist)
	}

	return r
}
