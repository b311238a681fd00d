package main

import (
	"context"
	"errors"
	"time"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/config"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/logger"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/storage/postgres"

	"go.uber.org/zap"
)

// Seeds the watchlist with a starter set of coins. Safe to re-run: existing
// rows are left untouched.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	store, err := postgres.InitializeAndMigrateWatchlist(cfg.Postgres, cfg.Log.Environment, true)
	if err != nil {
		log.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer store.Close()

	seeds := []postgres.WatchlistRecord{
		{CoinID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{CoinID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		{CoinID: "solana", Symbol: "sol", Name: "Solana"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := range seeds {
		err := store.AddToWatchlist(ctx, &seeds[i])
		switch {
		case errors.Is(err, postgres.ErrDuplicateCoin):
			log.Info("already seeded", zap.String("coin_id", seeds[i].CoinID))
		case err != nil:
			log.Fatal("seed failed", zap.String("coin_id", seeds[i].CoinID), zap.Error(err))
		default:
			log.Info("seeded", zap.String("coin_id", seeds[i].CoinID))
		}
	}
}
