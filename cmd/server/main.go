package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/config"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/internal/history"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/internal/server"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/logger"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/binance"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/coingecko"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/frankfurter"
	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/storage/postgres"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// watchlist store
	store, err := postgres.InitializeAndMigrateWatchlist(cfg.Postgres, cfg.Log.Environment, true)
	if err != nil {
		log.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer store.Close()

	// upstream clients
	prices := coingecko.NewClient(cfg.Upstream.CoinGecko.BaseURL, cfg.Upstream.CoinGecko.Timeout)
	rates := frankfurter.NewClient(cfg.Upstream.Frankfurter.BaseURL, cfg.Upstream.Frankfurter.Timeout)
	klines := binance.NewClient(cfg.Upstream.Binance.BaseURL, cfg.Upstream.Binance.Timeout)
	composer := history.NewComposer(klines, rates)

	handler := server.NewHandler(cfg.Defaults, prices, rates, composer, store, log)
	srv := server.New(cfg.Server.Host, cfg.Server.Port, server.NewRouter(handler), log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
