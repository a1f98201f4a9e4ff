package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Suprit166/crypto-trade-api/internal/balance"
	"github.com/Suprit166/crypto-trade-api/internal/config"
	"github.com/Suprit166/crypto-trade-api/internal/database"
	"github.com/Suprit166/crypto-trade-api/internal/ingest"
	"github.com/Suprit166/crypto-trade-api/internal/logger"
	"github.com/Suprit166/crypto-trade-api/internal/server"
	"github.com/Suprit166/crypto-trade-api/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Connect to the database and migrate the schema
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connection successful and schema migrated.")

	// Wire the core components
	tradeStore := store.NewGormTradeStore(db)
	pipeline := ingest.NewPipeline(tradeStore, log)
	engine := balance.NewEngine(tradeStore)

	handler := server.NewHandler(log, pipeline, engine, tradeStore, cfg.Upload)
	router := server.NewRouter(log, handler, cfg.Upload)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("Starting web server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Web server failed", zap.Error(err))
		}
	}()

	// Wait for a shutdown signal, then drain in-flight requests
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	<-sigchan
	log.Info("Shutdown signal received, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server has been shut down.")
}
