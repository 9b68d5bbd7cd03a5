package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/qusai-Kagalwala/repo-vista/cmd/routes"
	"github.com/qusai-Kagalwala/repo-vista/internal/cards"
	"github.com/qusai-Kagalwala/repo-vista/internal/config"
	"github.com/qusai-Kagalwala/repo-vista/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("main: config load failed", logger.WithError(err))
		os.Exit(1)
	}

	if err := logger.Init(cfg.AppEnv); err != nil {
		logger.Error("main: logger init failed", logger.WithError(err))
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := sql.Open("mysql", cfg.DatabaseURL)
	if err != nil {
		logger.Error("main: db open failed", logger.WithError(err))
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("main: db unreachable", logger.WithError(err))
		os.Exit(1)
	}

	if err := cards.EnsureTables(db); err != nil {
		logger.Error("main: ensure tables failed", logger.WithError(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routes.SetUpRoutes(db, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("main: listening", logger.Fields{"port": cfg.Port, "env": cfg.AppEnv})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("main: server failed", logger.WithError(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("main: shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: shutdown failed", logger.WithError(err))
	}
}
