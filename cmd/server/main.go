package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prospeo/internal/config"
	"prospeo/internal/database"
	"prospeo/internal/logging"
	"prospeo/internal/notify"
	"prospeo/internal/server"
	"prospeo/internal/storage"

	"go.uber.org/zap"
)

func main() {
	logging.Init()
	defer logging.Sync()

	cfg := config.Load()
	database.Init(cfg)

	store, err := storage.NewS3Service(&cfg.S3)
	if err != nil {
		logging.L().Fatal("failed to init object storage", zap.Error(err))
	}

	hub := notify.NewHub()
	r := server.NewRouter(cfg, store, hub)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: r,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.L().Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	logging.L().Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.L().Error("shutdown error", zap.Error(err))
	}
}
