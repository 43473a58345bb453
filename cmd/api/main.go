package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"metacatalog/internal/server"
)

func main() {
	baseLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer baseLogger.Sync()
	logger := baseLogger.Sugar()

	srv, err := server.New(logger)
	if err != nil {
		logger.Fatalw("failed to start server", "error", err)
	}
	defer srv.Pool.Close()

	go func() {
		logger.Infow("server listening", "addr", srv.HTTP.Addr)
		if err := srv.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTP.Shutdown(ctx); err != nil {
		logger.Errorw("server shutdown", "error", err)
	}
	logger.Info("server exiting")
}
