package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "ninety-nine/internal/api/http"
	"ninety-nine/internal/api/ws"
	"ninety-nine/internal/config"
	"ninety-nine/internal/room"
	"ninety-nine/internal/store"

	"github.com/sirupsen/logrus"
)

// @title Ninety-Nine Game Server
// @version 1.0
// @description Rooms and live play for the three-player trick-taking game Ninety-Nine.
// @BasePath /
func main() {
	cfg := config.Load()
	if err := config.SetupLogging(cfg); err != nil {
		logrus.Warnf("logging: %v", err)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil)
	hub := ws.NewHub(rm, cfg.AllowedOrigins)
	rm.SetHub(hub)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(rm, hub, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown: %v", err)
	}
}
