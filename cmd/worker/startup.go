package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lumina-storefront/pkg/container"

	"github.com/rs/zerolog/log"
)

const healthAddr = ":9999"

// startServices checks the worker's dependencies and exposes the probe endpoints
func startServices(c *container.Container) error {
	checks := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"Redis", func(ctx context.Context) error {
			// asynq has no in-memory fallback
			if c.Redis == nil {
				return errors.New("redis is not connected")
			}
			return c.Redis.Ping(ctx)
		}},
		{"PostgreSQL", c.DB.HealthCheck},
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := check.fn(ctx)
		cancel()

		if err != nil {
			log.Error().Err(err).Str("check", check.name).Msg("[Startup] Health check failed")
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("[Startup] OK")
	}

	go startHealthCheckServer()

	return nil
}

func startHealthCheckServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, `{"status":"UP","service":"lumina-worker"}`)
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, `{"status":"READY"}`)
	})

	log.Info().Str("addr", healthAddr).Msg("[Health] Starting health check server")
	if err := http.ListenAndServe(healthAddr, mux); err != nil {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}

func writeStatus(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
