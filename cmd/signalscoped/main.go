// Command signalscoped serves the signal transformation engines over
// JSON/HTTP and WebSocket.
//
// Endpoints:
//
//	POST /api/v1/convert   one conversion request
//	GET  /api/v1/schemes   scheme discovery per family
//	GET  /api/v1/perf      timing summaries of the canonical scenario suite
//	GET  /api/v1/ws        WebSocket conversion stream
//	GET  /healthz          liveness probe
//	GET  /metrics          Prometheus metrics (when enabled)
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("FATAL: %v", err)
		}
		cfg = loaded
	}

	var metrics *Metrics
	if cfg.Metrics.Enabled {
		metrics = NewMetrics()
	}

	srv := NewServer(cfg, metrics)
	httpServer := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      srv.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("signalscoped listening on %s (metrics=%v, max_bits=%d)",
			cfg.Server.Listen, cfg.Metrics.Enabled, cfg.Limits.MaxBits)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("ERROR: shutdown: %v", err)
	}
}
