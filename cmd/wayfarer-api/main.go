// README: Entry point; loads config, wires services, bootstraps the inference client and serves HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/internal/config"
	httptransport "wayfarer/internal/http"
	"wayfarer/internal/infra"
	"wayfarer/internal/modules/content"
	"wayfarer/internal/modules/usage"
	"wayfarer/internal/ollama"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	client := ollama.NewClient(cfg.Ollama.Host, cfg.Ollama.Model)
	// Best effort: the server may come up after us, generation calls will
	// keep reporting the remediation until it does.
	client.VerifyConnection(ctx)

	usageSvc := usage.NewService(usage.NewStore(dbPool))
	contentSvc := content.NewService(client, usageSvc)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Content:         contentSvc,
		Client:          client,
		Usage:           usageSvc,
		Redis:           redisClient,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("wayfarer-api listening on %s (model %s via %s)", cfg.HTTP.Addr, client.Model(), client.BaseURL())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
