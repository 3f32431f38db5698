package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/humanbelnik/cinevault/internal/infra/s3mock"
)

type Config struct {
	Addr            string        `env:"MOCK_S3_ADDR" envDefault:":9090"`
	ShutdownTimeout time.Duration `env:"MOCK_S3_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("[mocks3] parse env: %w", err)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(env.Options{})
	if err != nil {
		log.Fatal(err)
	}

	addr := cfg.Addr
	server := &http.Server{
		Addr:    addr,
		Handler: s3mock.NewServer().Handler(),
	}

	go func() {
		log.Printf("Mock S3 server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Mock S3 server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Mock S3 server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(ctx)
}
