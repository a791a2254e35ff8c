package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/aretw0/hedge"
	httpAdapter "github.com/aretw0/hedge/internal/adapters/http"
	"github.com/aretw0/hedge/internal/adapters/memory"
	redisAdapter "github.com/aretw0/hedge/internal/adapters/redis"
	"github.com/aretw0/hedge/internal/logging"
	"github.com/aretw0/hedge/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the maze HTTP server",
	Long: `Starts the hedge engine in server mode, exposing a JSON API over
HTTP. Mazes are kept in memory unless a Redis URL is configured, in which
case they are shared across instances.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, cfg, err := loadOptions(cmd)
		if err != nil {
			fail(err)
		}

		addr := cfg.Serve.Address
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		redisURL := cfg.Serve.RedisURL
		if cmd.Flags().Changed("redis") {
			redisURL, _ = cmd.Flags().GetString("redis")
		}

		logger := logging.New(slog.LevelInfo)

		store, closeStore, err := buildStore(redisURL)
		if err != nil {
			fail(err)
		}
		defer closeStore()

		handler := httpAdapter.NewHandler(hedge.Service{Logger: logger}, store, prometheus.NewRegistry(), logger)

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Hedge Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Hedge Server stopped gracefully")
		}
	},
}

// buildStore picks the maze store: Redis when a URL is given, otherwise the
// in-process map.
func buildStore(redisURL string) (ports.MazeStore, func(), error) {
	if redisURL == "" {
		return memory.New(), func() {}, nil
	}
	redisOpts, err := backend.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	store := redisAdapter.NewFromClient(backend.NewClient(redisOpts), redisAdapter.WithTTL(24*time.Hour))
	return store, func() { _ = store.Close() }, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")
	serveCmd.Flags().String("redis", "", "Redis URL for shared maze storage")
}
