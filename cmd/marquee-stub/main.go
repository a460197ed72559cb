// Command marquee-stub serves an in-memory stand-in for the movies and
// languages backend.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/rfhold/marquee/internal/fakebackend"
)

func main() {
	addr := flag.String("addr", ":8085", "Listen `address`")
	empty := flag.Bool("empty", false, "Start without the demo records")
	level := flag.String("log-level", "info", "Log `level` (trace, debug, info, warn, error)")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "marquee-stub",
		Level:  hclog.LevelFromString(*level),
		Output: os.Stderr,
	})

	store := fakebackend.NewStore()
	if !*empty {
		store.SeedDemo()
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           fakebackend.NewServer(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("listening",
		"addr", *addr,
		"movies", fakebackend.MoviesPrefix,
		"languages", fakebackend.LanguagesPrefix,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
