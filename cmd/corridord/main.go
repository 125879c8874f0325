// Command corridord serves the corridor compositor over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corridorlab/corridor"
	"github.com/corridorlab/corridor/internal/store"
	"github.com/corridorlab/corridor/internal/web"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "listen address")
		uploadDir   = flag.String("upload-dir", "./uploads", "directory for uploaded images")
		maxUploadMB = flag.Int64("max-upload-mb", 32, "upload size limit in MiB")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat   = flag.String("log-format", "text", "log format: text or json")
	)
	flag.Parse()

	log := newLogger(*logLevel, *logFormat)
	corridor.SetLogger(log)

	st, err := store.NewDir(*uploadDir)
	if err != nil {
		log.Error("init upload store", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr: *addr,
		Handler: web.New(web.Config{
			Store:     st,
			MaxUpload: *maxUploadMB << 20,
			Logger:    log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", *addr, "upload_dir", *uploadDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("serve", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", "err", err)
		}
	}
}

// newLogger builds a slog logger from the level and format flags.
func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
