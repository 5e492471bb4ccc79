// Command figserve runs the figure preview HTTP service.
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

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/illustrate"
	"github.com/gogpu/figure/internal/preview"
)

// Config is the service configuration. Flags override the environment.
type Config struct {
	Addr    string
	Gender  figure.Gender
	Animate bool
	Verbose bool
}

// loadConfig reads FIGSERVE_* environment defaults, then the flags.
func loadConfig(args []string) (Config, error) {
	cfg := Config{
		Addr:   envOr("FIGSERVE_ADDR", ":8080"),
		Gender: figure.ParseGender(os.Getenv("FIGSERVE_GENDER")),
	}
	fs := flag.NewFlagSet("figserve", flag.ContinueOnError)
	gender := fs.String("gender", cfg.Gender.String(), "default gender variant")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.BoolVar(&cfg.Animate, "animate", true, "start the animation loop at startup")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Gender = figure.ParseGender(*gender)
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	figure.SetLogger(logger)

	ctx := illustrate.New(illustrate.WithGender(cfg.Gender), illustrate.WithLogger(logger))
	if cfg.Animate {
		ctx.StartAnimations()
	}
	defer ctx.StopAnimations()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           preview.New(ctx, preview.WithLogger(logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info("listening", slog.String("addr", cfg.Addr), slog.String("gender", cfg.Gender.String()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("serve", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
