package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/stelofinance/connect/internal/assets"
	"github.com/stelofinance/connect/internal/routes"
	"github.com/stelofinance/connect/web/layouts"
	"github.com/stelofinance/connect/web/pages"
	"github.com/stelofinance/connect/web/theme"
)

var ErrInvalidEnv = errors.New("web: invalid ENV")

type Config struct {
	Port         string
	Env          string // "dev" or "prod"
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Theme        theme.Theme
}

// LoadConfig reads the config from getenv, applying defaults for anything
// unset.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:         getenv("PORT"),
		Env:          getenv("ENV"),
		ReadTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 30,
		Theme: theme.Theme{
			Bg: getenv("THEME_BG"),
		},
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "dev"
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidEnv, cfg.Env)
	}
	if err := theme.Validate(cfg.Theme); err != nil {
		return Config{}, fmt.Errorf("THEME_BG: %w", err)
	}

	return cfg, nil
}

// Run sets up all needed dependencies for the server, early returning with
// an error if one occurs.
func Run(ctx context.Context, getenv func(string) string, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger
	logger := slog.New(slog.NewJSONHandler(stdout, nil))

	cfg, err := LoadConfig(getenv)
	if err != nil {
		return err
	}

	srv, err := NewServer(logger, cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.LogAttrs(
			ctx,
			slog.LevelInfo,
			"server started",
			slog.String("PORT", httpServer.Addr),
			slog.String("ENV", cfg.Env),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(stderr, "error listening and serving: %s\n", err)
			serveErr <- fmt.Errorf("listen and serve: %w", err)
			cancel()
		}
	}()

	// Handle graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(stderr, "error shutting down http server: %s\n", err)
		}
	}()
	wg.Wait()

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}

func NewServer(logger *slog.Logger, cfg Config) (http.Handler, error) {
	static, err := assets.Load()
	if err != nil {
		return nil, err
	}
	favicon, err := static.HashedPath("/assets/favicon.svg")
	if err != nil {
		return nil, err
	}
	baseCSS, err := static.ReadFile("/assets/base.css")
	if err != nil {
		return nil, err
	}

	mux := chi.NewMux()

	mux.Use(middleware.Logger)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	mux.Use(middleware.Heartbeat("/heartbeat"))
	mux.Use(Compressor(2))

	routes.AddRoutes(mux, logger, routes.Options{
		Assets: static,
		Theme:  cfg.Theme,
		Dev:    cfg.Env == "dev",
		Home: pages.HomeProps{
			Theme: cfg.Theme,
			Layout: layouts.LayoutProps{
				Description: "Connect a Gumroad account.",
				FaviconHref: favicon,
				BaseCSS:     string(baseCSS),
				LiveReload:  cfg.Env == "dev",
			},
		},
	})

	return mux, nil
}

// Compress is an adapter middleware from Chi that compresses
// the response body of a given content types to a data format based
// on Accept-Encoding request header. Adapted to include Brotli encoding.
//
// NOTE: make sure to set the Content-Type header on your response
// otherwise this middleware will not compress the response body.
//
// Passing a compression level of 2-5 is sensible value.
func Compressor(level int) func(next http.Handler) http.Handler {
	compressor := middleware.NewCompressor(level)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterV2(w, level)
	})

	return compressor.Handler
}
