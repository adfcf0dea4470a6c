package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/stelofinance/connect/internal/assets"
	"github.com/stelofinance/connect/internal/handlers"
	"github.com/stelofinance/connect/web/pages"
	"github.com/stelofinance/connect/web/theme"
)

type Options struct {
	Assets *assets.Assets
	Home   pages.HomeProps
	Theme  theme.Theme
	Dev    bool // Mounts /hotreload
}

func AddRoutes(mux *chi.Mux, logger *slog.Logger, opts Options) {
	opts.Assets.Handler(mux)

	mux.Get("/", handlers.Home(logger, opts.Home))
	mux.Get("/connect", handlers.Connect(logger, opts.Theme))

	if opts.Dev {
		mux.Get("/hotreload", handlers.HotReload())
	}
}
