package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	datastar "github.com/starfederation/datastar/sdk/go"
	"github.com/stelofinance/connect/web/components"
	"github.com/stelofinance/connect/web/pages"
	"github.com/stelofinance/connect/web/theme"
	g "maragu.dev/gomponents"
)

func Home(logger *slog.Logger, props pages.HomeProps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, logger, pages.Home(props))
	}
}

// Connect renders only the themed connect fragment. The optional class
// query parameter is passed through as the caller class.
func Connect(logger *slog.Logger, t theme.Theme) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var props components.ConnectAccountProps
		if q := r.URL.Query(); q.Has("class") {
			class := q.Get("class")
			props.Class = &class
		}

		render(w, r, logger, components.ThemedConnectAccount(t, props))
	}
}

var hotReloadOnce sync.Once

func HotReload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		hotReloadOnce.Do(func() {
			// Refresh the client page as soon as connection
			// is established. This will occur only once
			// after the server starts.
			sse.ExecuteScript(
				"window.location.reload()",
				datastar.WithExecuteScriptRetryDuration(time.Second),
			)
		})

		// Freeze the event stream until the connection
		// is lost for any reason. This will force the client
		// to attempt to reconnect after the server reboots.
		<-r.Context().Done()
	}
}

// render buffers the node so a failed render can still respond with a 500.
func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.LogAttrs(
			r.Context(),
			slog.LevelError,
			"failed to render",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
