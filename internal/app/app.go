package app

import (
	"net/http"
	"path/filepath"
	"time"

	"paperpod/features/podcast"
	"paperpod/internal/config"
	"paperpod/internal/extract"
	"paperpod/internal/fetch"
	"paperpod/internal/middleware"
	"paperpod/web"
)

type App struct {
	Handler        http.Handler
	PodcastService *podcast.Service
}

func New(cfg *config.Config, deps *Dependencies) *App {
	fetcher := fetch.NewFetcher(
		time.Duration(cfg.FetchTimeoutSeconds)*time.Second,
		cfg.MaxDownloadSizeMB<<20,
	)

	svc := podcast.NewService(fetcher, podcast.ExtractorFunc(extract.Extract), deps.Gemini, deps.Synth)
	handler := podcast.NewHandler(svc, cfg.MaxUploadSizeMB<<20)

	// Middleware: CORS
	enableCORS := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Routes
	mux := http.NewServeMux()

	mux.Handle("POST /generate", middleware.CorrelationID(enableCORS(handler.Generate)))
	mux.Handle("GET /{$}", middleware.CorrelationID(enableCORS(web.Index)))

	// Synthesized episodes live on disk; serve them by name only, so the
	// bare directory never renders a listing.
	mux.HandleFunc("GET /static/audio/{file}", func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Base(r.PathValue("file"))
		http.ServeFile(w, r, filepath.Join(deps.Store.Dir(), name))
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return &App{Handler: mux, PodcastService: svc}
}
