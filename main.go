package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mkarimi/porsesh/app"
	"github.com/mkarimi/porsesh/config"
	"github.com/mkarimi/porsesh/log"
	"github.com/mkarimi/porsesh/routes"
	"github.com/mkarimi/porsesh/store"
	"github.com/mkarimi/porsesh/voice"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	var extractor *voice.Extractor
	if cfg.GeminiAPIKey == "" {
		log.Warn("GOOGLE_API_KEY environment variable not set, voice processing is disabled")
	} else {
		extractor, err = voice.NewExtractor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("main.voice:", err)
		}
	}

	app := app.App{
		Store:     store.New(cfg.SurveyFile),
		Extractor: extractor,
		Config:    cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler,
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// voice extraction waits on a full model round trip
		WriteTimeout: 2 * time.Minute,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
