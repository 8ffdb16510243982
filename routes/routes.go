package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkarimi/porsesh/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Post("/submit", SubmitSurvey(app))
	root.Get("/results", ViewResults(app))
	root.Post("/process_voice", ProcessVoice(app))

	root.Mount("/", servePublicFiles())

	return root
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
