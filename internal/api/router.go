package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", app.CreateSessionHandler)
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", app.RemoveSessionHandler)
				r.Post("/start", app.StartSessionHandler)
				r.Post("/stop", app.StopSessionHandler)
				r.Post("/detections", app.DetectionsHandler)
				r.Get("/state", app.SessionStateHandler)
				r.Get("/stream", app.SessionStreamHandler)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", app.CreateProfileHandler)
			r.Get("/", app.ListProfilesHandler)
			r.Get("/{id}", app.GetProfileHandler)
			r.Delete("/{id}", app.DeleteProfileHandler)
		})
	})

	return r
}
