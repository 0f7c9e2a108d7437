package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", webapp.health())
	r.Post("/api/search", webapp.search())
	r.Get("/api/analyze", webapp.analyze())
	r.Get("/api/insights", webapp.insights())
	r.Post("/api/organize", webapp.organize())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "")
	})

	return r
}
