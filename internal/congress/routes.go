package congress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/terms", TermsHandler)
	r.Get("/legislators/{bioguide}", LegislatorHandler)
	r.Get("/sessions", SessionsHandler)

	return r
}
