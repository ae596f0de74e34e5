// Package server wires the bookmark handlers and middleware into a
// chi router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/app/handler"
	"github.com/recollect/recollect/internal/app/service"
	"github.com/recollect/recollect/internal/middleware"
	"github.com/recollect/recollect/internal/response"
)

// Init builds the router. The API key guard wraps only the bookmark
// routes; /ping stays open for health probes.
func Init(apiKey string, logger *zap.Logger, svc service.BookmarkServiceIface) *chi.Mux {
	postHandler := handler.NewPost(svc, logger)
	getHandler := handler.NewGet(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithCORS)
	r.Use(middleware.WithGZIP)

	r.Route("/api/urls", func(r chi.Router) {
		r.Use(middleware.WithAPIKey(apiKey, logger))
		r.Post("/", postHandler.SaveURL)
		r.Get("/", getHandler.ListURLs)
	})

	r.Get("/ping", getHandler.PingDB)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "MethodNotAllowed", "Method Not Allowed")
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "NotFound", "Route not found")
	})

	return r
}
