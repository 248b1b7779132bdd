package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leska/people-api/internal/handler/gen"
	"github.com/leska/people-api/spec"
)

// Routes mounts every API endpoint on a chi router.
//
// The generated strict handler is configured so that every failure, including
// ones rejected before reaching a handler, is answered with the same
// {message, timestamp} JSON body. The embedded OpenAPI document is served at
// /openapi.yaml.
func Routes(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		//nolint:errcheck
		w.Write(spec.OpenAPI)
	})

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})

	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
}
