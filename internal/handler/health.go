package handler

import (
	"context"

	"github.com/leska/people-api/internal/handler/gen"
)

// GetHealth reports liveness only; it does not touch the person store.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
