// Package handler implements the HTTP handlers for the People API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files (health.go, person.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/leska/people-api/internal/domain"
)

// PersonServicer defines the business operations the person handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type PersonServicer interface {
	Create(ctx context.Context, p domain.Person) (domain.Person, error)
	GetByID(ctx context.Context, id int64) (domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it into a router with Routes.
type Server struct {
	people PersonServicer
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(people PersonServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{people: people, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
