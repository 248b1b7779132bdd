// Package service contains the business logic for the People API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/leska/people-api/internal/domain"
	"github.com/leska/people-api/internal/repo"
	"github.com/leska/people-api/internal/validation"
)

// PersonService implements business logic for Person operations.
type PersonService struct {
	repo repo.PersonRepo
}

// NewPersonService constructs a PersonService backed by the provided PersonRepo.
func NewPersonService(r repo.PersonRepo) *PersonService {
	return &PersonService{repo: r}
}

// Create validates and persists a new person.
// Every field is checked before anything is written; if any constraint fails
// the result is a *domain.NotCreatedError describing all of them and the repo
// is never called. Any ID on the input is discarded.
func (s *PersonService) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	if violations := validation.Person(p); len(violations) > 0 {
		return domain.Person{}, &domain.NotCreatedError{Message: violations.Message()}
	}

	p.ID = 0
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single person by ID.
// Returns an error wrapping domain.ErrNotFound when no such person exists.
func (s *PersonService) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.GetByID: %w", err)
	}
	return p, nil
}

// List returns all people ordered by ID. The result is never nil.
func (s *PersonService) List(ctx context.Context) ([]domain.Person, error) {
	people, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PersonService.List: %w", err)
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}
