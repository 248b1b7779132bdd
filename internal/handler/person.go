package handler

import (
	"context"
	"errors"

	"github.com/leska/people-api/internal/domain"
	"github.com/leska/people-api/internal/handler/gen"
)

// ListPeople handles GET /people.
func (s *Server) ListPeople(ctx context.Context, _ gen.ListPeopleRequestObject) (gen.ListPeopleResponseObject, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, err
	}

	// make, not a nil slice, so an empty store encodes as [] rather than null.
	resp := make(gen.ListPeople200JSONResponse, len(people))
	for i, p := range people {
		resp[i] = personToResponse(p)
	}
	return resp, nil
}

// GetPerson handles GET /people/{id}.
func (s *Server) GetPerson(ctx context.Context, req gen.GetPersonRequestObject) (gen.GetPersonResponseObject, error) {
	p, err := s.people.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPerson404JSONResponse(errorBody(personNotFoundMessage)), nil
		}
		return nil, err
	}

	return gen.GetPerson200JSONResponse(personToResponse(p)), nil
}

// CreatePerson handles POST /people.
func (s *Server) CreatePerson(ctx context.Context, req gen.CreatePersonRequestObject) (gen.CreatePersonResponseObject, error) {
	if req.Body == nil {
		return gen.CreatePerson400JSONResponse(errorBody("request body is required")), nil
	}

	created, err := s.people.Create(ctx, requestToPerson(*req.Body))
	if err != nil {
		var nce *domain.NotCreatedError
		if errors.As(err, &nce) {
			return gen.CreatePerson400JSONResponse(errorBody(nce.Message)), nil
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "person created", "id", created.ID)
	return gen.CreatePerson201JSONResponse(personToResponse(created)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToPerson converts a CreatePersonRequest body into a domain.Person.
// The ID is left zero; the store assigns it.
func requestToPerson(body gen.CreatePersonRequest) domain.Person {
	return domain.Person{
		Name:  body.Name,
		Age:   body.Age,
		Email: body.Email,
	}
}

// personToResponse converts a domain.Person into the generated gen.Person type.
func personToResponse(p domain.Person) gen.Person {
	return gen.Person{
		Id:    p.ID,
		Name:  p.Name,
		Age:   p.Age,
		Email: p.Email,
	}
}
