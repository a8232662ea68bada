package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/palette"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// PeopleService implements the Connect PeopleService
type PeopleService struct {
	store storage.Store
}

var _ api.PeopleServiceHandler = (*PeopleService)(nil)

// NewPeopleService creates a new PeopleService with the given storage backend.
func NewPeopleService(store storage.Store) *PeopleService {
	return &PeopleService{store: store}
}

func toAPIPerson(p models.Person) *api.Person {
	return &api.Person{
		Id:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
	}
}

// AddPerson adds someone to the caller's ledger. Without an explicit colour the
// person gets the next colour in the palette rotation.
func (s *PeopleService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("AddPerson request received", "user_id", userID, "name", name)

	if name == "" {
		return nil, invalidArgument("name required")
	}

	color := req.Msg.Color
	if color == "" {
		existing, err := s.store.ListPeople(ctx, userID)
		if err != nil {
			slog.Error("AddPerson failed to list people", "user_id", userID, "error", err)
			return nil, storeError(err)
		}
		color = palette.ForIndex(len(existing))
	} else {
		color, err = palette.Normalize(color)
		if err != nil {
			return nil, invalidArgument("%v", err)
		}
	}

	person := &models.Person{
		OwnerID: userID,
		Name:    name,
		Color:   color,
	}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		slog.Error("AddPerson failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Person added", "person_id", person.ID, "color", person.Color)

	return connect.NewResponse(&api.AddPersonResponse{Person: toAPIPerson(*person)}), nil
}

// RemovePerson deletes a person. Their existing expenses stay on the books.
func (s *PeopleService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("RemovePerson request received", "user_id", userID, "person_id", req.Msg.PersonId)

	if req.Msg.PersonId == "" {
		return nil, invalidArgument("person_id required")
	}

	if err := s.store.DeletePerson(ctx, userID, req.Msg.PersonId); err != nil {
		slog.Error("RemovePerson failed", "person_id", req.Msg.PersonId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Person removed", "person_id", req.Msg.PersonId)

	return connect.NewResponse(&api.RemovePersonResponse{}), nil
}

// ListPeople returns everyone in the caller's ledger in the order they were added.
func (s *PeopleService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	people, err := s.store.ListPeople(ctx, userID)
	if err != nil {
		slog.Error("ListPeople failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Person, len(people))
	for i, p := range people {
		out[i] = toAPIPerson(p)
	}

	slog.Debug("ListPeople successful", "user_id", userID, "count", len(people))

	return connect.NewResponse(&api.ListPeopleResponse{People: out}), nil
}
