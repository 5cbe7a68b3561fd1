package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkigikm/director-api/internal/domains/director"
)

// directorService sequences the register/update lifecycle against the
// persistence and remote lookup gateways. All entity state is request-local;
// the store is the only shared state, and concurrent updates to the same id
// are last-writer-wins (read-modify-write with no optimistic lock).
type directorService struct {
	repo     director.Repository
	accounts director.AccountClient
}

func NewService(repo director.Repository, accounts director.AccountClient) director.Service {
	return &directorService{
		repo:     repo,
		accounts: accounts,
	}
}

// Register checks local existence, then fetches the remote account and
// persists a fresh record. An already-registered id never triggers a remote
// call.
func (s *directorService) Register(ctx context.Context, req director.CreateDirectorRequest) (*director.Director, error) {
	_, err := s.repo.FindByID(ctx, req.LivestreamID)
	if err == nil {
		return nil, director.ErrAlreadyRegistered
	}
	if !errors.Is(err, director.ErrDirectorNotFound) {
		return nil, fmt.Errorf("check existing director: %w", err)
	}

	status, account, err := s.accounts.FindByID(ctx, req.LivestreamID)
	if err != nil {
		return nil, fmt.Errorf("fetch livestream account: %w", err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, director.ErrAccountNotFound
	case status != http.StatusOK:
		return nil, &director.UpstreamError{StatusCode: status}
	}

	d := director.New(req.LivestreamID)
	d.FullName = account.FullName
	d.DOB = account.DOB
	d.EnsureDefaults()

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save director: %w", err)
	}
	return d, nil
}

// Update loads, authorizes, applies the patch, and re-saves. Authorization
// is checked only after the record is known to exist, and the first
// invalid field aborts the whole update with nothing persisted.
func (s *directorService) Update(ctx context.Context, livestreamID, token string, req director.UpdateDirectorRequest) (*director.Director, error) {
	d, err := s.repo.FindByID(ctx, livestreamID)
	if err != nil {
		return nil, err
	}

	if !d.IsAuthorized(token) {
		return nil, director.ErrNotAuthorized
	}

	if err := d.SetFavoriteCamera(req.FavoriteCamera); err != nil {
		return nil, err
	}

	switch req.Action {
	case director.ActionAdd:
		err = d.AddFavoriteMovies(req.FavoriteMovies)
	case director.ActionRemove:
		err = d.RemoveFavoriteMovies(req.FavoriteMovies)
	default:
		err = d.SetFavoriteMovies(req.FavoriteMovies)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save director: %w", err)
	}
	return d, nil
}

func (s *directorService) Get(ctx context.Context, livestreamID string) (*director.Director, error) {
	return s.repo.FindByID(ctx, livestreamID)
}

func (s *directorService) List(ctx context.Context) ([]*director.Director, error) {
	return s.repo.All(ctx)
}
