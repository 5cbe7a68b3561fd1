package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mkigikm/director-api/internal/domains/director"
	"github.com/mkigikm/director-api/internal/domains/director/repository"
)

// fakeAccounts scripts the remote accounts API and records whether it was
// called.
type fakeAccounts struct {
	status  int
	account *director.Account
	err     error
	calls   int
}

func (f *fakeAccounts) FindByID(ctx context.Context, livestreamID string) (int, *director.Account, error) {
	f.calls++
	return f.status, f.account, f.err
}

type DirectorServiceSuite struct {
	suite.Suite
	repo     *repository.InMemoryRepository
	accounts *fakeAccounts
	service  director.Service
	ctx      context.Context
}

func (s *DirectorServiceSuite) SetupTest() {
	s.repo = repository.NewInMemoryRepository()
	s.accounts = &fakeAccounts{}
	s.service = NewService(s.repo, s.accounts)
	s.ctx = context.Background()
}

func TestDirectorServiceSuite(t *testing.T) {
	suite.Run(t, new(DirectorServiceSuite))
}

// seedMatt persists the director fixture the update scenarios edit.
func (s *DirectorServiceSuite) seedMatt() {
	panasonic := "Panasonic"
	s.Require().NoError(s.repo.Save(s.ctx, &director.Director{
		LivestreamID:   "777",
		FullName:       "Matt",
		FavoriteCamera: &panasonic,
		FavoriteMovies: []string{"Casablanca"},
	}))
}

const mattToken = "7c1f90bd9bdc70cc059640a7a6209389" // md5("Matt")

func (s *DirectorServiceSuite) TestRegister() {
	s.Run("creates a director from its remote account", func() {
		s.SetupTest()
		s.accounts.status = http.StatusOK
		s.accounts.account = &director.Account{
			ID:       "6488824",
			FullName: "James Cameron",
			DOB:      "1954-08-16T00:00:00.000Z",
		}

		d, err := s.service.Register(s.ctx, director.CreateDirectorRequest{LivestreamID: "6488824"})
		s.Require().NoError(err)
		s.Equal("James Cameron", d.FullName)
		s.Equal("1954-08-16T00:00:00.000Z", d.DOB)
		s.Equal([]string{}, d.FavoriteMovies)

		persisted, err := s.repo.FindByID(s.ctx, "6488824")
		s.Require().NoError(err)
		s.Equal("James Cameron", persisted.FullName)
	})

	s.Run("rejects an already-registered id without a remote call", func() {
		s.SetupTest()
		s.seedMatt()

		_, err := s.service.Register(s.ctx, director.CreateDirectorRequest{LivestreamID: "777"})
		s.Require().ErrorIs(err, director.ErrAlreadyRegistered)
		s.Zero(s.accounts.calls)
	})

	s.Run("maps a remote 404 to an unknown-account error", func() {
		s.SetupTest()
		s.accounts.status = http.StatusNotFound

		_, err := s.service.Register(s.ctx, director.CreateDirectorRequest{LivestreamID: "foo"})
		s.Require().ErrorIs(err, director.ErrAccountNotFound)
	})

	s.Run("propagates other non-200 remote statuses", func() {
		for _, status := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusTeapot} {
			s.SetupTest()
			s.accounts.status = status

			_, err := s.service.Register(s.ctx, director.CreateDirectorRequest{LivestreamID: "foo"})
			var upstream *director.UpstreamError
			s.Require().ErrorAs(err, &upstream)
			s.Equal(status, upstream.StatusCode)
		}
	})

	s.Run("surfaces a transport failure as a plain error", func() {
		s.SetupTest()
		s.accounts.err = errors.New("connection refused")

		_, err := s.service.Register(s.ctx, director.CreateDirectorRequest{LivestreamID: "foo"})
		s.Require().Error(err)
		var upstream *director.UpstreamError
		s.False(errors.As(err, &upstream))
		s.NotErrorIs(err, director.ErrAccountNotFound)
	})
}

func (s *DirectorServiceSuite) TestUpdate() {
	s.Run("replaces fields for an authorized caller", func() {
		s.SetupTest()
		s.seedMatt()

		d, err := s.service.Update(s.ctx, "777", mattToken, director.UpdateDirectorRequest{
			FavoriteCamera: json.RawMessage(`"Nikon"`),
			FavoriteMovies: json.RawMessage(`["Fight Club"]`),
		})
		s.Require().NoError(err)
		s.Equal("Nikon", *d.FavoriteCamera)
		s.Equal([]string{"Fight Club"}, d.FavoriteMovies)

		persisted, err := s.repo.FindByID(s.ctx, "777")
		s.Require().NoError(err)
		s.NotContains(persisted.FavoriteMovies, "Casablanca")
	})

	s.Run("add mode keeps existing entries", func() {
		s.SetupTest()
		s.seedMatt()

		d, err := s.service.Update(s.ctx, "777", mattToken, director.UpdateDirectorRequest{
			FavoriteMovies: json.RawMessage(`["Fight Club"]`),
			Action:         director.ActionAdd,
		})
		s.Require().NoError(err)
		s.Equal([]string{"Casablanca", "Fight Club"}, d.FavoriteMovies)
	})

	s.Run("remove mode drops listed entries", func() {
		s.SetupTest()
		s.seedMatt()

		d, err := s.service.Update(s.ctx, "777", mattToken, director.UpdateDirectorRequest{
			FavoriteMovies: json.RawMessage(`["Casablanca"]`),
			Action:         director.ActionRemove,
		})
		s.Require().NoError(err)
		s.Empty(d.FavoriteMovies)
	})

	s.Run("a wrong token is refused with nothing persisted", func() {
		s.SetupTest()
		s.seedMatt()

		_, err := s.service.Update(s.ctx, "777", "bogus", director.UpdateDirectorRequest{
			FavoriteCamera: json.RawMessage(`"Nikon"`),
		})
		s.Require().ErrorIs(err, director.ErrNotAuthorized)

		persisted, err := s.repo.FindByID(s.ctx, "777")
		s.Require().NoError(err)
		s.Equal("Panasonic", *persisted.FavoriteCamera)
	})

	s.Run("an unknown id reports not found before authorization", func() {
		s.SetupTest()

		_, err := s.service.Update(s.ctx, "12345", "bogus", director.UpdateDirectorRequest{})
		s.Require().ErrorIs(err, director.ErrDirectorNotFound)
	})

	s.Run("the first invalid field aborts the whole update", func() {
		s.SetupTest()
		s.seedMatt()

		_, err := s.service.Update(s.ctx, "777", mattToken, director.UpdateDirectorRequest{
			FavoriteCamera: json.RawMessage(`"Nikon"`),
			FavoriteMovies: json.RawMessage(`7`),
		})
		s.Require().ErrorIs(err, director.ErrInvalidMovies)

		persisted, err := s.repo.FindByID(s.ctx, "777")
		s.Require().NoError(err)
		s.Equal("Panasonic", *persisted.FavoriteCamera)
		s.Equal([]string{"Casablanca"}, persisted.FavoriteMovies)
	})
}

func (s *DirectorServiceSuite) TestListAndGet() {
	s.Run("lists every persisted director", func() {
		s.SetupTest()
		s.seedMatt()
		s.Require().NoError(s.repo.Save(s.ctx, &director.Director{
			LivestreamID: "999",
			FullName:     "Lydia",
		}))

		directors, err := s.service.List(s.ctx)
		s.Require().NoError(err)
		s.Len(directors, 2)
	})

	s.Run("get reads through to the store", func() {
		s.SetupTest()
		s.seedMatt()

		d, err := s.service.Get(s.ctx, "777")
		s.Require().NoError(err)
		s.Equal("Matt", d.FullName)

		_, err = s.service.Get(s.ctx, "12345")
		s.Require().ErrorIs(err, director.ErrDirectorNotFound)
	})
}
