package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkigikm/director-api/internal/domains/director"
)

func TestInMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "777")
	require.ErrorIs(t, err, director.ErrDirectorNotFound)

	d := director.New("777")
	d.FullName = "Matt"
	require.NoError(t, repo.Save(ctx, d))

	found, err := repo.FindByID(ctx, "777")
	require.NoError(t, err)
	require.Equal(t, "Matt", found.FullName)
	require.Equal(t, []string{}, found.FavoriteMovies) // defaults applied on save

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestInMemoryRepositoryReadsReturnCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	d := director.New("777")
	d.FullName = "Matt"
	d.FavoriteMovies = []string{"Casablanca"}
	require.NoError(t, repo.Save(ctx, d))

	first, err := repo.FindByID(ctx, "777")
	require.NoError(t, err)
	first.FavoriteMovies[0] = "mutated"

	second, err := repo.FindByID(ctx, "777")
	require.NoError(t, err)
	require.Equal(t, []string{"Casablanca"}, second.FavoriteMovies)
}
