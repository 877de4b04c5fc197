package service

import (
	"context"
	"movie_catalog/model"
	"movie_catalog/pkg/servererror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedMovies() []model.Movie {
	return []model.Movie{
		{
			Id:     primitive.NewObjectID(),
			Title:  "The Matrix",
			Genres: []string{"Action", "Science Fiction"},
		},
		{
			Id:     primitive.NewObjectID(),
			Title:  "Toy Story",
			Genres: []string{"Animation", "Comedy"},
		},
		{
			Id:     primitive.NewObjectID(),
			Title:  "Matrix Reloaded",
			Genres: []string{"Action"},
		},
	}
}

func TestListMoviesCacheAside(t *testing.T) {
	repo := &fakeMovieRepo{movies: seedMovies()}
	cache := newFakeMovieCache()
	svc := NewMovieService(repo, cache)
	filter := &model.MovieFilter{Genre: "Action", Page: 1, Limit: 10}

	first, err := svc.ListMovies(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, 1, cache.sets)

	// second call with the same filter is served from the cache, the store is
	// not consulted again and the payload comes back verbatim
	second, err := svc.ListMovies(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, 1, cache.sets)
}

func TestListMoviesCacheHitCanBeStale(t *testing.T) {
	repo := &fakeMovieRepo{movies: seedMovies()}
	cache := newFakeMovieCache()
	svc := NewMovieService(repo, cache)
	filter := &model.MovieFilter{Search: "matrix", Page: 1, Limit: 10}

	first, err := svc.ListMovies(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// mutations do not purge cache entries
	_, err = svc.RemoveMovie(context.Background(), first[0].Id.Hex())
	require.NoError(t, err)

	cached, err := svc.ListMovies(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

func TestListMoviesCacheFailureFallsThrough(t *testing.T) {
	repo := &fakeMovieRepo{movies: seedMovies()}
	cache := newFakeMovieCache()
	cache.getErr = assert.AnError
	cache.setErr = assert.AnError
	svc := NewMovieService(repo, cache)

	movies, err := svc.ListMovies(context.Background(), &model.MovieFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, movies, 3)
	assert.Equal(t, 1, repo.findCalls)
}

func TestListMoviesPagination(t *testing.T) {
	repo := &fakeMovieRepo{movies: seedMovies()}
	svc := NewMovieService(repo, newFakeMovieCache())

	page2, err := svc.ListMovies(context.Background(), &model.MovieFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Matrix Reloaded", page2[0].Title)
}

func TestGetMovieNotFound(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, newFakeMovieCache())

	_, err := svc.GetMovie(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, servererror.KindNotFound, servererror.KindOf(err))
}

func TestGetMovieInvalidId(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, newFakeMovieCache())

	_, err := svc.GetMovie(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	assert.Equal(t, servererror.KindValidation, servererror.KindOf(err))
}

func TestCreateMovie(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, newFakeMovieCache())

	movie, err := svc.CreateMovie(context.Background(), &model.CreateMovie{
		Title:  "Alien",
		Genres: []string{"Horror"},
	})
	require.NoError(t, err)
	assert.False(t, movie.Id.IsZero())
	assert.Equal(t, float64(0), movie.AverageRating)
	assert.Empty(t, movie.Ratings)

	// direct create does not dedup, only the sync path does
	_, err = svc.CreateMovie(context.Background(), &model.CreateMovie{Title: "Alien"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.insertCalls)
}

func TestCreateMovieWithoutTitle(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{}, newFakeMovieCache())

	_, err := svc.CreateMovie(context.Background(), &model.CreateMovie{})
	require.Error(t, err)
	assert.Equal(t, servererror.KindValidation, servererror.KindOf(err))
}

func TestUpdateMovie(t *testing.T) {
	movies := seedMovies()
	repo := &fakeMovieRepo{movies: movies}
	svc := NewMovieService(repo, newFakeMovieCache())

	title := "The Matrix (1999)"
	updated, err := svc.UpdateMovie(context.Background(), movies[0].Id.Hex(), &model.UpdateMovie{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	// untouched fields survive a partial update
	assert.Equal(t, []string{"Action", "Science Fiction"}, updated.Genres)
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{}, newFakeMovieCache())

	title := "x"
	_, err := svc.UpdateMovie(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateMovie{Title: &title})
	require.Error(t, err)
	assert.Equal(t, servererror.KindNotFound, servererror.KindOf(err))
}

func TestRemoveMovieIsIdempotent(t *testing.T) {
	movies := seedMovies()
	repo := &fakeMovieRepo{movies: movies}
	svc := NewMovieService(repo, newFakeMovieCache())
	id := movies[0].Id.Hex()

	deleted, err := svc.RemoveMovie(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)

	// absence is not surfaced, the second delete still reports true
	deleted, err = svc.RemoveMovie(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRateMovie(t *testing.T) {
	movies := seedMovies()
	movies[0].Ratings = []model.Rating{{UserId: "u1", Rating: 4}}
	movies[0].AverageRating = 4
	repo := &fakeMovieRepo{movies: movies}
	svc := NewMovieService(repo, newFakeMovieCache())
	id := movies[0].Id.Hex()

	movie, err := svc.RateMovie(context.Background(), id, "u2", 5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, movie.AverageRating)
	require.Len(t, movie.Ratings, 2)

	movie, err = svc.RateMovie(context.Background(), id, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, movie.AverageRating)
	assert.Equal(t, model.Rating{UserId: "u1", Rating: 2}, movie.Ratings[0])

	// the new list and average were persisted, not just returned
	stored, err := repo.FindById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3.5, stored.AverageRating)
}

func TestRateMovieNotFound(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{}, newFakeMovieCache())

	_, err := svc.RateMovie(context.Background(), primitive.NewObjectID().Hex(), "u1", 5)
	require.Error(t, err)
	assert.Equal(t, servererror.KindNotFound, servererror.KindOf(err))
}
