package handler

import (
	"context"
	"encoding/json"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"movie_catalog/pkg/servererror"
	"movie_catalog/util"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMovieService struct {
	movies map[string]*model.Movie
}

func (f *fakeMovieService) CreateMovie(ctx context.Context, createMovie *model.CreateMovie) (*model.Movie, error) {
	if createMovie.Title == "" {
		return nil, servererror.New(servererror.KindValidation, "Invalid movie title")
	}
	movie := &model.Movie{Id: primitive.NewObjectID(), Title: createMovie.Title}
	f.movies[movie.Id.Hex()] = movie
	return movie, nil
}

func (f *fakeMovieService) ListMovies(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error) {
	movies := []model.Movie{}
	for _, movie := range f.movies {
		movies = append(movies, *movie)
	}
	return movies, nil
}

func (f *fakeMovieService) GetMovie(ctx context.Context, id string) (*model.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, servererror.New(servererror.KindNotFound, response.MovieNotFound)
	}
	return movie, nil
}

func (f *fakeMovieService) UpdateMovie(ctx context.Context, id string, update *model.UpdateMovie) (*model.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, servererror.New(servererror.KindNotFound, response.MovieNotFound)
	}
	if update.Title != nil {
		movie.Title = *update.Title
	}
	return movie, nil
}

func (f *fakeMovieService) RemoveMovie(ctx context.Context, id string) (bool, error) {
	delete(f.movies, id)
	return true, nil
}

func (f *fakeMovieService) RateMovie(ctx context.Context, id string, userId string, rating float64) (*model.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, servererror.New(servererror.KindNotFound, response.MovieNotFound)
	}
	movie.Ratings, movie.AverageRating = model.ApplyRating(movie.Ratings, userId, rating)
	return movie, nil
}

func newTestApp(svc *fakeMovieService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("jwtUserData", &util.MyJwtClaims{UserId: "u1", Username: "neo"})
		return c.Next()
	})
	movieHandler := NewMovieHandler(svc)
	app.Post("/v1/tmdb/movies", movieHandler.CreateMovie)
	app.Get("/v1/tmdb/movies", movieHandler.ListMovies)
	app.Get("/v1/tmdb/movies/:id", movieHandler.GetMovie)
	app.Patch("/v1/tmdb/movies/:id/rate", movieHandler.RateMovie)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) response.ResponseOKWithDataModel {
	t.Helper()
	var body response.ResponseOKWithDataModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetMovieHandlerNotFound(t *testing.T) {
	app := newTestApp(&fakeMovieService{movies: map[string]*model.Movie{}})

	req := httptest.NewRequest(http.MethodGet, "/v1/tmdb/movies/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListMoviesHandler(t *testing.T) {
	svc := &fakeMovieService{movies: map[string]*model.Movie{}}
	movie := &model.Movie{Id: primitive.NewObjectID(), Title: "The Matrix"}
	svc.movies[movie.Id.Hex()] = movie
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/tmdb/movies?genre=Action&page=1&limit=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, 200, body.Code)
	assert.Empty(t, body.ErrorMessage)
}

func TestRateMovieHandler(t *testing.T) {
	svc := &fakeMovieService{movies: map[string]*model.Movie{}}
	movie := &model.Movie{Id: primitive.NewObjectID(), Title: "The Matrix"}
	svc.movies[movie.Id.Hex()] = movie
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPatch,
		"/v1/tmdb/movies/"+movie.Id.Hex()+"/rate", strings.NewReader(`{"rating": 5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// userId comes from the jwt claims, not the body
	require.Len(t, movie.Ratings, 1)
	assert.Equal(t, "u1", movie.Ratings[0].UserId)
	assert.Equal(t, 5.0, movie.AverageRating)
}

func TestRateMovieHandlerBadBody(t *testing.T) {
	svc := &fakeMovieService{movies: map[string]*model.Movie{}}
	movie := &model.Movie{Id: primitive.NewObjectID(), Title: "The Matrix"}
	svc.movies[movie.Id.Hex()] = movie
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPatch,
		"/v1/tmdb/movies/"+movie.Id.Hex()+"/rate", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateMovieHandler(t *testing.T) {
	svc := &fakeMovieService{movies: map[string]*model.Movie{}}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPost,
		"/v1/tmdb/movies", strings.NewReader(`{"title": "Alien", "genres": ["Horror"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, svc.movies, 1)
}
