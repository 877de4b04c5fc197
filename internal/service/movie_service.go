package service

import (
	"context"
	"errors"
	"fmt"
	"movie_catalog/internal/repository"
	"movie_catalog/model"
	errorHandler "movie_catalog/pkg/error"
	"movie_catalog/pkg/response"
	"movie_catalog/pkg/servererror"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IMovieService interface {
	CreateMovie(ctx context.Context, createMovie *model.CreateMovie) (*model.Movie, error)
	ListMovies(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error)
	GetMovie(ctx context.Context, id string) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id string, update *model.UpdateMovie) (*model.Movie, error)
	RemoveMovie(ctx context.Context, id string) (bool, error)
	RateMovie(ctx context.Context, id string, userId string, rating float64) (*model.Movie, error)
}

type MovieService struct {
	movieRepo  repository.IMovieRepository
	movieCache IMovieCache
}

func NewMovieService(movieRepo repository.IMovieRepository, movieCache IMovieCache) *MovieService {
	return &MovieService{
		movieRepo:  movieRepo,
		movieCache: movieCache,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) CreateMovie(ctx context.Context, createMovie *model.CreateMovie) (*model.Movie, error) {
	if createMovie.Title == "" {
		return nil, servererror.New(servererror.KindValidation, "Invalid movie title")
	}

	genres := createMovie.Genres
	if genres == nil {
		genres = []string{}
	}
	// no dedup against existing titles here, only the sync path dedups
	movie := &model.Movie{
		Title:       createMovie.Title,
		Description: createMovie.Description,
		Genres:      genres,
		Ratings:     []model.Rating{},
		ReleaseDate: createMovie.ReleaseDate,
		Adult:       createMovie.Adult,
		Poster:      createMovie.Poster,
	}

	movie, err := m.movieRepo.Insert(ctx, movie)
	if err != nil {
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on saving movie", err)
	}
	return movie, nil
}

// ListMovies is the cache-aside read path. A hit is returned verbatim, so it
// can be stale for up to the configured ttl: mutations never purge entries.
func (m *MovieService) ListMovies(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error) {
	cached, err := m.movieCache.GetMovieList(ctx, filter)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on reading movies cache: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	if cached != nil {
		return cached, nil
	}

	movies, err := m.movieRepo.Find(ctx, filter)
	if err != nil {
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on reading movies", err)
	}

	if err := m.movieCache.SetMovieList(ctx, filter, movies); err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movies cache: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}

	return movies, nil
}

func (m *MovieService) GetMovie(ctx context.Context, id string) (*model.Movie, error) {
	movie, err := m.movieRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			return nil, servererror.New(servererror.KindValidation, "Invalid movieId")
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererror.New(servererror.KindNotFound, response.MovieNotFound)
		}
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on reading movie", err)
	}
	return movie, nil
}

func (m *MovieService) UpdateMovie(ctx context.Context, id string, update *model.UpdateMovie) (*model.Movie, error) {
	movie, err := m.movieRepo.UpdateById(ctx, id, update)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			return nil, servererror.New(servererror.KindValidation, "Invalid movieId")
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererror.New(servererror.KindNotFound, response.MovieNotFound)
		}
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on updating movie", err)
	}
	return movie, nil
}

// RemoveMovie returns true whether or not a document existed, delete-by-id is
// idempotent from this layer's point of view.
func (m *MovieService) RemoveMovie(ctx context.Context, id string) (bool, error) {
	err := m.movieRepo.DeleteById(ctx, id)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			return false, servererror.New(servererror.KindValidation, "Invalid movieId")
		}
		return false, servererror.Wrap(servererror.KindPersistence, "Error on removing movie", err)
	}
	return true, nil
}

// RateMovie loads the movie, upserts the user's rating and persists the whole
// updated list plus recomputed average in one write. Concurrent re-ratings of
// the same movie race read-modify-write, last writer wins (see DESIGN.md).
func (m *MovieService) RateMovie(ctx context.Context, id string, userId string, rating float64) (*model.Movie, error) {
	movie, err := m.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	ratings, average := model.ApplyRating(movie.Ratings, userId, rating)

	err = m.movieRepo.UpdateRatings(ctx, id, ratings, average)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererror.New(servererror.KindNotFound, response.MovieNotFound)
		}
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on saving movie rating", err)
	}

	movie.Ratings = ratings
	movie.AverageRating = average
	return movie, nil
}
