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
	"strconv"

	"go.mongodb.org/mongo-driver/mongo"
)

type ISyncService interface {
	SyncMovies(ctx context.Context) error
	FetchGenres(ctx context.Context) ([]model.Genre, error)
}

type SyncService struct {
	movieRepo  repository.IMovieRepository
	feedClient IFeedClient
}

func NewSyncService(movieRepo repository.IMovieRepository, feedClient IFeedClient) *SyncService {
	return &SyncService{
		movieRepo:  movieRepo,
		feedClient: feedClient,
	}
}

//------------------------------------------
//------------------------------------------

// SyncMovies pulls one page of popular titles plus the genre table and inserts
// the titles not seen before. A previously seen title is skipped, not updated,
// so re-running against an unchanged feed is a no-op. Partial progress written
// before a mid-run failure stays in the store.
func (s *SyncService) SyncMovies(ctx context.Context) error {
	feedMovies, err := s.feedClient.FetchPopular(ctx)
	if err != nil {
		return servererror.Wrap(servererror.KindSyncFailed, response.SyncFailed, err)
	}

	genres, err := s.feedClient.FetchGenres(ctx)
	if err != nil {
		return servererror.Wrap(servererror.KindSyncFailed, response.SyncFailed, err)
	}

	genreNames := make(map[int64]string, len(genres))
	for _, genre := range genres {
		genreNames[genre.Id] = genre.Name
	}

	for i := range feedMovies {
		feedMovie := feedMovies[i]

		names := make([]string, 0, len(feedMovie.GenreIds))
		for _, genreId := range feedMovie.GenreIds {
			name, ok := genreNames[genreId]
			if !ok {
				// unresolved id: skip it, keep the rest of the item's genres
				errorMessage := fmt.Sprintf("Sync: unresolved genreId %v on %q", genreId, feedMovie.Title)
				errorHandler.SaveError(errorMessage, nil)
				continue
			}
			names = append(names, name)
		}

		_, err := s.movieRepo.FindByTitle(ctx, feedMovie.Title)
		if err == nil {
			// already imported, titles are deduped by exact match
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return servererror.Wrap(servererror.KindPersistence, "Error on reading movie during sync", err)
		}

		movie := &model.Movie{
			TmdbId:      strconv.FormatInt(feedMovie.Id, 10),
			Title:       feedMovie.Title,
			Description: feedMovie.Overview,
			Genres:      names,
			Ratings:     []model.Rating{},
			ReleaseDate: feedMovie.ReleaseDate,
			Adult:       feedMovie.Adult,
			Poster:      feedMovie.PosterPath,
		}
		if _, err := s.movieRepo.Insert(ctx, movie); err != nil {
			return servererror.Wrap(servererror.KindPersistence, "Error on saving movie during sync", err)
		}
	}

	return nil
}

// FetchGenres exposes the raw genre table, its fetch failure propagates as-is
// (KindFeedUnavailable), not wrapped into a sync fault.
func (s *SyncService) FetchGenres(ctx context.Context) ([]model.Genre, error) {
	return s.feedClient.FetchGenres(ctx)
}
