package service

import (
	"context"
	"movie_catalog/model"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMovieRepo struct {
	movies      []model.Movie
	findCalls   int
	insertCalls int
	findErr     error
	insertErr   error
}

func (f *fakeMovieRepo) Find(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}

	matched := []model.Movie{}
	for _, movie := range f.movies {
		if filter.Genre != "" {
			hasGenre := false
			for _, genre := range movie.Genres {
				if genre == filter.Genre {
					hasGenre = true
				}
			}
			if !hasGenre {
				continue
			}
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, movie)
	}

	skip := (filter.Page - 1) * filter.Limit
	if skip >= len(matched) {
		return []model.Movie{}, nil
	}
	matched = matched[skip:]
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (f *fakeMovieRepo) FindById(ctx context.Context, id string) (*model.Movie, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	for i := range f.movies {
		if f.movies[i].Id.Hex() == id {
			movie := f.movies[i]
			return &movie, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	for i := range f.movies {
		if f.movies[i].Title == title {
			movie := f.movies[i]
			return &movie, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMovieRepo) Insert(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if movie.Id.IsZero() {
		movie.Id = primitive.NewObjectID()
	}
	f.movies = append(f.movies, *movie)
	return movie, nil
}

func (f *fakeMovieRepo) UpdateById(ctx context.Context, id string, update *model.UpdateMovie) (*model.Movie, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	for i := range f.movies {
		if f.movies[i].Id.Hex() == id {
			if update.Title != nil {
				f.movies[i].Title = *update.Title
			}
			if update.Description != nil {
				f.movies[i].Description = *update.Description
			}
			if update.Genres != nil {
				f.movies[i].Genres = update.Genres
			}
			movie := f.movies[i]
			return &movie, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMovieRepo) UpdateRatings(ctx context.Context, id string, ratings []model.Rating, average float64) error {
	for i := range f.movies {
		if f.movies[i].Id.Hex() == id {
			f.movies[i].Ratings = ratings
			f.movies[i].AverageRating = average
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeMovieRepo) DeleteById(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return err
	}
	for i := range f.movies {
		if f.movies[i].Id.Hex() == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return nil
		}
	}
	return nil
}

//------------------------------------------
//------------------------------------------

type fakeMovieCache struct {
	entries map[string][]model.Movie
	sets    int
	getErr  error
	setErr  error
}

func newFakeMovieCache() *fakeMovieCache {
	return &fakeMovieCache{entries: map[string][]model.Movie{}}
}

func (f *fakeMovieCache) GetMovieList(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	movies, ok := f.entries[movieListCacheKey(filter)]
	if !ok {
		return nil, nil
	}
	return movies, nil
}

func (f *fakeMovieCache) SetMovieList(ctx context.Context, filter *model.MovieFilter, movies []model.Movie) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.entries[movieListCacheKey(filter)] = movies
	return nil
}

//------------------------------------------
//------------------------------------------

type fakeFeedClient struct {
	popular    []model.FeedMovie
	genres     []model.Genre
	popularErr error
	genresErr  error
}

func (f *fakeFeedClient) FetchPopular(ctx context.Context) ([]model.FeedMovie, error) {
	if f.popularErr != nil {
		return nil, f.popularErr
	}
	return f.popular, nil
}

func (f *fakeFeedClient) FetchGenres(ctx context.Context) ([]model.Genre, error) {
	if f.genresErr != nil {
		return nil, f.genresErr
	}
	return f.genres, nil
}

//------------------------------------------
//------------------------------------------

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	f.users = append(f.users, *user)
	return user, nil
}

func (f *fakeUserRepo) FindById(ctx context.Context, id string) (*model.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	for i := range f.users {
		if f.users[i].Id.Hex() == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) PushWatchList(ctx context.Context, userId string, movieId primitive.ObjectID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Id.Hex() == userId {
			f.users[i].WatchList = append(f.users[i].WatchList, movieId)
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
