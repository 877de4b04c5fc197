package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/model"
	"time"

	"github.com/redis/go-redis/v9"
)

type IMovieCache interface {
	GetMovieList(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error)
	SetMovieList(ctx context.Context, filter *model.MovieFilter, movies []model.Movie) error
}

type MovieCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewMovieCache(redisClient *redis.Client, ttl time.Duration) *MovieCache {
	return &MovieCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

const movieListCachePrefix = "movies_cache"

// movieListCacheKey builds the key from the four filter fields in fixed order.
// Absent fields render as empty segments, so `genre=X` and `genre=X,search=""`
// land on the same entry. That collision is intentional key stability.
func movieListCacheKey(filter *model.MovieFilter) string {
	return fmt.Sprintf("%s-%s-%s-%d-%d",
		movieListCachePrefix, filter.Genre, filter.Search, filter.Page, filter.Limit)
}

//------------------------------------------
//------------------------------------------

// GetMovieList returns nil with no error on a cache miss.
func (c *MovieCache) GetMovieList(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error) {
	result, err := c.redisClient.Get(ctx, movieListCacheKey(filter)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var movies []model.Movie
	if err := json.Unmarshal([]byte(result), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *MovieCache) SetMovieList(ctx context.Context, filter *model.MovieFilter, movies []model.Movie) error {
	jsonData, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	return c.redisClient.Set(ctx, movieListCacheKey(filter), jsonData, c.ttl).Err()
}
