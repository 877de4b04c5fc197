package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/model"
	"movie_catalog/pkg/servererror"
	"net/http"
	"time"
)

type IFeedClient interface {
	FetchPopular(ctx context.Context) ([]model.FeedMovie, error)
	FetchGenres(ctx context.Context) ([]model.Genre, error)
}

// TmdbClient fetches the "popular movies" page and the genre lookup table from
// the tmdb api. Every failure (network, non-2xx, malformed body) is tagged
// KindFeedUnavailable.
type TmdbClient struct {
	baseUrl    string
	apiKey     string
	httpClient *http.Client
}

func NewTmdbClient(baseUrl string, apiKey string) *TmdbClient {
	return &TmdbClient{
		baseUrl: baseUrl,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

type popularMoviesRes struct {
	Page    int               `json:"page"`
	Results []model.FeedMovie `json:"results"`
}

type genreListRes struct {
	Genres []model.Genre `json:"genres"`
}

func (t *TmdbClient) FetchPopular(ctx context.Context) ([]model.FeedMovie, error) {
	var res popularMoviesRes
	if err := t.getJson(ctx, "/movie/popular", &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (t *TmdbClient) FetchGenres(ctx context.Context) ([]model.Genre, error) {
	var res genreListRes
	if err := t.getJson(ctx, "/genre/movie/list", &res); err != nil {
		return nil, err
	}
	return res.Genres, nil
}

func (t *TmdbClient) getJson(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseUrl+path, nil)
	if err != nil {
		return servererror.Wrap(servererror.KindFeedUnavailable, "Error on building feed request", err)
	}
	query := req.URL.Query()
	query.Set("api_key", t.apiKey)
	query.Set("language", "en")
	req.URL.RawQuery = query.Encode()

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return servererror.Wrap(servererror.KindFeedUnavailable, "Error on fetching movie feed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return servererror.New(servererror.KindFeedUnavailable,
			fmt.Sprintf("Error on fetching movie feed: bad status: %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return servererror.Wrap(servererror.KindFeedUnavailable, "Error on decoding feed body", err)
	}
	return nil
}
