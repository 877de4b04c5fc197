package model

// FeedMovie is one item of the tmdb "popular movies" page.
type FeedMovie struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	GenreIds    []int64 `json:"genre_ids"`
	ReleaseDate string  `json:"release_date"`
	Adult       bool    `json:"adult"`
	PosterPath  string  `json:"poster_path"`
}

// Genre is one row of the tmdb genre lookup table. The table is fetched per
// sync run and never persisted on its own.
type Genre struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}
