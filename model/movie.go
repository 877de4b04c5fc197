package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Rating struct {
	UserId string  `bson:"userId" json:"userId"`
	Rating float64 `bson:"rating" json:"rating"`
}

type Movie struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TmdbId        string             `bson:"tmdbId,omitempty" json:"tmdbId,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Genres        []string           `bson:"genres" json:"genres"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	Ratings       []Rating           `bson:"ratings" json:"ratings"`
	ReleaseDate   string             `bson:"releaseDate" json:"releaseDate"`
	Adult         bool               `bson:"adult" json:"adult"`
	Poster        string             `bson:"poster" json:"poster"`
	// legacy flags, watch-list membership lives on the User document
	IsFavorite  bool `bson:"isFavorite" json:"isFavorite"`
	InWatchlist bool `bson:"inWatchlist" json:"inWatchlist"`
}

//---------------------------------------
//---------------------------------------

type MovieFilter struct {
	Genre  string `json:"genre"`
	Search string `json:"search"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type CreateMovie struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	ReleaseDate string   `json:"releaseDate"`
	Adult       bool     `json:"adult"`
	Poster      string   `json:"poster"`
}

type UpdateMovie struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Genres      []string `json:"genres"`
	ReleaseDate *string  `json:"releaseDate"`
	Adult       *bool    `json:"adult"`
	Poster      *string  `json:"poster"`
}

type RateMovie struct {
	Rating float64 `json:"rating"`
}
