package repository

import (
	"context"
	"movie_catalog/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IMovieRepository interface {
	Find(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error)
	FindById(ctx context.Context, id string) (*model.Movie, error)
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
	Insert(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	UpdateById(ctx context.Context, id string, update *model.UpdateMovie) (*model.Movie, error)
	UpdateRatings(ctx context.Context, id string, ratings []model.Rating, average float64) error
	DeleteById(ctx context.Context, id string) error
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

const movieCollection = "movies"

//------------------------------------------
//------------------------------------------

func (m *MovieRepository) Find(ctx context.Context, filter *model.MovieFilter) ([]model.Movie, error) {
	query := bson.D{}
	if filter.Genre != "" {
		query = append(query, bson.E{Key: "genres", Value: filter.Genre})
	}
	if filter.Search != "" {
		query = append(query, bson.E{Key: "title", Value: bson.D{
			{Key: "$regex", Value: filter.Search},
			{Key: "$options", Value: "i"},
		}})
	}

	opts := options.Find().
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := m.mongodb.
		Collection(movieCollection).
		Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	movies := []model.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (m *MovieRepository) FindById(ctx context.Context, id string) (*model.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var movie model.Movie
	err = m.mongodb.
		Collection(movieCollection).
		FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).
		Decode(&movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (m *MovieRepository) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var movie model.Movie
	err := m.mongodb.
		Collection(movieCollection).
		FindOne(ctx, bson.D{{Key: "title", Value: title}}).
		Decode(&movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (m *MovieRepository) Insert(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	res, err := m.mongodb.
		Collection(movieCollection).
		InsertOne(ctx, movie)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		movie.Id = oid
	}
	return movie, nil
}

func (m *MovieRepository) UpdateById(ctx context.Context, id string, update *model.UpdateMovie) (*model.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Genres != nil {
		set = append(set, bson.E{Key: "genres", Value: update.Genres})
	}
	if update.ReleaseDate != nil {
		set = append(set, bson.E{Key: "releaseDate", Value: *update.ReleaseDate})
	}
	if update.Adult != nil {
		set = append(set, bson.E{Key: "adult", Value: *update.Adult})
	}
	if update.Poster != nil {
		set = append(set, bson.E{Key: "poster", Value: *update.Poster})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var movie model.Movie
	err = m.mongodb.
		Collection(movieCollection).
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: oid}},
			bson.D{{Key: "$set", Value: set}},
			opts).
		Decode(&movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// UpdateRatings persists the whole post-update rating list together with the
// recomputed average. Last writer wins: there is no version token.
func (m *MovieRepository) UpdateRatings(ctx context.Context, id string, ratings []model.Rating, average float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := m.mongodb.
		Collection(movieCollection).
		UpdateOne(ctx,
			bson.D{{Key: "_id", Value: oid}},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "ratings", Value: ratings},
				{Key: "averageRating", Value: average},
			}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (m *MovieRepository) DeleteById(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	// deleting an absent document is not an error at this layer
	_, err = m.mongodb.
		Collection(movieCollection).
		DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return err
}
