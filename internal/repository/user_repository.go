package repository

import (
	"context"
	"movie_catalog/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindById(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	PushWatchList(ctx context.Context, userId string, movieId primitive.ObjectID) (*model.User, error)
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

const userCollection = "users"

//------------------------------------------
//------------------------------------------

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.mongodb.
		Collection(userCollection).
		InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.Id = oid
	}
	return user, nil
}

func (r *UserRepository) FindById(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.mongodb.
		Collection(userCollection).
		FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).
		Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.mongodb.
		Collection(userCollection).
		FindOne(ctx, bson.D{{Key: "email", Value: email}}).
		Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) PushWatchList(ctx context.Context, userId string, movieId primitive.ObjectID) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user model.User
	err = r.mongodb.
		Collection(userCollection).
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: oid}},
			bson.D{{Key: "$push", Value: bson.D{{Key: "watchList", Value: movieId}}}},
			opts).
		Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
