package service

import (
	"context"
	"errors"
	"movie_catalog/internal/repository"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"movie_catalog/pkg/servererror"
	"movie_catalog/util"

	"github.com/badoux/checkmail"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, createUser *model.CreateUser) error
	Login(ctx context.Context, loginUser *model.LoginUser) (*model.TokenData, error)
	GetProfile(ctx context.Context, userId string) (*model.User, error)
	AddToWatchList(ctx context.Context, movieId string, userId string) (*model.User, error)
}

type UserService struct {
	userRepo     repository.IUserRepository
	movieService IMovieService
}

func NewUserService(userRepo repository.IUserRepository, movieService IMovieService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

func (u *UserService) Register(ctx context.Context, createUser *model.CreateUser) error {
	if createUser.Username == "" || createUser.Password == "" {
		return servererror.New(servererror.KindValidation, response.BadRequestBody)
	}
	if err := checkmail.ValidateFormat(createUser.Email); err != nil {
		return servererror.New(servererror.KindValidation, "Invalid email address")
	}

	_, err := u.userRepo.FindByEmail(ctx, createUser.Email)
	if err == nil {
		return servererror.New(servererror.KindAlreadyExists, response.EmailAlreadyExist)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return servererror.Wrap(servererror.KindPersistence, "Error on reading user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(createUser.Password), bcrypt.DefaultCost)
	if err != nil {
		return servererror.Wrap(servererror.KindPersistence, "Error on hashing password", err)
	}

	user := &model.User{
		Username:  createUser.Username,
		Email:     createUser.Email,
		Password:  string(hashedPassword),
		WatchList: []primitive.ObjectID{},
	}
	if _, err := u.userRepo.Create(ctx, user); err != nil {
		return servererror.Wrap(servererror.KindPersistence, "Error on saving user", err)
	}
	return nil
}

func (u *UserService) Login(ctx context.Context, loginUser *model.LoginUser) (*model.TokenData, error) {
	user, err := u.userRepo.FindByEmail(ctx, loginUser.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererror.New(servererror.KindValidation, response.UserPassNotMatch)
		}
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on reading user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginUser.Password)); err != nil {
		return nil, servererror.New(servererror.KindValidation, response.UserPassNotMatch)
	}

	token, err := util.GenerateToken(user.Id.Hex(), user.Username)
	if err != nil {
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on signing token", err)
	}
	return &model.TokenData{AccessToken: token}, nil
}

func (u *UserService) GetProfile(ctx context.Context, userId string) (*model.User, error) {
	user, err := u.userRepo.FindById(ctx, userId)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			return nil, servererror.New(servererror.KindValidation, "Invalid userId")
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererror.New(servererror.KindNotFound, response.UserNotFound)
		}
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on reading user", err)
	}
	return user, nil
}

// AddToWatchList appends movieId to the user's watch list. Duplicate adds are
// rejected with KindAlreadyExists, repeated calls are not idempotent by design.
func (u *UserService) AddToWatchList(ctx context.Context, movieId string, userId string) (*model.User, error) {
	movie, err := u.movieService.GetMovie(ctx, movieId)
	if err != nil {
		return nil, err
	}

	user, err := u.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	for _, id := range user.WatchList {
		if id == movie.Id {
			return nil, servererror.New(servererror.KindAlreadyExists, response.AlreadyInWatchList)
		}
	}

	user, err = u.userRepo.PushWatchList(ctx, userId, movie.Id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererror.New(servererror.KindNotFound, response.UserNotFound)
		}
		return nil, servererror.Wrap(servererror.KindPersistence, "Error on saving watch list", err)
	}
	return user, nil
}
