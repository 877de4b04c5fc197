package handler

import (
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"movie_catalog/util"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	AddToWatchList(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	register a user with username, email and password.
//	@Tags			Users
//	@Param			user	body		model.CreateUser	true	"user fields"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/v1/users/register [post]
func (u *UserHandler) Register(c *fiber.Ctx) error {
	var createUser model.CreateUser
	if err := c.BodyParser(&createUser); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := u.userService.Register(c.Context(), &createUser); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "User registered successfully")
}

// Login godoc
//
//	@Summary		Login
//	@Description	login with email and password, returns a jwt access token.
//	@Tags			Users
//	@Param			user	body		model.LoginUser	true	"credentials"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.TokenData}
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/v1/users/login [post]
func (u *UserHandler) Login(c *fiber.Ctx) error {
	var loginUser model.LoginUser
	if err := c.BodyParser(&loginUser); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	token, err := u.userService.Login(c.Context(), &loginUser)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, token)
}

// GetProfile godoc
//
//	@Summary		Get Profile
//	@Description	return the authenticated user's profile.
//	@Tags			Users
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.User}
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/users/profile [get]
func (u *UserHandler) GetProfile(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	user, err := u.userService.GetProfile(c.Context(), jwtUserData.UserId)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, user)
}

// AddToWatchList godoc
//
//	@Summary		Add To Watch List
//	@Description	append a movie to the authenticated user's watch list, duplicate adds are rejected.
//	@Tags			Users
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=model.User}
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/users/:movieId/watch-list [put]
func (u *UserHandler) AddToWatchList(c *fiber.Ctx) error {
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	user, err := u.userService.AddToWatchList(c.Context(), movieId, jwtUserData.UserId)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, user)
}
