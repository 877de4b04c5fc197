package handler

import (
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"movie_catalog/util"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	CreateMovie(c *fiber.Ctx) error
	ListMovies(c *fiber.Ctx) error
	GetMovie(c *fiber.Ctx) error
	UpdateMovie(c *fiber.Ctx) error
	DeleteMovie(c *fiber.Ctx) error
	RateMovie(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// CreateMovie godoc
//
//	@Summary		Create Movie
//	@Description	create a movie from caller supplied fields.
//	@Tags			Movies
//	@Param			movie	body		model.CreateMovie	true	"movie fields"
//	@Success		201		{object}	model.Movie
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/movies [post]
func (m *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var createMovie model.CreateMovie
	if err := c.BodyParser(&createMovie); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	movie, err := m.movieService.CreateMovie(c.Context(), &createMovie)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseCreated(c, movie)
}

// ListMovies godoc
//
//	@Summary		List Movies
//	@Description	list movies, filtered by genre and title search, paginated.
//	@Tags			Movies
//	@Param			genre	query		string	false	"exact genre name"
//	@Param			search	query		string	false	"case-insensitive title substring"
//	@Param			page	query		int		false	"1-based page"	default(1)
//	@Param			limit	query		int		false	"page size"		default(10)
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=[]model.Movie}
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/movies [get]
func (m *MovieHandler) ListMovies(c *fiber.Ctx) error {
	filter := model.MovieFilter{
		Genre:  c.Query("genre", ""),
		Search: c.Query("search", ""),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}

	movies, err := m.movieService.ListMovies(c.Context(), &filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, movies)
}

// GetMovie godoc
//
//	@Summary		Get Movie
//	@Description	get one movie by id.
//	@Tags			Movies
//	@Param			id			path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=model.Movie}
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/movies/:id [get]
func (m *MovieHandler) GetMovie(c *fiber.Ctx) error {
	id := c.Params("id", "")
	if id == "" || id == ":id" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	movie, err := m.movieService.GetMovie(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, movie)
}

// UpdateMovie godoc
//
//	@Summary		Update Movie
//	@Description	partial update, only supplied fields change.
//	@Tags			Movies
//	@Param			id			path		string				true	"movieId"
//	@Param			movie		body		model.UpdateMovie	true	"fields to update"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=model.Movie}
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/movies/:id [patch]
func (m *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id := c.Params("id", "")
	if id == "" || id == ":id" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	var update model.UpdateMovie
	if err := c.BodyParser(&update); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	movie, err := m.movieService.UpdateMovie(c.Context(), id, &update)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, movie)
}

// DeleteMovie godoc
//
//	@Summary		Delete Movie
//	@Description	unconditional delete by id, succeeds whether or not the movie existed.
//	@Tags			Movies
//	@Param			id		path		string	true	"movieId"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=bool}
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/movies/:id [delete]
func (m *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id := c.Params("id", "")
	if id == "" || id == ":id" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	deleted, err := m.movieService.RemoveMovie(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, deleted)
}

// RateMovie godoc
//
//	@Summary		Rate Movie
//	@Description	upsert the caller's rating and recompute the average.
//	@Tags			Movies
//	@Param			id			path		string			true	"movieId"
//	@Param			rate		body		model.RateMovie	true	"rating value"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=model.Movie}
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/movies/:id/rate [patch]
func (m *MovieHandler) RateMovie(c *fiber.Ctx) error {
	id := c.Params("id", "")
	if id == "" || id == ":id" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	var rateMovie model.RateMovie
	if err := c.BodyParser(&rateMovie); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	movie, err := m.movieService.RateMovie(c.Context(), id, jwtUserData.UserId, rateMovie.Rating)
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, movie)
}
