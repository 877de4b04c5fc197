package handler

import (
	"movie_catalog/internal/service"
	"movie_catalog/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ISyncHandler interface {
	SyncMovies(c *fiber.Ctx) error
	FetchGenres(c *fiber.Ctx) error
}

type SyncHandler struct {
	syncService service.ISyncService
}

func NewSyncHandler(syncService service.ISyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

//------------------------------------------
//------------------------------------------

// SyncMovies godoc
//
//	@Summary		Sync Movies
//	@Description	pull the popular feed and insert titles not seen before.
//	@Tags			Sync
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/sync [put]
func (s *SyncHandler) SyncMovies(c *fiber.Ctx) error {
	if err := s.syncService.SyncMovies(c.Context()); err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// FetchGenres godoc
//
//	@Summary		Fetch Genres
//	@Description	return the raw genre lookup table from the feed.
//	@Tags			Sync
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=[]model.Genre}
//	@Failure		401,502		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/tmdb/genres [get]
func (s *SyncHandler) FetchGenres(c *fiber.Ctx) error {
	genres, err := s.syncService.FetchGenres(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return response.ResponseOKWithData(c, genres)
}
