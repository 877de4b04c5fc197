package handler

import (
	"errors"
	"movie_catalog/pkg/response"
	"movie_catalog/pkg/servererror"

	"github.com/gofiber/fiber/v2"
)

// errorResponse is the single mapping step from the internal fault taxonomy to
// the client fault shape. Not-found keeps its own status, feed outages map to
// bad-gateway since the fault is not the caller's, every other tagged kind
// collapses into bad-request.
func errorResponse(c *fiber.Ctx, err error) error {
	var e *servererror.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case servererror.KindNotFound:
			return response.ResponseError(c, e.Message, fiber.StatusNotFound)
		case servererror.KindFeedUnavailable:
			return response.ResponseError(c, e.Error(), fiber.StatusBadGateway)
		default:
			return response.ResponseError(c, e.Error(), fiber.StatusBadRequest)
		}
	}
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}
