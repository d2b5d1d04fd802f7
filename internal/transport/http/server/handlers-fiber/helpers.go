package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATION
		msg = err.Error()
	case errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.TEAMNOTFOUND
		msg = "team not found"
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.MEMBERNOTFOUND
		msg = "member not found"
	case errors.Is(err, entities.ErrCreatureNotFound):
		status = http.StatusNotFound
		code = api.CREATURENOTFOUND
		msg = "creature not found"
	case errors.Is(err, entities.ErrDuplicateMember):
		status = http.StatusConflict
		code = api.DUPLICATEMEMBER
		msg = "creature is already on the roster"
	case errors.Is(err, entities.ErrRosterFull):
		status = http.StatusConflict
		code = api.ROSTERFULL
		msg = "roster already holds the maximum number of members"
	case errors.Is(err, entities.ErrPersistence):
		status = http.StatusServiceUnavailable
		code = api.PERSISTENCE
		msg = "saving failed, changes are kept in memory; retry"
	case errors.Is(err, entities.ErrCatalogUnavailable):
		status = http.StatusBadGateway
		code = api.UPSTREAM
		msg = "creature catalog unavailable"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
