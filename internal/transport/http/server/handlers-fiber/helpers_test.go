package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorValidationKeepsDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.VALIDATION, body.Error.Code)
	require.Contains(t, body.Error.Message, "name is required")
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorResponseErrorCode
		message string
	}{
		{
			name:    "team_not_found",
			err:     entities.ErrTeamNotFound,
			status:  http.StatusNotFound,
			code:    api.TEAMNOTFOUND,
			message: "team not found",
		},
		{
			name:    "member_not_found",
			err:     entities.ErrMemberNotFound,
			status:  http.StatusNotFound,
			code:    api.MEMBERNOTFOUND,
			message: "member not found",
		},
		{
			name:    "creature_not_found",
			err:     entities.ErrCreatureNotFound,
			status:  http.StatusNotFound,
			code:    api.CREATURENOTFOUND,
			message: "creature not found",
		},
		{
			name:    "duplicate_member",
			err:     entities.ErrDuplicateMember,
			status:  http.StatusConflict,
			code:    api.DUPLICATEMEMBER,
			message: "creature is already on the roster",
		},
		{
			name:    "roster_full",
			err:     entities.ErrRosterFull,
			status:  http.StatusConflict,
			code:    api.ROSTERFULL,
			message: "roster already holds the maximum number of members",
		},
		{
			name:    "persistence",
			err:     fmt.Errorf("%w: write teams.json: disk full", entities.ErrPersistence),
			status:  http.StatusServiceUnavailable,
			code:    api.PERSISTENCE,
			message: "saving failed, changes are kept in memory; retry",
		},
		{
			name:    "catalog_unavailable",
			err:     entities.ErrCatalogUnavailable,
			status:  http.StatusBadGateway,
			code:    api.UPSTREAM,
			message: "creature catalog unavailable",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestWriteErrorUnknownFallsBack(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("boom"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INTERNAL, body.Error.Code)
	require.Equal(t, "boom", body.Error.Message)
}
