package handlers_fiber

import (
	"net/http"

	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetFavorites lists the favorited team ids.
func (h *Handler) GetFavorites(c *fiber.Ctx) error {
	ids, err := h.uc.Favorites(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.FavoritesResponse{TeamIds: ids})
}

// PostFavorite stars a team.
func (h *Handler) PostFavorite(c *fiber.Ctx) error {
	var body api.FavoriteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.AddFavorite(c.Context(), body.TeamId); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteFavorite unstars a team. Idempotent.
func (h *Handler) DeleteFavorite(c *fiber.Ctx) error {
	if err := h.uc.RemoveFavorite(c.Context(), c.Params("teamId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetView returns the persisted teams-page view preference.
func (h *Handler) GetView(c *fiber.Ctx) error {
	view, err := h.uc.ViewPreference(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ViewPreference{View: string(view)})
}

// PutView persists the teams-page view preference.
func (h *Handler) PutView(c *fiber.Ctx) error {
	var body api.ViewPreference
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.SetViewPreference(c.Context(), entities.ViewPreference(body.View)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
