package handlers_fiber

import (
	"net/http"

	"github.com/frankuxui/pokemon-fight/internal/api"

	"github.com/gofiber/fiber/v2"
)

// GetSelection lists the creatures currently checked for bulk action.
func (h *Handler) GetSelection(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.SelectionResponse{CreatureIds: h.uc.Selection(c.Context())})
}

// PostSelectionToggle flips a creature in and out of the selection.
func (h *Handler) PostSelectionToggle(c *fiber.Ctx) error {
	var body api.SelectionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.ToggleSelection(c.Context(), body.CreatureId); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.SelectionResponse{CreatureIds: h.uc.Selection(c.Context())})
}

// PostSelection checks a creature for bulk action.
func (h *Handler) PostSelection(c *fiber.Ctx) error {
	var body api.SelectionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.AddSelection(c.Context(), body.CreatureId); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteSelection unchecks a creature.
func (h *Handler) DeleteSelection(c *fiber.Ctx) error {
	if err := h.uc.RemoveSelection(c.Context(), c.Params("creatureId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteSelectionAll empties the selection.
func (h *Handler) DeleteSelectionAll(c *fiber.Ctx) error {
	h.uc.ClearSelection(c.Context())
	return c.SendStatus(http.StatusNoContent)
}
