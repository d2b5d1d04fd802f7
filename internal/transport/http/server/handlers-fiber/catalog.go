package handlers_fiber

import (
	"net/http"

	"github.com/frankuxui/pokemon-fight/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetCreatures proxies one page of the creature index.
func (h *Handler) GetCreatures(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 0)

	entries, err := h.uc.Creatures(c.Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICreatureList(entries))
}

// GetCreature returns the validated detail record of one creature.
func (h *Handler) GetCreature(c *fiber.Ctx) error {
	detail, err := h.uc.Creature(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICreature(*detail))
}
