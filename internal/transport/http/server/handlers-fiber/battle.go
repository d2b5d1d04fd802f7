package handlers_fiber

import (
	"net/http"

	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostBattleSimulate resolves a battle between two teams and returns the
// round log. The store is never mutated.
func (h *Handler) PostBattleSimulate(c *fiber.Ctx) error {
	var body api.BattleRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	result, err := h.uc.SimulateBattle(c.Context(), body.TeamAId, body.TeamBId)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIBattleResult(result))
}
