package handlers_fiber

import (
	"net/http"

	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists all teams, most-recent-first.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamList(teams))
}

// PostTeam creates a team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromAPICreateTeam(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// GetTeam returns a team by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PatchTeam merges a partial update into a team. Unknown ids are a silent
// no-op, so the response is 204 either way.
func (h *Handler) PatchTeam(c *fiber.Ctx) error {
	var body api.UpdateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.UpdateTeam(c.Context(), c.Params("id"), mapper.FromAPIUpdateTeam(body)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteTeam removes a team and prunes it from favorites. Idempotent.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.uc.DeleteTeam(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetDraft returns the current draft, 204 when none exists.
func (h *Handler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.uc.Draft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	if draft == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDraft(*draft))
}

// PutDraft replaces the single draft slot.
func (h *Handler) PutDraft(c *fiber.Ctx) error {
	var body api.Draft
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	draft := mapper.FromAPIDraft(body)
	if err := h.uc.SetDraft(c.Context(), &draft); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteDraft discards the draft.
func (h *Handler) DeleteDraft(c *fiber.Ctx) error {
	if err := h.uc.ClearDraft(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
