package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTeamSlots returns the team's fixed slot layout.
func (h *Handler) GetTeamSlots(c *fiber.Ctx) error {
	slots, err := h.uc.SlotLayout(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISlots(slots))
}

// PostTeamMember adds a creature to the team's lowest free slot.
func (h *Handler) PostTeamMember(c *fiber.Ctx) error {
	var body api.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	team, err := h.uc.AddMember(c.Context(), c.Params("id"), body.CreatureId)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// PostTeamMembersBulk commits the current selection into the team.
func (h *Handler) PostTeamMembersBulk(c *fiber.Ctx) error {
	team, err := h.uc.BulkAddSelection(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeamMember removes a member and compacts the remaining slot orders.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("memberId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "member id must be numeric"))
	}

	team, err := h.uc.RemoveMember(c.Context(), c.Params("id"), memberID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PutTeamMemberOrder applies a drag-reorder event: the member ids in their
// new left-to-right arrangement. Empty slots must not be listed.
func (h *Handler) PutTeamMemberOrder(c *fiber.Ctx) error {
	var body api.ReorderRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	team, err := h.uc.ReorderMembers(c.Context(), c.Params("id"), body.MemberIds)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PutTeamMemberSlot moves a member to an explicit slot index.
func (h *Handler) PutTeamMemberSlot(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("memberId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "member id must be numeric"))
	}

	var body api.AssignSlotRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	team, err := h.uc.AssignSlot(c.Context(), c.Params("id"), memberID, body.Slot)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}
