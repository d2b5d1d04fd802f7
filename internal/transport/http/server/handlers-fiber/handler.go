// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/frankuxui/pokemon-fight/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes binds every API route on the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/teams", h.GetTeams)
	app.Post("/teams", h.PostTeam)
	app.Get("/teams/:id", h.GetTeam)
	app.Patch("/teams/:id", h.PatchTeam)
	app.Delete("/teams/:id", h.DeleteTeam)

	app.Get("/teams/:id/slots", h.GetTeamSlots)
	app.Post("/teams/:id/members", h.PostTeamMember)
	app.Post("/teams/:id/members/bulk", h.PostTeamMembersBulk)
	app.Delete("/teams/:id/members/:memberId", h.DeleteTeamMember)
	app.Put("/teams/:id/members/order", h.PutTeamMemberOrder)
	app.Put("/teams/:id/members/:memberId/slot", h.PutTeamMemberSlot)

	app.Get("/draft", h.GetDraft)
	app.Put("/draft", h.PutDraft)
	app.Delete("/draft", h.DeleteDraft)

	app.Get("/favorites", h.GetFavorites)
	app.Post("/favorites", h.PostFavorite)
	app.Delete("/favorites/:teamId", h.DeleteFavorite)

	app.Get("/view", h.GetView)
	app.Put("/view", h.PutView)

	app.Get("/selection", h.GetSelection)
	app.Post("/selection/toggle", h.PostSelectionToggle)
	app.Post("/selection", h.PostSelection)
	app.Delete("/selection/:creatureId", h.DeleteSelection)
	app.Delete("/selection", h.DeleteSelectionAll)

	app.Get("/pokemon", h.GetCreatures)
	app.Get("/pokemon/:id", h.GetCreature)

	app.Post("/battles/simulate", h.PostBattleSimulate)
}
