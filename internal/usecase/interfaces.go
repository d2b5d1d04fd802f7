package usecase

import (
	"context"

	"github.com/frankuxui/pokemon-fight/internal/battle"
	"github.com/frankuxui/pokemon-fight/internal/catalog"
	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// TeamUsecaseInterface abstracts team-related operations for delivery layer.
type TeamUsecaseInterface interface {
	Teams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, in entities.TeamInput) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) error
	DeleteTeam(ctx context.Context, id string) error
	Draft(ctx context.Context) (*entities.Draft, error)
	SetDraft(ctx context.Context, draft *entities.Draft) error
	ClearDraft(ctx context.Context) error
}

// RosterUsecaseInterface abstracts member-level roster operations.
type RosterUsecaseInterface interface {
	AddMember(ctx context.Context, teamID, creatureID string) (*entities.Team, error)
	BulkAddSelection(ctx context.Context, teamID string) (*entities.Team, error)
	RemoveMember(ctx context.Context, teamID string, memberID int) (*entities.Team, error)
	ReorderMembers(ctx context.Context, teamID string, memberIDs []int) (*entities.Team, error)
	AssignSlot(ctx context.Context, teamID string, memberID, slot int) (*entities.Team, error)
	SlotLayout(ctx context.Context, teamID string) ([entities.MaxMembers]*entities.Member, error)
}

// SelectionUsecaseInterface abstracts the bulk-add selection set.
type SelectionUsecaseInterface interface {
	Selection(ctx context.Context) []string
	ToggleSelection(ctx context.Context, creatureID string) error
	AddSelection(ctx context.Context, creatureID string) error
	RemoveSelection(ctx context.Context, creatureID string) error
	ClearSelection(ctx context.Context)
}

// FavoriteUsecaseInterface abstracts favorites and view preference.
type FavoriteUsecaseInterface interface {
	Favorites(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, teamID string) error
	RemoveFavorite(ctx context.Context, teamID string) error
	ViewPreference(ctx context.Context) (entities.ViewPreference, error)
	SetViewPreference(ctx context.Context, view entities.ViewPreference) error
}

// CatalogUsecaseInterface abstracts paged creature catalog reads.
type CatalogUsecaseInterface interface {
	Creatures(ctx context.Context, offset, limit int) ([]catalog.PageEntry, error)
	Creature(ctx context.Context, id string) (*catalog.CreatureDetail, error)
}

// BattleUsecaseInterface abstracts battle simulation.
type BattleUsecaseInterface interface {
	SimulateBattle(ctx context.Context, teamAID, teamBID string) (battle.Result, error)
}
