// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team collection operations. The collection is kept
// most-recent-first and every mutation is atomic.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	// UpdateTeam applies a patch; a missing id is a silent no-op.
	UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) error
	// DeleteTeam removes a team and prunes it from favorites. Idempotent.
	DeleteTeam(ctx context.Context, id string) error
}

// RosterInterface exposes member-level mutations on a team's roster.
type RosterInterface interface {
	// AddMember places the member on the lowest free slot.
	AddMember(ctx context.Context, teamID string, member entities.Member) (*entities.Team, error)
	// RemoveMember drops a member and compacts remaining slot orders.
	RemoveMember(ctx context.Context, teamID string, memberID int) (*entities.Team, error)
	// ReorderMembers applies a left-to-right arrangement of member ids.
	ReorderMembers(ctx context.Context, teamID string, memberIDs []int) (*entities.Team, error)
	// AssignSlot moves one member to an explicit slot, swapping any occupant.
	AssignSlot(ctx context.Context, teamID string, memberID, slot int) (*entities.Team, error)
}

// DraftInterface manages the single uncommitted team draft.
type DraftInterface interface {
	Draft(ctx context.Context) (*entities.Draft, error)
	SetDraft(ctx context.Context, draft *entities.Draft) error
	ClearDraft(ctx context.Context) error
}

// FavoriteInterface exposes the favorites relation over team ids.
type FavoriteInterface interface {
	Favorites(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, teamID string) error
	RemoveFavorite(ctx context.Context, teamID string) error
}

// PreferenceInterface exposes the persisted view preference.
type PreferenceInterface interface {
	ViewPreference(ctx context.Context) (entities.ViewPreference, error)
	SetViewPreference(ctx context.Context, view entities.ViewPreference) error
}
