// Package domain contains application Usecases orchestrating domain logic by roster.
package domain

import (
	"context"
	"fmt"

	"github.com/frankuxui/pokemon-fight/internal/entities"
	"github.com/frankuxui/pokemon-fight/internal/roster"
)

// AddMember fetches the creature from the catalog and places it on the
// team's lowest free slot.
func (u *Usecase) AddMember(ctx context.Context, teamID, creatureID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || creatureID == "" {
		return nil, fmt.Errorf("%w: team id and creature id are required", entities.ErrInvalidArgument)
	}

	detail, err := u.catalog.Detail(ctx, creatureID)
	if err != nil {
		return nil, err
	}

	team, err := u.repo.AddMember(ctx, teamID, entities.Member{
		ID:        detail.ID,
		Name:      detail.Name,
		SpriteURL: detail.SpriteURL,
		Types:     detail.Types,
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("member added", "team_id", teamID, "creature", detail.Name)
	return team, nil
}

// BulkAddSelection commits the current selection into a team. Every selected
// creature is added in selection order; the selection is cleared only when
// all additions succeed, so a failed commit can be retried.
func (u *Usecase) BulkAddSelection(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}

	ids := u.selection.List()
	if len(ids) == 0 {
		return u.repo.GetTeam(ctx, teamID)
	}

	var team *entities.Team
	for _, id := range ids {
		var err error
		if team, err = u.AddMember(ctx, teamID, id); err != nil {
			return nil, fmt.Errorf("add selected creature %s: %w", id, err)
		}
	}

	u.selection.Clear()
	u.log.Infow("selection committed", "team_id", teamID, "added", len(ids))
	return team, nil
}

// RemoveMember drops a member from the roster, compacting slot orders.
func (u *Usecase) RemoveMember(ctx context.Context, teamID string, memberID int) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveMember(ctx, teamID, memberID)
}

// ReorderMembers applies a drag-reorder event: ids in their new left-to-right
// arrangement.
func (u *Usecase) ReorderMembers(ctx context.Context, teamID string, memberIDs []int) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ReorderMembers(ctx, teamID, memberIDs)
}

// AssignSlot moves a member to an explicit slot.
func (u *Usecase) AssignSlot(ctx context.Context, teamID string, memberID, slot int) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.AssignSlot(ctx, teamID, memberID, slot)
}

// SlotLayout returns the team's fixed slot layout: slot i holds the member
// whose order is i, or nil when empty.
func (u *Usecase) SlotLayout(ctx context.Context, teamID string) ([entities.MaxMembers]*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var empty [entities.MaxMembers]*entities.Member
	if teamID == "" {
		return empty, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return empty, err
	}
	return roster.Layout(team.Members), nil
}
