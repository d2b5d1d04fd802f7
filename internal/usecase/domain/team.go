// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// Teams returns every team, most-recent-first.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTeams(ctx)
}

// Team returns a team by id.
func (u *Usecase) Team(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, id)
}

// CreateTeam validates input, stamps id and timestamps and stores the team.
func (u *Usecase) CreateTeam(ctx context.Context, in entities.TeamInput) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := entities.NewTeam(in)
	if err != nil {
		u.log.Errorw("failed to create team", "error", err)
		return nil, err
	}
	return u.repo.CreateTeam(ctx, team)
}

// UpdateTeam merges a patch into a team. An unknown id is a silent no-op.
func (u *Usecase) UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTeam(ctx, id, patch)
}

// DeleteTeam removes a team, cascading into the favorites relation. Unknown
// ids are a no-op.
func (u *Usecase) DeleteTeam(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTeam(ctx, id)
}

// Draft returns the uncommitted team draft, nil when none exists.
func (u *Usecase) Draft(ctx context.Context) (*entities.Draft, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Draft(ctx)
}

// SetDraft stores the single draft slot.
func (u *Usecase) SetDraft(ctx context.Context, draft *entities.Draft) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.SetDraft(ctx, draft)
}

// ClearDraft discards the draft, e.g. on form cancel or successful commit.
func (u *Usecase) ClearDraft(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ClearDraft(ctx)
}
