// Package domain contains application Usecases orchestrating domain logic by favorites.
package domain

import (
	"context"
	"fmt"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// Favorites returns the favorited team ids.
func (u *Usecase) Favorites(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Favorites(ctx)
}

// AddFavorite stars an existing team.
func (u *Usecase) AddFavorite(ctx context.Context, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.AddFavorite(ctx, teamID)
}

// RemoveFavorite unstars a team. Unknown ids are a no-op.
func (u *Usecase) RemoveFavorite(ctx context.Context, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveFavorite(ctx, teamID)
}

// ViewPreference returns the persisted teams-page view preference.
func (u *Usecase) ViewPreference(ctx context.Context) (entities.ViewPreference, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ViewPreference(ctx)
}

// SetViewPreference persists the teams-page view preference.
func (u *Usecase) SetViewPreference(ctx context.Context, view entities.ViewPreference) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !view.Valid() {
		return fmt.Errorf("%w: view must be %q or %q", entities.ErrInvalidArgument, entities.ViewTable, entities.ViewCard)
	}
	return u.repo.SetViewPreference(ctx, view)
}
