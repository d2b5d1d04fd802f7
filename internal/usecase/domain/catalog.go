// Package domain contains application Usecases orchestrating domain logic by catalog.
package domain

import (
	"context"
	"fmt"

	"github.com/frankuxui/pokemon-fight/internal/catalog"
	"github.com/frankuxui/pokemon-fight/internal/entities"
)

const defaultPageLimit = 20

// Creatures returns one page of the creature index.
func (u *Usecase) Creatures(ctx context.Context, offset, limit int) ([]catalog.PageEntry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", entities.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return u.catalog.List(ctx, offset, limit)
}

// Creature returns the validated detail record of a single creature.
func (u *Usecase) Creature(ctx context.Context, id string) (*catalog.CreatureDetail, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: creature id is required", entities.ErrInvalidArgument)
	}
	return u.catalog.Detail(ctx, id)
}
