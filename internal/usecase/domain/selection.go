// Package domain contains application Usecases orchestrating domain logic by selection.
package domain

import (
	"context"
	"fmt"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// Selection returns the creature ids currently checked for bulk actions.
func (u *Usecase) Selection(_ context.Context) []string {
	return u.selection.List()
}

// ToggleSelection flips a creature in and out of the selection.
func (u *Usecase) ToggleSelection(_ context.Context, creatureID string) error {
	if creatureID == "" {
		return fmt.Errorf("%w: creature id is required", entities.ErrInvalidArgument)
	}
	u.selection.Toggle(creatureID)
	return nil
}

// AddSelection checks a creature for bulk action.
func (u *Usecase) AddSelection(_ context.Context, creatureID string) error {
	if creatureID == "" {
		return fmt.Errorf("%w: creature id is required", entities.ErrInvalidArgument)
	}
	u.selection.Add(creatureID)
	return nil
}

// RemoveSelection unchecks a creature.
func (u *Usecase) RemoveSelection(_ context.Context, creatureID string) error {
	if creatureID == "" {
		return fmt.Errorf("%w: creature id is required", entities.ErrInvalidArgument)
	}
	u.selection.Remove(creatureID)
	return nil
}

// ClearSelection drops every checked creature.
func (u *Usecase) ClearSelection(_ context.Context) {
	u.selection.Clear()
}
