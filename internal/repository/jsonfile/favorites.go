package jsonfile

import (
	"context"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// Favorites returns the favorited team ids, most-recent-first.
func (s *Store) Favorites(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.favorites...), nil
}

// AddFavorite marks a team as favorite. The team must exist; marking an
// already-favorite team is a no-op.
func (s *Store) AddFavorite(_ context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(teamID) == -1 {
		return entities.ErrTeamNotFound
	}
	if indexOfString(s.favorites, teamID) != -1 {
		return nil
	}
	s.favorites = append([]string{teamID}, s.favorites...)
	return s.persistFavorites()
}

// RemoveFavorite unmarks a team. Removing an absent id is a no-op.
func (s *Store) RemoveFavorite(_ context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfString(s.favorites, teamID)
	if i == -1 {
		return nil
	}
	s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
	return s.persistFavorites()
}

// ViewPreference returns the persisted view preference.
func (s *Store) ViewPreference(_ context.Context) (entities.ViewPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, nil
}

// SetViewPreference persists a new view preference.
func (s *Store) SetViewPreference(_ context.Context, view entities.ViewPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !view.Valid() {
		return entities.ErrInvalidArgument
	}
	s.view = view
	return s.persistView()
}
