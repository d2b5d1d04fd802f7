package jsonfile

import (
	"context"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// ListTeams returns the teams most-recent-first.
func (s *Store) ListTeams(_ context.Context) ([]entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, cloneTeam(t))
	}
	return out, nil
}

// GetTeam fetches one team by id.
func (s *Store) GetTeam(_ context.Context, id string) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil, entities.ErrTeamNotFound
	}
	t := cloneTeam(s.teams[i])
	return &t, nil
}

// CreateTeam prepends the team to the collection.
func (s *Store) CreateTeam(_ context.Context, team entities.Team) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = append([]entities.Team{cloneTeam(team)}, s.teams...)
	s.log.Infow("team created", "team_id", team.ID, "name", team.Name, "members", len(team.Members))

	if err := s.persistTeams(); err != nil {
		return nil, err
	}
	t := cloneTeam(team)
	return &t, nil
}

// UpdateTeam merges a patch into the team. A missing id is a silent no-op so
// fire-and-forget call sites stay simple.
func (s *Store) UpdateTeam(_ context.Context, id string, patch entities.TeamPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil
	}
	s.teams[i] = s.teams[i].ApplyPatch(patch)
	return s.persistTeams()
}

// DeleteTeam removes the team and prunes it from favorites. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteTeam(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil
	}
	s.teams = append(s.teams[:i], s.teams[i+1:]...)
	s.log.Infow("team deleted", "team_id", id)

	err := s.persistTeams()
	if fi := indexOfString(s.favorites, id); fi != -1 {
		s.favorites = append(s.favorites[:fi], s.favorites[fi+1:]...)
		if ferr := s.persistFavorites(); err == nil {
			err = ferr
		}
	}
	return err
}

// Draft returns the current draft, nil when none is set.
func (s *Store) Draft(_ context.Context) (*entities.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, nil
	}
	d := *s.draft
	d.Members = cloneMembers(d.Members)
	return &d, nil
}

// SetDraft replaces the single draft slot.
func (s *Store) SetDraft(_ context.Context, draft *entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if draft == nil {
		s.draft = nil
	} else {
		d := *draft
		d.Members = cloneMembers(d.Members)
		s.draft = &d
	}
	return s.persistTeams()
}

// ClearDraft discards the draft.
func (s *Store) ClearDraft(ctx context.Context) error {
	return s.SetDraft(ctx, nil)
}

// indexOf returns the position of a team id, -1 when absent. Callers hold the
// mutex.
func (s *Store) indexOf(id string) int {
	for i, t := range s.teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func indexOfString(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func cloneMembers(members []entities.Member) []entities.Member {
	if members == nil {
		return nil
	}
	out := make([]entities.Member, len(members))
	for i, m := range members {
		if m.Order != nil {
			o := *m.Order
			m.Order = &o
		}
		m.Types = append([]string(nil), m.Types...)
		out[i] = m
	}
	return out
}

func cloneTeam(t entities.Team) entities.Team {
	t.Members = cloneMembers(t.Members)
	return t
}
