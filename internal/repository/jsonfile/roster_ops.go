package jsonfile

import (
	"context"

	"github.com/frankuxui/pokemon-fight/internal/entities"
	"github.com/frankuxui/pokemon-fight/internal/roster"
)

// AddMember puts the member on the team's lowest free slot. The hole-filling
// policy deliberately differs from RemoveMember's compaction: a removal in
// the middle leaves lower indexes free for the next addition.
func (s *Store) AddMember(_ context.Context, teamID string, member entities.Member) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(teamID)
	if i == -1 {
		return nil, entities.ErrTeamNotFound
	}
	team := s.teams[i]
	if team.HasMember(member.ID) {
		return nil, entities.ErrDuplicateMember
	}
	if len(team.Members) >= entities.MaxMembers {
		return nil, entities.ErrRosterFull
	}

	order, ok := roster.NextFreeOrder(team.Members)
	if !ok {
		// every slot index taken while the roster is not full: stale orders,
		// rebuild a contiguous layout first
		team.Members = roster.Compact(team.Members)
		order, _ = roster.NextFreeOrder(team.Members)
	}
	member.Order = &order

	members := append(cloneMembers(team.Members), member)
	return s.applyRoster(i, members)
}

// RemoveMember drops the member and compacts remaining orders to a
// contiguous 0..n-1 sequence in their existing relative order. Removing an
// absent member still compacts, mirroring the add/remove policy asymmetry of
// the original behavior.
func (s *Store) RemoveMember(_ context.Context, teamID string, memberID int) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(teamID)
	if i == -1 {
		return nil, entities.ErrTeamNotFound
	}

	members := make([]entities.Member, 0, len(s.teams[i].Members))
	for _, m := range cloneMembers(s.teams[i].Members) {
		if m.ID != memberID {
			members = append(members, m)
		}
	}
	return s.applyRoster(i, roster.Compact(members))
}

// ReorderMembers applies a left-to-right arrangement of member ids, assigning
// orders by sequence position and appending unmentioned members after.
func (s *Store) ReorderMembers(_ context.Context, teamID string, memberIDs []int) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(teamID)
	if i == -1 {
		return nil, entities.ErrTeamNotFound
	}
	return s.applyRoster(i, roster.Reorder(s.teams[i].Members, memberIDs))
}

// AssignSlot moves one member to an explicit slot, swapping with any
// occupant so orders stay unique.
func (s *Store) AssignSlot(_ context.Context, teamID string, memberID, slot int) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(teamID)
	if i == -1 {
		return nil, entities.ErrTeamNotFound
	}
	members, err := roster.AssignSlot(s.teams[i].Members, memberID, slot)
	if err != nil {
		return nil, err
	}
	return s.applyRoster(i, members)
}

// applyRoster swaps in the new member collection, bumps UpdatedAt and
// persists. Callers hold the mutex.
func (s *Store) applyRoster(i int, members []entities.Member) (*entities.Team, error) {
	s.teams[i] = s.teams[i].ApplyPatch(entities.TeamPatch{Members: &members})
	updated := cloneTeam(s.teams[i])
	if err := s.persistTeams(); err != nil {
		return nil, err
	}
	return &updated, nil
}
