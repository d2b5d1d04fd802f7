// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/frankuxui/pokemon-fight/internal/api"
	"github.com/frankuxui/pokemon-fight/internal/battle"
	"github.com/frankuxui/pokemon-fight/internal/catalog"
	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// ToAPIMember maps entities.Member to transport model.
func ToAPIMember(m entities.Member) api.Member {
	return api.Member{
		Id:        m.ID,
		Name:      m.Name,
		Order:     m.Order,
		SpriteUrl: m.SpriteURL,
		Types:     m.Types,
	}
}

// FromAPIMember builds an entities.Member from transport DTO.
func FromAPIMember(m api.Member) entities.Member {
	return entities.Member{
		ID:        m.Id,
		Name:      m.Name,
		Order:     m.Order,
		SpriteURL: m.SpriteUrl,
		Types:     m.Types,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	members := make([]api.Member, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, ToAPIMember(m))
	}
	return api.Team{
		Id:          t.ID,
		Name:        t.Name,
		Slogan:      t.Slogan,
		Description: t.Description,
		Avatar:      t.Avatar,
		Members:     members,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAPITeamList maps a slice of teams to transport slice.
func ToAPITeamList(teams []entities.Team) []api.Team {
	out := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToAPITeam(t))
	}
	return out
}

// FromAPICreateTeam builds an entities.TeamInput from transport DTO.
func FromAPICreateTeam(src api.CreateTeamRequest) entities.TeamInput {
	members := make([]entities.Member, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, FromAPIMember(m))
	}
	return entities.TeamInput{
		ID:          src.Id,
		Name:        src.Name,
		Slogan:      src.Slogan,
		Description: src.Description,
		Avatar:      src.Avatar,
		Members:     members,
	}
}

// FromAPIUpdateTeam builds an entities.TeamPatch from transport DTO.
func FromAPIUpdateTeam(src api.UpdateTeamRequest) entities.TeamPatch {
	patch := entities.TeamPatch{
		Name:        src.Name,
		Slogan:      src.Slogan,
		Description: src.Description,
		Avatar:      src.Avatar,
	}
	if src.Members != nil {
		members := make([]entities.Member, 0, len(*src.Members))
		for _, m := range *src.Members {
			members = append(members, FromAPIMember(m))
		}
		patch.Members = &members
	}
	return patch
}

// ToAPIDraft maps entities.Draft to transport model.
func ToAPIDraft(d entities.Draft) api.Draft {
	members := make([]api.Member, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, ToAPIMember(m))
	}
	return api.Draft{
		Id:          d.ID,
		Name:        d.Name,
		Slogan:      d.Slogan,
		Description: d.Description,
		Avatar:      d.Avatar,
		Members:     members,
	}
}

// FromAPIDraft builds an entities.Draft from transport DTO.
func FromAPIDraft(src api.Draft) entities.Draft {
	members := make([]entities.Member, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, FromAPIMember(m))
	}
	return entities.Draft{
		ID:          src.Id,
		Name:        src.Name,
		Slogan:      src.Slogan,
		Description: src.Description,
		Avatar:      src.Avatar,
		Members:     members,
	}
}

// ToAPISlots maps the fixed slot layout to transport model.
func ToAPISlots(slots [entities.MaxMembers]*entities.Member) api.SlotsResponse {
	out := make([]*api.Member, entities.MaxMembers)
	for i, m := range slots {
		if m != nil {
			mm := ToAPIMember(*m)
			out[i] = &mm
		}
	}
	return api.SlotsResponse{Slots: out}
}

// ToAPICreatureList maps catalog page entries to transport slice.
func ToAPICreatureList(entries []catalog.PageEntry) []api.CreatureListEntry {
	out := make([]api.CreatureListEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.CreatureListEntry{
			Id:        e.ID,
			Name:      e.Name,
			DetailUrl: e.DetailURL,
		})
	}
	return out
}

// ToAPICreature maps a catalog detail record to transport model.
func ToAPICreature(d catalog.CreatureDetail) api.Creature {
	return api.Creature{
		Id:        d.ID,
		Name:      d.Name,
		SpriteUrl: d.SpriteURL,
		Types:     d.Types,
		Abilities: d.Abilities,
		Stats: api.CreatureStats{
			Hp:      d.Stats.HP,
			Attack:  d.Stats.Attack,
			Defense: d.Stats.Defense,
			Speed:   d.Stats.Speed,
		},
	}
}

// ToAPIBattleResult maps a battle outcome to transport model.
func ToAPIBattleResult(r battle.Result) api.BattleResponse {
	rounds := make([]api.BattleRound, 0, len(r.Rounds))
	for _, rd := range r.Rounds {
		rounds = append(rounds, api.BattleRound{Winner: rd.Winner, Loser: rd.Loser})
	}
	return api.BattleResponse{
		Rounds:     rounds,
		RemainingA: r.RemainingA,
		RemainingB: r.RemainingB,
		Winner:     string(r.Winner),
	}
}
