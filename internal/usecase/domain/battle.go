// Package domain contains application Usecases orchestrating domain logic by battle.
package domain

import (
	"context"
	"fmt"
	"strconv"

	"github.com/frankuxui/pokemon-fight/internal/battle"
	"github.com/frankuxui/pokemon-fight/internal/entities"
	"github.com/frankuxui/pokemon-fight/internal/roster"
)

// SimulateBattle resolves a battle between two teams. Rosters are the teams'
// members in slot order; stats come from the creature catalog. The store is
// never touched, a simulation has no side effects.
func (u *Usecase) SimulateBattle(ctx context.Context, teamAID, teamBID string) (battle.Result, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamAID == "" || teamBID == "" {
		return battle.Result{}, fmt.Errorf("%w: two team ids are required", entities.ErrInvalidArgument)
	}
	if teamAID == teamBID {
		return battle.Result{}, fmt.Errorf("%w: a team cannot battle itself", entities.ErrInvalidArgument)
	}

	teamA, err := u.repo.GetTeam(ctx, teamAID)
	if err != nil {
		return battle.Result{}, err
	}
	teamB, err := u.repo.GetTeam(ctx, teamBID)
	if err != nil {
		return battle.Result{}, err
	}

	result, err := battle.Simulate(ctx, rosterIdentities(teamA.Members), rosterIdentities(teamB.Members), u.lookupStats)
	if err != nil {
		return battle.Result{}, err
	}
	u.log.Infow("battle resolved",
		"team_a", teamA.Name,
		"team_b", teamB.Name,
		"rounds", len(result.Rounds),
		"winner", result.Winner,
	)
	return result, nil
}

// rosterIdentities lists member identities in slot order; unplaced members
// come last in their relative order.
func rosterIdentities(members []entities.Member) []string {
	sorted := roster.Sorted(members)
	ids := make([]string, 0, len(sorted))
	for _, m := range sorted {
		ids = append(ids, strconv.Itoa(m.ID))
	}
	return ids
}

func (u *Usecase) lookupStats(ctx context.Context, id string) (battle.Stats, error) {
	detail, err := u.catalog.Detail(ctx, id)
	if err != nil {
		return battle.Stats{}, err
	}
	return battle.Stats{
		Attack:  detail.Stats.Attack,
		Defense: detail.Stats.Defense,
		Speed:   detail.Stats.Speed,
	}, nil
}
