package battle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func statsTable(table map[string]Stats) StatsFunc {
	return func(_ context.Context, id string) (Stats, error) {
		s, ok := table[id]
		if !ok {
			return Stats{}, errors.New("unknown combatant: " + id)
		}
		return s, nil
	}
}

func TestSimulateFasterWinsByDefault(t *testing.T) {
	lookup := statsTable(map[string]Stats{
		"fast": {Attack: 50, Defense: 50, Speed: 100},
		"slow": {Attack: 40, Defense: 60, Speed: 10},
	})

	res, err := Simulate(context.Background(), []string{"fast"}, []string{"slow"}, lookup)
	require.NoError(t, err)
	require.Equal(t, []Round{{Winner: "fast", Loser: "slow"}}, res.Rounds)
	require.Equal(t, 1, res.RemainingA)
	require.Equal(t, 0, res.RemainingB)
	require.Equal(t, SideA, res.Winner)
}

func TestSimulateAttackBeatsDefense(t *testing.T) {
	lookup := statsTable(map[string]Stats{
		"tank":    {Attack: 10, Defense: 90, Speed: 90},
		"striker": {Attack: 95, Defense: 20, Speed: 10},
	})

	// tank acts first but cannot break through; striker's attack exceeds
	// tank's defense and wins as second actor
	res, err := Simulate(context.Background(), []string{"tank"}, []string{"striker"}, lookup)
	require.NoError(t, err)
	require.Equal(t, []Round{{Winner: "striker", Loser: "tank"}}, res.Rounds)
	require.Equal(t, SideB, res.Winner)
}

func TestSimulateSpeedTieFavorsSideA(t *testing.T) {
	lookup := statsTable(map[string]Stats{
		"a": {Attack: 10, Defense: 50, Speed: 42},
		"b": {Attack: 10, Defense: 50, Speed: 42},
	})

	res, err := Simulate(context.Background(), []string{"a"}, []string{"b"}, lookup)
	require.NoError(t, err)
	require.Equal(t, []Round{{Winner: "a", Loser: "b"}}, res.Rounds)
	require.Equal(t, SideA, res.Winner)
}

func TestSimulateWinnerStaysActive(t *testing.T) {
	lookup := statsTable(map[string]Stats{
		"champ": {Attack: 100, Defense: 100, Speed: 100},
		"b1":    {Attack: 10, Defense: 10, Speed: 10},
		"b2":    {Attack: 10, Defense: 10, Speed: 10},
		"b3":    {Attack: 10, Defense: 10, Speed: 10},
	})

	res, err := Simulate(context.Background(), []string{"champ"}, []string{"b1", "b2", "b3"}, lookup)
	require.NoError(t, err)
	require.Equal(t, []Round{
		{Winner: "champ", Loser: "b1"},
		{Winner: "champ", Loser: "b2"},
		{Winner: "champ", Loser: "b3"},
	}, res.Rounds)
	require.Equal(t, 1, res.RemainingA)
	require.Equal(t, 0, res.RemainingB)
	require.Equal(t, SideA, res.Winner)
}

func TestSimulateEmptyRosters(t *testing.T) {
	lookup := statsTable(nil)

	tests := []struct {
		name       string
		rosterA    []string
		rosterB    []string
		remainingA int
		remainingB int
		winner     Side
	}{
		{name: "both empty ties to B", winner: SideB},
		{
			name:       "empty A loses",
			rosterB:    []string{"b"},
			remainingB: 1,
			winner:     SideB,
		},
		{
			name:       "empty B loses",
			rosterA:    []string{"a"},
			remainingA: 1,
			winner:     SideA,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := Simulate(context.Background(), tt.rosterA, tt.rosterB, lookup)
			require.NoError(t, err)
			require.Empty(t, res.Rounds)
			require.NotNil(t, res.Rounds)
			require.Equal(t, tt.remainingA, res.RemainingA)
			require.Equal(t, tt.remainingB, res.RemainingB)
			require.Equal(t, tt.winner, res.Winner)
		})
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	lookup := statsTable(map[string]Stats{
		"a1": {Attack: 55, Defense: 40, Speed: 90},
		"a2": {Attack: 35, Defense: 65, Speed: 20},
		"b1": {Attack: 60, Defense: 50, Speed: 80},
		"b2": {Attack: 45, Defense: 45, Speed: 45},
	})
	rosterA := []string{"a1", "a2"}
	rosterB := []string{"b1", "b2"}

	first, err := Simulate(context.Background(), rosterA, rosterB, lookup)
	require.NoError(t, err)
	second, err := Simulate(context.Background(), rosterA, rosterB, lookup)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSimulatePropagatesLookupErrors(t *testing.T) {
	lookupErr := errors.New("stats source down")
	lookup := func(_ context.Context, _ string) (Stats, error) {
		return Stats{}, lookupErr
	}

	_, err := Simulate(context.Background(), []string{"a"}, []string{"b"}, lookup)
	require.ErrorIs(t, err, lookupErr)
}
