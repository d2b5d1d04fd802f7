// Package battle implements the turn-based elimination battle between two
// ordered rosters. The engine is pure: it mutates nothing and its outcome is
// fully determined by the rosters and the stat lookup.
package battle

import "context"

// Stats are the combat-relevant stats of a single combatant.
type Stats struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// StatsFunc resolves combatant stats by identity. Lookups may hit remote
// sources; errors abort the simulation.
type StatsFunc func(ctx context.Context, id string) (Stats, error)

// Side names one of the two rosters.
type Side string

const (
	// SideA is the first roster.
	SideA Side = "A"
	// SideB is the second roster.
	SideB Side = "B"
)

// Round records a single resolved round. Loser is the eliminated combatant.
type Round struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// Result is the outcome of a full simulation.
type Result struct {
	Rounds     []Round `json:"rounds"`
	RemainingA int     `json:"remainingA"`
	RemainingB int     `json:"remainingB"`
	Winner     Side    `json:"winner"`
}

// Simulate runs the elimination loop over two ordered rosters. Each round the
// active combatants fight: the faster one acts first (speed ties favor side
// A), a combatant wins outright when its attack exceeds the opponent's
// defense, and when neither does the first actor wins by default. The loser
// is eliminated and its side advances to the next roster entry; the winner
// stays active. The overall winner is A only when it has strictly more
// members remaining, so an equal count resolves to B. Empty rosters resolve
// without any rounds; callers should treat 0 vs 0 as a degenerate case.
func Simulate(ctx context.Context, rosterA, rosterB []string, lookup StatsFunc) (Result, error) {
	rounds := make([]Round, 0)
	i, j := 0, 0

	for i < len(rosterA) && j < len(rosterB) {
		a, b := rosterA[i], rosterB[j]
		sa, err := lookup(ctx, a)
		if err != nil {
			return Result{}, err
		}
		sb, err := lookup(ctx, b)
		if err != nil {
			return Result{}, err
		}

		first, firstStats, second, secondStats := a, sa, b, sb
		firstSide := SideA
		if sa.Speed < sb.Speed {
			first, firstStats, second, secondStats = b, sb, a, sa
			firstSide = SideB
		}

		winner, winnerSide, loser := first, firstSide, second
		switch {
		case firstStats.Attack > secondStats.Defense:
			// first actor breaks through
		case secondStats.Attack > firstStats.Defense:
			winner, loser = second, first
			winnerSide = otherSide(firstSide)
		default:
			// neither breaks through: the faster combatant wins
		}

		rounds = append(rounds, Round{Winner: winner, Loser: loser})

		if winnerSide == SideA {
			j++
		} else {
			i++
		}
	}

	remainingA := len(rosterA) - i
	remainingB := len(rosterB) - j
	winner := SideB
	if remainingA > remainingB {
		winner = SideA
	}
	return Result{
		Rounds:     rounds,
		RemainingA: remainingA,
		RemainingB: remainingB,
		Winner:     winner,
	}, nil
}

func otherSide(s Side) Side {
	if s == SideA {
		return SideB
	}
	return SideA
}
