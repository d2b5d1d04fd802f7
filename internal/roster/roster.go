// Package roster contains the pure slot reconciliation algorithms mapping a
// team's member collection onto a fixed layout of ordered slots.
package roster

import (
	"fmt"
	"sort"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// Sorted returns the members ordered by slot index ascending. Members without
// a slot come last, keeping their relative order. The input is not mutated.
func Sorted(members []entities.Member) []entities.Member {
	out := make([]entities.Member, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].Order, out[j].Order
		switch {
		case oi == nil:
			return false
		case oj == nil:
			return true
		default:
			return *oi < *oj
		}
	})
	return out
}

// Layout maps members onto MaxMembers visual slots: slot i holds the member
// whose Order is i, or nil when empty. The result depends only on the member
// collection; when two members carry the same stale Order the lower slot goes
// to the first of them in slot-sorted order and the other stays unplaced.
func Layout(members []entities.Member) [entities.MaxMembers]*entities.Member {
	var slots [entities.MaxMembers]*entities.Member
	for _, m := range Sorted(members) {
		if m.Order == nil {
			continue
		}
		i := *m.Order
		if i < 0 || i >= entities.MaxMembers || slots[i] != nil {
			continue
		}
		m := m
		slots[i] = &m
	}
	return slots
}

// NextFreeOrder returns the lowest unused slot index. It fills holes left by
// removals rather than appending. The second result is false when every slot
// is taken.
func NextFreeOrder(members []entities.Member) (int, bool) {
	used := make(map[int]bool, len(members))
	for _, m := range members {
		if m.Order != nil {
			used[*m.Order] = true
		}
	}
	for i := 0; i < entities.MaxMembers; i++ {
		if !used[i] {
			return i, true
		}
	}
	return 0, false
}

// Compact reassigns orders to a contiguous 0..n-1 sequence, preserving the
// members' existing relative order. Members without a slot end up after the
// placed ones.
func Compact(members []entities.Member) []entities.Member {
	out := Sorted(members)
	for i := range out {
		i := i
		out[i].Order = &i
	}
	return out
}

// Reorder applies a reorder event: ids lists member identities left to right
// in their new arrangement. Listed members take their sequence position as
// order, discarding any stale value. Members not listed are appended after,
// keeping their prior relative order. Unknown and repeated ids are ignored.
func Reorder(members []entities.Member, ids []int) []entities.Member {
	byID := make(map[int]entities.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	out := make([]entities.Member, 0, len(members))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		pos := len(out)
		m.Order = &pos
		out = append(out, m)
	}

	for _, m := range Sorted(members) {
		if seen[m.ID] {
			continue
		}
		pos := len(out)
		m.Order = &pos
		out = append(out, m)
	}
	return out
}

// AssignSlot moves a member to an explicit slot index. When the slot is held
// by another member the two swap positions, so orders stay unique.
func AssignSlot(members []entities.Member, memberID, slot int) ([]entities.Member, error) {
	if slot < 0 || slot >= entities.MaxMembers {
		return nil, fmt.Errorf("%w: slot %d out of range", entities.ErrInvalidArgument, slot)
	}

	out := make([]entities.Member, len(members))
	copy(out, members)

	target := -1
	occupant := -1
	for i, m := range out {
		if m.ID == memberID {
			target = i
		} else if m.Order != nil && *m.Order == slot {
			occupant = i
		}
	}
	if target == -1 {
		return nil, entities.ErrMemberNotFound
	}

	prev := out[target].Order
	s := slot
	out[target].Order = &s
	if occupant != -1 {
		out[occupant].Order = prev
	}
	return out, nil
}
