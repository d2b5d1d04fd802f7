// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxMembers is the roster capacity of a team.
	MaxMembers = 6
	// MaxDescriptionLen limits the team description length.
	MaxDescriptionLen = 200
)

// Member is a roster entry referencing a creature. Order is the 0-based slot
// index; nil means the member has not been placed in a slot yet. Within one
// team no two members share an ID and no two members share a non-nil Order.
type Member struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Order     *int     `json:"order"`
	SpriteURL string   `json:"spriteUrl"`
	Types     []string `json:"types"`
}

// Team aggregates up to MaxMembers members under team metadata. CreatedAt is
// immutable after creation; UpdatedAt is bumped on every mutation.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slogan      string    `json:"slogan"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeamInput carries the fields for team creation. ID is optional; one is
// generated when absent.
type TeamInput struct {
	ID          string
	Name        string
	Slogan      string
	Description string
	Avatar      string
	Members     []Member
}

// TeamPatch is a partial team update. Nil fields are left untouched.
type TeamPatch struct {
	Name        *string
	Slogan      *string
	Description *string
	Avatar      *string
	Members     *[]Member
}

// Draft is an uncommitted partial team used by creation forms. It is not
// subject to roster invariants and at most one draft exists process-wide.
type Draft struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Slogan      string   `json:"slogan,omitempty"`
	Description string   `json:"description,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	Members     []Member `json:"members,omitempty"`
}

// NewTeam validates input and constructs a team with generated id and
// creation timestamps. The input is never mutated.
func NewTeam(in TeamInput) (Team, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Team{}, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if len(in.Description) > MaxDescriptionLen {
		return Team{}, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidArgument, MaxDescriptionLen)
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC()
	return Team{
		ID:          id,
		Name:        in.Name,
		Slogan:      in.Slogan,
		Description: in.Description,
		Avatar:      in.Avatar,
		Members:     clampMembers(in.Members),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyPatch returns a copy of the team with the patch merged in. ID and
// CreatedAt are preserved regardless of patch content and UpdatedAt is bumped.
func (t Team) ApplyPatch(p TeamPatch) Team {
	next := t
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Slogan != nil {
		next.Slogan = *p.Slogan
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Avatar != nil {
		next.Avatar = *p.Avatar
	}
	if p.Members != nil {
		next.Members = clampMembers(*p.Members)
	} else {
		next.Members = clampMembers(t.Members)
	}
	next.UpdatedAt = time.Now().UTC()
	return next
}

// HasMember reports whether the roster already holds the creature.
func (t Team) HasMember(creatureID int) bool {
	for _, m := range t.Members {
		if m.ID == creatureID {
			return true
		}
	}
	return false
}

func clampMembers(members []Member) []Member {
	n := len(members)
	if n > MaxMembers {
		n = MaxMembers
	}
	out := make([]Member, n)
	copy(out, members[:n])
	return out
}
