// Package api declares the transport DTOs and error codes of the HTTP
// surface. It plays the role of a generated API package: handlers and the
// mapper speak these types, never the domain entities directly.
package api

import "time"

// ErrorResponseErrorCode is a machine-readable error discriminator.
type ErrorResponseErrorCode string

const (
	// VALIDATION marks malformed or missing input.
	VALIDATION ErrorResponseErrorCode = "VALIDATION"
	// TEAMNOTFOUND marks a missing team id.
	TEAMNOTFOUND ErrorResponseErrorCode = "TEAM_NOT_FOUND"
	// MEMBERNOTFOUND marks a missing roster member.
	MEMBERNOTFOUND ErrorResponseErrorCode = "MEMBER_NOT_FOUND"
	// CREATURENOTFOUND marks a creature id unknown to the catalog.
	CREATURENOTFOUND ErrorResponseErrorCode = "CREATURE_NOT_FOUND"
	// DUPLICATEMEMBER marks an add of an already-rostered creature.
	DUPLICATEMEMBER ErrorResponseErrorCode = "DUPLICATE_MEMBER"
	// ROSTERFULL marks an add to a full roster.
	ROSTERFULL ErrorResponseErrorCode = "ROSTER_FULL"
	// PERSISTENCE marks a retryable local-storage write failure.
	PERSISTENCE ErrorResponseErrorCode = "PERSISTENCE"
	// UPSTREAM marks a creature catalog failure.
	UPSTREAM ErrorResponseErrorCode = "UPSTREAM"
	// INTERNAL marks any other failure.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Member is the transport shape of a roster member.
type Member struct {
	Id        int      `json:"id"`
	Name      string   `json:"name"`
	Order     *int     `json:"order"`
	SpriteUrl string   `json:"spriteUrl"`
	Types     []string `json:"types"`
}

// Team is the transport shape of a team.
type Team struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Slogan      string    `json:"slogan"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Draft is the transport shape of the uncommitted team draft.
type Draft struct {
	Id          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Slogan      string   `json:"slogan,omitempty"`
	Description string   `json:"description,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	Members     []Member `json:"members,omitempty"`
}

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Id          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Slogan      string   `json:"slogan"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Members     []Member `json:"members"`
}

// UpdateTeamRequest is the body of PATCH /teams/:id. Absent fields are left
// untouched.
type UpdateTeamRequest struct {
	Name        *string   `json:"name,omitempty"`
	Slogan      *string   `json:"slogan,omitempty"`
	Description *string   `json:"description,omitempty"`
	Avatar      *string   `json:"avatar,omitempty"`
	Members     *[]Member `json:"members,omitempty"`
}

// AddMemberRequest is the body of POST /teams/:id/members.
type AddMemberRequest struct {
	CreatureId string `json:"creatureId"`
}

// ReorderRequest is the body of PUT /teams/:id/members/order: member ids in
// their new left-to-right arrangement.
type ReorderRequest struct {
	MemberIds []int `json:"memberIds"`
}

// AssignSlotRequest is the body of PUT /teams/:id/members/:memberId/slot.
type AssignSlotRequest struct {
	Slot int `json:"slot"`
}

// SlotsResponse is the fixed slot layout of a team.
type SlotsResponse struct {
	Slots []*Member `json:"slots"`
}

// SelectionRequest names a creature for selection operations.
type SelectionRequest struct {
	CreatureId string `json:"creatureId"`
}

// SelectionResponse lists the currently selected creature ids.
type SelectionResponse struct {
	CreatureIds []string `json:"creatureIds"`
}

// FavoriteRequest names a team for favorites operations.
type FavoriteRequest struct {
	TeamId string `json:"teamId"`
}

// FavoritesResponse lists the favorited team ids.
type FavoritesResponse struct {
	TeamIds []string `json:"teamIds"`
}

// ViewPreference is the body and response of the view preference endpoints.
type ViewPreference struct {
	View string `json:"view"`
}

// CreatureListEntry is one row of the paged creature index.
type CreatureListEntry struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	DetailUrl string `json:"detailUrl"`
}

// CreatureStats carries creature base stats.
type CreatureStats struct {
	Hp      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Creature is the validated detail record of a creature.
type Creature struct {
	Id        int           `json:"id"`
	Name      string        `json:"name"`
	SpriteUrl string        `json:"spriteUrl"`
	Types     []string      `json:"types"`
	Abilities []string      `json:"abilities"`
	Stats     CreatureStats `json:"stats"`
}

// BattleRequest is the body of POST /battles/simulate.
type BattleRequest struct {
	TeamAId string `json:"teamAId"`
	TeamBId string `json:"teamBId"`
}

// BattleRound records one resolved battle round.
type BattleRound struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// BattleResponse is the outcome of a battle simulation.
type BattleResponse struct {
	Rounds     []BattleRound `json:"rounds"`
	RemainingA int           `json:"remainingA"`
	RemainingB int           `json:"remainingB"`
	Winner     string        `json:"winner"`
}
