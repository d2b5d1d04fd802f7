// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotFound signals missing roster member.
	ErrMemberNotFound = errors.New("member not found")
	// ErrDuplicateMember signals the creature is already on the roster.
	ErrDuplicateMember = errors.New("duplicate member")
	// ErrRosterFull signals the roster already holds MaxMembers creatures.
	ErrRosterFull = errors.New("roster full")
	// ErrCreatureNotFound signals the catalog has no creature with that id.
	ErrCreatureNotFound = errors.New("creature not found")
	// ErrCatalogUnavailable signals the upstream creature catalog failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrPersistence signals a durable-storage write failure. The in-memory
	// state keeps the mutation; callers should prompt a retry.
	ErrPersistence = errors.New("persistence failure")
)
