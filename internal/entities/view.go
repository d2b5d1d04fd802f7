// Package entities contains core business entities.
package entities

// ViewPreference selects how the teams page renders.
type ViewPreference string

const (
	// ViewTable renders teams in a table.
	ViewTable ViewPreference = "table"
	// ViewCard renders teams as cards.
	ViewCard ViewPreference = "card"
)

// Valid reports whether the preference is a known value.
func (v ViewPreference) Valid() bool {
	return v == ViewTable || v == ViewCard
}
