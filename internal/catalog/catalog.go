// Package catalog adapts the remote creature data source (the PokeAPI). The
// rest of the application depends only on the Catalog interface and the
// validated shapes below, never on raw upstream payloads.
package catalog

import "context"

// PageEntry is one row of a paged catalog listing.
type PageEntry struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DetailURL string `json:"detailUrl"`
}

// StatBlock carries the base stats of a creature.
type StatBlock struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// CreatureDetail is the validated detail record of a single creature.
type CreatureDetail struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	SpriteURL string    `json:"sprite"`
	Types     []string  `json:"types"`
	Abilities []string  `json:"abilities"`
	Stats     StatBlock `json:"stats"`
}

// Catalog is the cursor-paged creature data source contract.
type Catalog interface {
	List(ctx context.Context, offset, limit int) ([]PageEntry, error)
	Detail(ctx context.Context, id string) (*CreatureDetail, error)
}
