// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"github.com/frankuxui/pokemon-fight/config"
	"github.com/frankuxui/pokemon-fight/internal/repository/jsonfile"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	TeamInterface
	RosterInterface
	DraftInterface
	FavoriteInterface
	PreferenceInterface
}

// New constructs repository backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "jsonfile":
		return jsonfile.New(log, cfg.Storage.Dir), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
