package domain

import (
	"context"
	"time"

	"github.com/frankuxui/pokemon-fight/internal/catalog"
	"github.com/frankuxui/pokemon-fight/internal/repository"
	"github.com/frankuxui/pokemon-fight/internal/selection"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	catalog   catalog.Catalog
	selection *selection.Store
	timeout   time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	cat catalog.Catalog,
	sel *selection.Store,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:       ctx,
		log:       log,
		repo:      repo,
		catalog:   cat,
		selection: sel,
		timeout:   timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
