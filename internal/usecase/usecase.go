package usecase

import (
	"context"
	"time"

	"github.com/frankuxui/pokemon-fight/internal/catalog"
	"github.com/frankuxui/pokemon-fight/internal/repository"
	"github.com/frankuxui/pokemon-fight/internal/selection"
	"github.com/frankuxui/pokemon-fight/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	RosterUsecaseInterface
	SelectionUsecaseInterface
	FavoriteUsecaseInterface
	CatalogUsecaseInterface
	BattleUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	cat catalog.Catalog,
	sel *selection.Store,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, cat, sel, timeout)
}
