package domain

import (
	"context"
	"testing"
	"time"

	"github.com/frankuxui/pokemon-fight/internal/battle"
	"github.com/frankuxui/pokemon-fight/internal/catalog"
	"github.com/frankuxui/pokemon-fight/internal/entities"
	"github.com/frankuxui/pokemon-fight/internal/repository"
	"github.com/frankuxui/pokemon-fight/internal/selection"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteTeam(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) AddMember(ctx context.Context, teamID string, member entities.Member) (*entities.Team, error) {
	args := m.Called(ctx, teamID, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) RemoveMember(ctx context.Context, teamID string, memberID int) (*entities.Team, error) {
	args := m.Called(ctx, teamID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ReorderMembers(ctx context.Context, teamID string, memberIDs []int) (*entities.Team, error) {
	args := m.Called(ctx, teamID, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) AssignSlot(ctx context.Context, teamID string, memberID, slot int) (*entities.Team, error) {
	args := m.Called(ctx, teamID, memberID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) Draft(ctx context.Context) (*entities.Draft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Draft), args.Error(1)
}

func (m *repoMock) SetDraft(ctx context.Context, draft *entities.Draft) error {
	return m.Called(ctx, draft).Error(0)
}

func (m *repoMock) ClearDraft(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *repoMock) Favorites(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *repoMock) AddFavorite(ctx context.Context, teamID string) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *repoMock) RemoveFavorite(ctx context.Context, teamID string) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *repoMock) ViewPreference(ctx context.Context) (entities.ViewPreference, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.ViewPreference), args.Error(1)
}

func (m *repoMock) SetViewPreference(ctx context.Context, view entities.ViewPreference) error {
	return m.Called(ctx, view).Error(0)
}

type catalogMock struct{ mock.Mock }

var _ catalog.Catalog = (*catalogMock)(nil)

func (m *catalogMock) List(ctx context.Context, offset, limit int) ([]catalog.PageEntry, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.PageEntry), args.Error(1)
}

func (m *catalogMock) Detail(ctx context.Context, id string) (*catalog.CreatureDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CreatureDetail), args.Error(1)
}

func newTestUsecase() (*Usecase, *repoMock, *catalogMock, *selection.Store) {
	repo := &repoMock{}
	cat := &catalogMock{}
	sel := selection.New()
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, cat, sel, time.Second)
	return uc, repo, cat, sel
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()

	_, err := uc.CreateTeam(context.Background(), entities.TeamInput{Name: "   "})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTeamDelegates(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()

	expected := &entities.Team{ID: "t1", Name: "kanto"}
	repo.On("CreateTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.Name == "kanto" && team.ID != ""
	})).Return(expected, nil)

	team, err := uc.CreateTeam(context.Background(), entities.TeamInput{Name: "kanto"})
	require.NoError(t, err)
	require.Equal(t, expected, team)
	repo.AssertExpectations(t)
}

func TestUsecase_TeamGetValidation(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	_, err := uc.Team(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_AddMemberFetchesCreature(t *testing.T) {
	uc, repo, cat, _ := newTestUsecase()

	cat.On("Detail", mock.Anything, "25").Return(&catalog.CreatureDetail{
		ID:        25,
		Name:      "pikachu",
		SpriteURL: "https://img.example/25.png",
		Types:     []string{"electric"},
	}, nil)
	expected := &entities.Team{ID: "t1", Name: "kanto"}
	repo.On("AddMember", mock.Anything, "t1", mock.MatchedBy(func(m entities.Member) bool {
		return m.ID == 25 && m.Name == "pikachu" && m.Order == nil
	})).Return(expected, nil)

	team, err := uc.AddMember(context.Background(), "t1", "25")
	require.NoError(t, err)
	require.Equal(t, expected, team)
	repo.AssertExpectations(t)
	cat.AssertExpectations(t)
}

func TestUsecase_AddMemberUnknownCreature(t *testing.T) {
	uc, repo, cat, _ := newTestUsecase()

	cat.On("Detail", mock.Anything, "9999").Return(nil, entities.ErrCreatureNotFound)

	_, err := uc.AddMember(context.Background(), "t1", "9999")
	require.ErrorIs(t, err, entities.ErrCreatureNotFound)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_BulkAddSelectionEmpty(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()

	expected := &entities.Team{ID: "t1"}
	repo.On("GetTeam", mock.Anything, "t1").Return(expected, nil)

	team, err := uc.BulkAddSelection(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, expected, team)
}

func TestUsecase_BulkAddSelectionClearsOnSuccess(t *testing.T) {
	uc, repo, cat, sel := newTestUsecase()
	sel.Add("1")
	sel.Add("2")

	for _, id := range []int{1, 2} {
		cat.On("Detail", mock.Anything, mock.Anything).Return(&catalog.CreatureDetail{ID: id}, nil).Once()
	}
	repo.On("AddMember", mock.Anything, "t1", mock.Anything).Return(&entities.Team{ID: "t1"}, nil).Twice()

	_, err := uc.BulkAddSelection(context.Background(), "t1")
	require.NoError(t, err)
	require.Empty(t, sel.List())
	repo.AssertExpectations(t)
}

func TestUsecase_BulkAddSelectionKeepsSelectionOnFailure(t *testing.T) {
	uc, repo, cat, sel := newTestUsecase()
	sel.Add("1")
	sel.Add("2")

	cat.On("Detail", mock.Anything, "1").Return(&catalog.CreatureDetail{ID: 1}, nil)
	cat.On("Detail", mock.Anything, "2").Return(&catalog.CreatureDetail{ID: 2}, nil)
	repo.On("AddMember", mock.Anything, "t1", mock.MatchedBy(func(m entities.Member) bool {
		return m.ID == 1
	})).Return(&entities.Team{ID: "t1"}, nil)
	repo.On("AddMember", mock.Anything, "t1", mock.MatchedBy(func(m entities.Member) bool {
		return m.ID == 2
	})).Return(nil, entities.ErrRosterFull)

	_, err := uc.BulkAddSelection(context.Background(), "t1")
	require.ErrorIs(t, err, entities.ErrRosterFull)
	require.Equal(t, []string{"1", "2"}, sel.List())
}

func TestUsecase_SimulateBattleValidation(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	_, err := uc.SimulateBattle(context.Background(), "", "b")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.SimulateBattle(context.Background(), "same", "same")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_SimulateBattleUsesSlotOrder(t *testing.T) {
	uc, repo, cat, _ := newTestUsecase()

	one, zero := 1, 0
	repo.On("GetTeam", mock.Anything, "a").Return(&entities.Team{ID: "a", Members: []entities.Member{
		{ID: 4, Order: &one},
		{ID: 7, Order: &zero},
	}}, nil)
	repo.On("GetTeam", mock.Anything, "b").Return(&entities.Team{ID: "b", Members: []entities.Member{
		{ID: 1, Order: &zero},
	}}, nil)

	// the slot-0 member of side A fights first despite its list position
	cat.On("Detail", mock.Anything, "7").Return(&catalog.CreatureDetail{
		ID: 7, Name: "squirtle", Stats: catalog.StatBlock{Attack: 90, Defense: 10, Speed: 50},
	}, nil)
	cat.On("Detail", mock.Anything, "1").Return(&catalog.CreatureDetail{
		ID: 1, Name: "bulbasaur", Stats: catalog.StatBlock{Attack: 10, Defense: 10, Speed: 10},
	}, nil)

	result, err := uc.SimulateBattle(context.Background(), "a", "b")
	require.NoError(t, err)
	require.Equal(t, battle.SideA, result.Winner)
	require.Len(t, result.Rounds, 1)
	require.Equal(t, "7", result.Rounds[0].Winner)
	require.Equal(t, "1", result.Rounds[0].Loser)
	cat.AssertNotCalled(t, "Detail", mock.Anything, "4")
}

func TestUsecase_CreaturesValidation(t *testing.T) {
	uc, _, cat, _ := newTestUsecase()

	_, err := uc.Creatures(context.Background(), -1, 10)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	cat.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CreaturesDefaultsLimit(t *testing.T) {
	uc, _, cat, _ := newTestUsecase()

	cat.On("List", mock.Anything, 0, defaultPageLimit).Return([]catalog.PageEntry{{ID: 1, Name: "bulbasaur"}}, nil)

	page, err := uc.Creatures(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	cat.AssertExpectations(t)
}

func TestUsecase_ToggleSelectionValidation(t *testing.T) {
	uc, _, _, sel := newTestUsecase()

	require.ErrorIs(t, uc.ToggleSelection(context.Background(), ""), entities.ErrInvalidArgument)
	require.Empty(t, sel.List())
}

func TestUsecase_SetViewPreferenceValidation(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()

	err := uc.SetViewPreference(context.Background(), "grid")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "SetViewPreference", mock.Anything, mock.Anything)
}

func TestUsecase_FavoriteValidation(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	require.ErrorIs(t, uc.AddFavorite(context.Background(), ""), entities.ErrInvalidArgument)
	require.ErrorIs(t, uc.RemoveFavorite(context.Background(), ""), entities.ErrInvalidArgument)
}
