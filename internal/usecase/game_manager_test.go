package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/queens-board/internal/apperror"
	"github.com/rocketscienceinc/queens-board/internal/entity"
	"github.com/rocketscienceinc/queens-board/internal/extractor"
	"github.com/rocketscienceinc/queens-board/internal/repository"
)

const boardMarkup = `
<div class="board">
  <div class="row">
    <div class="tile" style="background-color: rgb(255, 0, 0)"></div>
    <div class="tile" style="background-color: rgb(0, 255, 0)"></div>
  </div>
  <div class="row">
    <div class="tile" style="background-color: rgb(0, 0, 255)"></div>
    <div class="tile" style="background-color: rgb(0, 0, 0)"></div>
  </div>
</div>`

var errStorageIsFull = errors.New("storage is full")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestManager(t *testing.T, gameRepo gameRepo) *GameManager {
	t.Helper()

	boardExtractor, err := extractor.New(newTestLogger(), extractor.Selectors{
		Board: "div.board",
		Row:   "div.row",
		Tile:  "div.tile",
	})
	require.NoError(t, err)

	return NewGameManager(newTestLogger(), gameRepo, boardExtractor)
}

func TestGameManager_StartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers a game seeded with the extracted board", func(t *testing.T) {
		// Given: a manager backed by the in-memory repository
		gameRepo := repository.NewGameRepository()
		manager := newTestManager(t, gameRepo)

		// When: a game is started from markup
		game, err := manager.StartGame(ctx, strings.NewReader(boardMarkup))
		require.NoError(t, err)

		// Then: the game has a UUID, one snapshot and is retrievable
		_, err = uuid.Parse(game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, game.Len())
		assert.Equal(t, 4, game.Current().Len())

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Same(t, game, stored)
	})

	t.Run("Returns extraction error and stores nothing", func(t *testing.T) {
		// Given: a repository that must not be called
		gameRepo := &mockGameRepo{}
		manager := newTestManager(t, gameRepo)

		// When: markup with a malformed color is used
		markup := `<div class="board"><div class="row"><div class="tile" style="color: red"></div></div></div>`
		game, err := manager.StartGame(ctx, strings.NewReader(markup))

		// Then: MalformedColor is surfaced
		require.ErrorIs(t, err, apperror.ErrMalformedColor)
		assert.Nil(t, game)
		gameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if gameRepo.CreateOrUpdate fails", func(t *testing.T) {
		// Given: a repository that refuses writes
		gameRepo := &mockGameRepo{}
		gameRepo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errStorageIsFull).
			Once()
		manager := newTestManager(t, gameRepo)

		// When: a game is started
		_, err := manager.StartGame(ctx, strings.NewReader(boardMarkup))

		// Then: the repository error is returned
		require.ErrorIs(t, err, errStorageIsFull)
		gameRepo.AssertExpectations(t)
	})
}

func TestGameManager_MarkSquare(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends a snapshot and replaces the stored game", func(t *testing.T) {
		// Given: a started game
		manager := newTestManager(t, repository.NewGameRepository())
		game, err := manager.StartGame(ctx, strings.NewReader(boardMarkup))
		require.NoError(t, err)

		// When: two squares are marked
		_, err = manager.MarkSquare(ctx, game.ID, 0, 0, entity.MarkQueen)
		require.NoError(t, err)
		next, err := manager.MarkSquare(ctx, game.ID, 1, 0, entity.MarkCrossed)
		require.NoError(t, err)

		// Then: the stored game has three snapshots and the original game is unchanged
		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Same(t, next, stored)
		assert.Equal(t, 3, stored.Len())
		assert.Equal(t, "Qx\n..", stored.Current().String())
		assert.Equal(t, 1, game.Len())
	})

	t.Run("Returns OutOfBounds and keeps the stored game", func(t *testing.T) {
		// Given: a started game
		manager := newTestManager(t, repository.NewGameRepository())
		game, err := manager.StartGame(ctx, strings.NewReader(boardMarkup))
		require.NoError(t, err)

		// When: a square off the board is marked
		_, err = manager.MarkSquare(ctx, game.ID, 2, 2, entity.MarkQueen)

		// Then: OutOfBounds is returned and history did not grow
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Len())
	})

	t.Run("Returns ErrGameNotFound for unknown game", func(t *testing.T) {
		manager := newTestManager(t, repository.NewGameRepository())

		_, err := manager.MarkSquare(ctx, "missing", 0, 0, entity.MarkQueen)

		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameManager_EndGame(t *testing.T) {
	ctx := context.Background()

	// Given: a started game
	manager := newTestManager(t, repository.NewGameRepository())
	game, err := manager.StartGame(ctx, strings.NewReader(boardMarkup))
	require.NoError(t, err)

	// When: it is ended
	require.NoError(t, manager.EndGame(ctx, game.ID))

	// Then: it can no longer be found, and ending it again fails
	_, err = manager.GetGame(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
	assert.ErrorIs(t, manager.EndGame(ctx, game.ID), apperror.ErrGameNotFound)
}
