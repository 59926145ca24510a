package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/queens-board/internal/entity"
	"github.com/rocketscienceinc/queens-board/internal/extractor"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type boardExtractor interface {
	ExtractFrom(r io.Reader) (*extractor.Extraction, error)
}

type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	extractor boardExtractor
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, extractor boardExtractor) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		extractor: extractor,
	}
}

// StartGame - extracts the starting board from markup and registers a game seeded with it.
func (that *GameManager) StartGame(ctx context.Context, markup io.Reader) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	extraction, err := that.extractor.ExtractFrom(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to extract board: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), extraction.Board)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game started",
		"game_id", game.ID,
		"width", extraction.Width,
		"height", extraction.Height,
		"cells", extraction.Board.Len(),
	)

	return game, nil
}

// MarkSquare - appends a board with (column, row) marked to the game's history.
func (that *GameManager) MarkSquare(ctx context.Context, gameID string, column, row int, mark entity.Mark) (*entity.Game, error) {
	log := that.logger.With("method", "MarkSquare", "game_id", gameID)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	next, err := game.Apply(entity.MarkSquare(column, row, mark))
	if err != nil {
		return nil, fmt.Errorf("failed to mark square: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("square marked",
		"column", column,
		"row", row,
		"mark", mark.String(),
		"history", next.Len(),
		"valid", next.Current().CheckValidity(),
	)

	return next, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) EndGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndGame", "game_id", id)

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game ended")

	return nil
}
