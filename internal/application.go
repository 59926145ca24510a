package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/queens-board/internal/config"
	"github.com/rocketscienceinc/queens-board/internal/entity"
	"github.com/rocketscienceinc/queens-board/internal/extractor"
	"github.com/rocketscienceinc/queens-board/internal/repository"
	"github.com/rocketscienceinc/queens-board/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, err := Play(ctx, logger, conf)
	return err
}

// Play - extracts the board from the configured markup file, starts a game and replays the configured moves.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config) (*entity.Game, error) {
	log := logger.With("component", "app")

	boardExtractor, err := extractor.New(logger, extractor.Selectors{
		Board: conf.Selectors.Board,
		Row:   conf.Selectors.Row,
		Tile:  conf.Selectors.Tile,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build extractor: %w", err)
	}

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo, boardExtractor)

	markup, err := os.Open(conf.MarkupPath)
	if err != nil {
		return nil, fmt.Errorf("could not open markup: %w", err)
	}

	defer func() {
		if err = markup.Close(); err != nil {
			log.Error("could not close markup file", "error", err)
		}
	}()

	game, err := gameManager.StartGame(ctx, markup)
	if err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	for i, move := range conf.Moves {
		if ctx.Err() != nil {
			log.Info("Application context canceled, stopping replay", "applied", i)
			break
		}

		mark, err := entity.ParseMark(move.Mark)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}

		if game, err = gameManager.MarkSquare(ctx, game.ID, move.Column, move.Row, mark); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}

	log.Info("game ready",
		"game_id", game.ID,
		"history", game.Len(),
		"board", game.Current().String(),
	)

	return game, nil
}
