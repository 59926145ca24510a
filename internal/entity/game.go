package entity

import (
	"errors"
	"fmt"
)

var ErrNilMutation = errors.New("board mutation is nil")

// BoardMutation - a transition from one board snapshot to the next.
type BoardMutation func(board Board) (Board, error)

// MarkSquare - mutation placing mark at (column, row).
func MarkSquare(column, row int, mark Mark) BoardMutation {
	return func(board Board) (Board, error) {
		return board.MarkSquare(column, row, mark)
	}
}

// Game - append-only history of board snapshots. The history always holds at least the starting board.
type Game struct {
	ID      string
	history []Board
}

func NewGame(id string, startingBoard Board) *Game {
	return &Game{
		ID:      id,
		history: []Board{startingBoard},
	}
}

// Apply - returns a new game whose history is extended by mutation(Current()).
// The receiver and its snapshots are not modified; on error the receiver stays valid.
func (that *Game) Apply(mutation BoardMutation) (*Game, error) {
	if mutation == nil {
		return nil, ErrNilMutation
	}

	next, err := mutation(that.Current())
	if err != nil {
		return nil, fmt.Errorf("could not apply move: %w", err)
	}

	history := make([]Board, len(that.history), len(that.history)+1)
	copy(history, that.history)

	return &Game{
		ID:      that.ID,
		history: append(history, next),
	}, nil
}

// Current - latest snapshot. A Game not built by NewGame has no history and yields an empty board.
func (that *Game) Current() Board {
	if len(that.history) == 0 {
		return Board{}
	}

	return that.history[len(that.history)-1]
}

func (that *Game) Initial() Board {
	if len(that.history) == 0 {
		return Board{}
	}

	return that.history[0]
}

// History - snapshots in the order they were appended. The returned slice is a copy.
func (that *Game) History() []Board {
	history := make([]Board, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Game) Len() int {
	return len(that.history)
}
