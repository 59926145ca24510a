package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMark = errors.New("unknown mark")

// Color - RGB triple read from a tile's background-color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

func (that Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", that.R, that.G, that.B)
}

type Mark int

const (
	MarkEmpty Mark = iota
	MarkCrossed
	MarkQueen
)

const (
	markEmptyName   = "empty"
	markCrossedName = "crossed"
	markQueenName   = "queen"
)

func (that Mark) String() string {
	switch that {
	case MarkEmpty:
		return markEmptyName
	case MarkCrossed:
		return markCrossedName
	case MarkQueen:
		return markQueenName
	default:
		return fmt.Sprintf("mark(%d)", int(that))
	}
}

// symbol - single character used by Board.String.
func (that Mark) symbol() byte {
	switch that {
	case MarkCrossed:
		return 'x'
	case MarkQueen:
		return 'Q'
	default:
		return '.'
	}
}

// ParseMark - converts a mark name (empty, crossed, queen) into a Mark.
func ParseMark(name string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case markEmptyName:
		return MarkEmpty, nil
	case markCrossedName:
		return MarkCrossed, nil
	case markQueenName:
		return MarkQueen, nil
	default:
		return MarkEmpty, fmt.Errorf("%w: %q", ErrUnknownMark, name)
	}
}

// Cell - one grid position. Color is fixed at board construction, Mark changes only by replacement.
type Cell struct {
	Color Color
	Mark  Mark
}

func NewCell(color Color) Cell {
	return Cell{Color: color, Mark: MarkEmpty}
}

func (that Cell) WithMark(mark Mark) Cell {
	return Cell{Color: that.Color, Mark: mark}
}
