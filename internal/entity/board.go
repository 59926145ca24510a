package entity

import (
	"sort"
	"strings"

	"github.com/rocketscienceinc/queens-board/internal/apperror"
)

// Coord - zero-based (column, row) position on the board.
type Coord struct {
	Column int
	Row    int
}

// Board - immutable snapshot of cells. Every transition returns a new Board.
type Board struct {
	cells  map[Coord]Cell
	width  int
	height int
}

// NewBoard - builds a board from the given cells. The map is copied, so the caller keeps ownership of its argument.
// Width and height are the largest observed column/row plus one.
func NewBoard(cells map[Coord]Cell) Board {
	board := Board{cells: make(map[Coord]Cell, len(cells))}

	for coord, cell := range cells {
		board.cells[coord] = cell
		board.width = max(board.width, coord.Column+1)
		board.height = max(board.height, coord.Row+1)
	}

	return board
}

func (that Board) Width() int {
	return that.width
}

func (that Board) Height() int {
	return that.height
}

// Len - number of cells actually present; less than Width*Height for a sparse board.
func (that Board) Len() int {
	return len(that.cells)
}

func (that Board) IsDense() bool {
	return len(that.cells) == that.width*that.height
}

func (that Board) Cell(column, row int) (Cell, bool) {
	cell, ok := that.cells[Coord{Column: column, Row: row}]
	return cell, ok
}

// Coords - present coordinates in row-major order.
func (that Board) Coords() []Coord {
	coords := make([]Coord, 0, len(that.cells))
	for coord := range that.cells {
		coords = append(coords, coord)
	}

	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Column < coords[j].Column
	})

	return coords
}

// Cells - copy of the underlying mapping.
func (that Board) Cells() map[Coord]Cell {
	cells := make(map[Coord]Cell, len(that.cells))
	for coord, cell := range that.cells {
		cells[coord] = cell
	}

	return cells
}

// MarkSquare - returns a new board with the cell at (column, row) carrying mark.
// The receiver is left untouched.
func (that Board) MarkSquare(column, row int, mark Mark) (Board, error) {
	target := Coord{Column: column, Row: row}

	cell, ok := that.cells[target]
	if !ok {
		return Board{}, &apperror.OutOfBoundsError{Column: column, Row: row}
	}

	next := Board{
		cells:  that.Cells(),
		width:  that.width,
		height: that.height,
	}
	next.cells[target] = cell.WithMark(mark)

	return next, nil
}

// CheckValidity - placement rules are not yet specified, every board is reported valid.
func (that Board) CheckValidity() bool {
	return true
}

func (that Board) Equal(other Board) bool {
	if len(that.cells) != len(other.cells) {
		return false
	}

	for coord, cell := range that.cells {
		if otherCell, ok := other.cells[coord]; !ok || otherCell != cell {
			return false
		}
	}

	return true
}

// String - renders the marks row by row, '?' stands for a hole in a sparse board.
func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < that.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		for column := 0; column < that.width; column++ {
			cell, ok := that.cells[Coord{Column: column, Row: row}]
			if !ok {
				sb.WriteByte('?')
				continue
			}
			sb.WriteByte(cell.Mark.symbol())
		}
	}

	return sb.String()
}
