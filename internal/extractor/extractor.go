package extractor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/rocketscienceinc/queens-board/internal/apperror"
	"github.com/rocketscienceinc/queens-board/internal/entity"
	"golang.org/x/net/html"
)

const styleAttr = "style"

// Selectors - CSS selectors for the board container, its rows and the tiles inside each row.
type Selectors struct {
	Board string
	Row   string
	Tile  string
}

// Extraction - the initial board plus the dimensions observed while walking the markup.
type Extraction struct {
	Board  entity.Board
	Width  int
	Height int
}

type Extractor struct {
	logger *slog.Logger

	board cascadia.Selector
	row   cascadia.Selector
	tile  cascadia.Selector
}

func New(logger *slog.Logger, selectors Selectors) (*Extractor, error) {
	board, err := compile("board", selectors.Board)
	if err != nil {
		return nil, err
	}

	row, err := compile("row", selectors.Row)
	if err != nil {
		return nil, err
	}

	tile, err := compile("tile", selectors.Tile)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		logger: logger.With("component", "extractor"),
		board:  board,
		row:    row,
		tile:   tile,
	}, nil
}

func compile(name, selector string) (cascadia.Selector, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: %s selector is empty", apperror.ErrInvalidSelector, name)
	}

	compiled, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %s selector %q: %v", apperror.ErrInvalidSelector, name, selector, err)
	}

	return compiled, nil
}

// ParseDocument - parses board markup. Fragments are accepted, the parser supplies the missing html/body.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse markup: %w", err)
	}

	return goquery.NewDocumentFromNode(root), nil
}

// Extract - walks board > row > tile in document order and builds the initial board.
// Row position gives the row index, tile position within its row gives the column index.
// Any failure aborts the walk; no partial board is returned.
func (that *Extractor) Extract(doc *goquery.Document) (*Extraction, error) {
	log := that.logger.With("method", "Extract")

	board := doc.FindMatcher(that.board).First()
	if board.Length() == 0 {
		return nil, &apperror.MissingElementError{Context: "board container"}
	}

	rows := board.FindMatcher(that.row)
	if rows.Length() == 0 {
		return nil, &apperror.MissingElementError{Context: "row"}
	}

	cells := make(map[entity.Coord]entity.Cell)

	// rows without tiles still count toward the height
	var width, height int

	var err error
	rows.EachWithBreak(func(y int, row *goquery.Selection) bool {
		height = max(height, y+1)

		row.FindMatcher(that.tile).EachWithBreak(func(x int, tile *goquery.Selection) bool {
			var color entity.Color
			if color, err = tileColor(tile, x, y); err != nil {
				return false
			}

			width = max(width, x+1)
			cells[entity.Coord{Column: x, Row: y}] = entity.NewCell(color)
			return true
		})

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	if len(cells) == 0 {
		return nil, &apperror.MissingElementError{Context: "tile"}
	}

	extraction := &Extraction{
		Board:  entity.NewBoard(cells),
		Width:  width,
		Height: height,
	}

	log.Debug("board extracted",
		"width", extraction.Width,
		"height", extraction.Height,
		"cells", extraction.Board.Len(),
		"dense", extraction.Board.IsDense(),
	)

	return extraction, nil
}

// ExtractFrom - parses markup and extracts the board in one step.
func (that *Extractor) ExtractFrom(r io.Reader) (*Extraction, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return nil, err
	}

	return that.Extract(doc)
}

func tileColor(tile *goquery.Selection, x, y int) (entity.Color, error) {
	style, ok := tile.Attr(styleAttr)
	if !ok {
		return entity.Color{}, &apperror.MissingElementError{
			Context: fmt.Sprintf("style attribute of tile (%d, %d)", x, y),
		}
	}

	color, err := ParseBackgroundColor(style)
	if err != nil {
		return entity.Color{}, fmt.Errorf("tile (%d, %d): %w", x, y, err)
	}

	return color, nil
}
