package level

import "errors"

var (
	// ErrCanvasLimit is returned when an expansion would push either grid
	// dimension past MaxSize. The document is left untouched.
	ErrCanvasLimit = errors.New("canvas size limit reached")

	// ErrTileDefsFull is returned when the tile definition table is full.
	ErrTileDefsFull = errors.New("tile definition table full")

	// ErrTagDefsFull is returned when the tag definition table is full.
	ErrTagDefsFull = errors.New("tag definition table full")

	// ErrPlacementsFull is returned when the tag placement table is full.
	ErrPlacementsFull = errors.New("tag placement table full")

	// ErrOutsideMargin is returned when an expansion target lies outside
	// even the padding margin.
	ErrOutsideMargin = errors.New("target outside expansion margin")
)
