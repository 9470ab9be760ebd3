package board

import (
	"fmt"
	"math/rand/v2"
)

var (
	ErrInvalidDimensions = fmt.Errorf("board dimensions must be positive")
	ErrTooManyMines      = fmt.Errorf("mine count exceeds cell count")
	ErrOutOfBounds       = fmt.Errorf("cell position out of bounds")
)

// Board is a minesweeper field: fixed dimensions, a mine layout fixed at
// construction and per-cell open/flag state. It is a plain mutable value
// owned by a single caller; hosts that share one must serialize access.
type Board struct {
	width, height int
	mineCount     int
	cells         []cell
}

// New places exactly mineCount mines uniformly at random over the
// width x height grid by rejection sampling: positions are drawn with
// replacement and de-duplicated until mineCount distinct cells are mined.
// mineCount > width*height would make that loop spin forever, so it is
// rejected up front.
func New(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if mineCount < 0 || mineCount > width*height {
		return nil, fmt.Errorf("%w: %d mines in %dx%d", ErrTooManyMines, mineCount, width, height)
	}

	mines := make(map[int]struct{}, mineCount)
	for len(mines) < mineCount {
		mines[r.IntN(width*height)] = struct{}{}
	}

	cells := make([]cell, width*height)
	for i := range mines {
		cells[i].value = Mine
	}

	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     cells,
	}, nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) cellAt(row, col int) (*cell, error) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return nil, fmt.Errorf("%w: %d:%d on %dx%d", ErrOutOfBounds, row, col, b.width, b.height)
	}
	return &b.cells[row*b.width+col], nil
}

// RevealResult reports the outcome of revealing a single cell. MineCount is
// meaningful only when Mine is false and is recounted live on every reveal.
type RevealResult struct {
	Mine      bool `json:"mine"`
	MineCount int  `json:"mine_count"`
}

// RevealCell marks the cell revealed regardless of its prior state (a flag
// does not protect it) and reports what was uncovered. Revealing an already
// revealed cell is allowed and yields the same result. Neighboring empty
// cells are left untouched; there is no cascade.
func (b *Board) RevealCell(row, col int) (RevealResult, error) {
	c, err := b.cellAt(row, col)
	if err != nil {
		return RevealResult{}, err
	}
	c.state = Revealed
	if c.value == Mine {
		return RevealResult{Mine: true}, nil
	}
	return RevealResult{MineCount: b.CountMines(row, col)}, nil
}

// ToggleFlag flips a closed cell to flagged and back. Revealed cells are
// final: flagging one has no effect.
func (b *Board) ToggleFlag(row, col int) error {
	c, err := b.cellAt(row, col)
	if err != nil {
		return err
	}
	switch c.state {
	case Closed:
		c.state = Flagged
	case Flagged:
		c.state = Closed
	}
	return nil
}

// CountMines scans the up-to-8 in-bounds neighbors of a cell and counts the
// mined ones. The count is derived from the live mine layout on every call,
// never cached.
func (b *Board) CountMines(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if rr < 0 || rr >= b.height || cc < 0 || cc >= b.width {
				continue
			}
			if b.cells[rr*b.width+cc].value == Mine {
				n++
			}
		}
	}
	return n
}

// Snapshot returns an owned copy of every cell's observable state in
// row-major order. Mine layout leaks only through revealed cells.
func (b *Board) Snapshot() []CellView {
	views := make([]CellView, 0, len(b.cells))
	for row := range b.height {
		for col := range b.width {
			c := b.cells[row*b.width+col]
			v := CellView{Row: row, Col: col, State: c.state}
			if c.state == Revealed {
				if c.value == Mine {
					v.Mine = true
				} else {
					v.MineCount = b.CountMines(row, col)
				}
			}
			views = append(views, v)
		}
	}
	return views
}
