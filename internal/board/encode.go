package board

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// boardGob mirrors Board with exported fields for gob. Keeping the mirror
// private preserves the rule that mine positions never cross the package
// boundary except through reveals.
type boardGob struct {
	Width, Height int
	MineCount     int
	Values        []CellValue
	States        []CellState
}

// Bytes serializes the full board, mine layout included, for opaque storage
// by a host (e.g. a session row). The result is not a rendering format.
func (b *Board) Bytes() ([]byte, error) {
	values := make([]CellValue, len(b.cells))
	states := make([]CellState, len(b.cells))
	for i, c := range b.cells {
		values[i] = c.value
		states[i] = c.state
	}
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(boardGob{
		Width:     b.width,
		Height:    b.height,
		MineCount: b.mineCount,
		Values:    values,
		States:    states,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reconstructs a board previously serialized with [Board.Bytes],
// re-checking the construction invariants so a corrupt blob cannot produce a
// board that violates them.
func Decode(data []byte) (*Board, error) {
	var g boardGob
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return nil, err
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, g.Width, g.Height)
	}
	if len(g.Values) != g.Width*g.Height || len(g.States) != len(g.Values) {
		return nil, fmt.Errorf("stored board has %d values and %d states, want %d",
			len(g.Values), len(g.States), g.Width*g.Height)
	}
	cells := make([]cell, len(g.Values))
	mines := 0
	for i := range cells {
		cells[i] = cell{value: g.Values[i], state: g.States[i]}
		if g.Values[i] == Mine {
			mines++
		}
	}
	if mines != g.MineCount {
		return nil, fmt.Errorf("stored board has %d mines, want %d", mines, g.MineCount)
	}
	return &Board{
		width:     g.Width,
		height:    g.Height,
		mineCount: g.MineCount,
		cells:     cells,
	}, nil
}
