package board

import (
	"fmt"
	"strings"
)

// Render projects the board to text, one row per line: "*" for a revealed
// mine, the neighbor count digit for a revealed empty cell, "F" for a flag,
// "#" for anything still closed. Purely read-only.
func (b *Board) Render() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			c := b.cells[row*b.width+col]
			sym := c.symbol(func() int { return b.CountMines(row, col) })
			fmt.Fprint(&sb, sym+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
