package board

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func (b *Board) countValues(v CellValue) int {
	n := 0
	for _, c := range b.cells {
		if c.value == v {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		width, height, mineCount int
		wantErr                  error
	}{
		{"9x9(10)", 9, 9, 10, nil},
		{"16x16(40)", 16, 16, 40, nil},
		{"30x16(99)", 30, 16, 99, nil},
		{"no mines", 10, 10, 0, nil},
		{"full board", 2, 2, 4, nil},
		{"single cell", 1, 1, 1, nil},
		{"zero width", 0, 10, 0, ErrInvalidDimensions},
		{"zero height", 10, 0, 0, ErrInvalidDimensions},
		{"negative mines", 4, 4, -1, ErrTooManyMines},
		{"too many mines", 4, 4, 17, ErrTooManyMines},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(test.width, test.height, test.mineCount, newRand())
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.width, b.Width())
			assert.Equal(t, test.height, b.Height())
			assert.Equal(t, test.mineCount, b.MineCount())
			assert.Equal(t, test.mineCount, b.countValues(Mine))
			for _, c := range b.cells {
				assert.Equal(t, Closed, c.state)
			}
		})
	}
}

func TestNewDeterministicLayout(t *testing.T) {
	t.Parallel()

	a, err := New(9, 9, 10, newRand())
	require.NoError(t, err)
	b, err := New(9, 9, 10, newRand())
	require.NoError(t, err)
	assert.Equal(t, a.cells, b.cells, "same seed must yield the same layout")
}

func TestMineCountStableAfterMoves(t *testing.T) {
	t.Parallel()

	b, err := New(8, 8, 12, newRand())
	require.NoError(t, err)

	for row := range b.Height() {
		for col := range b.Width() {
			if (row+col)%2 == 0 {
				_, err := b.RevealCell(row, col)
				require.NoError(t, err)
			} else {
				require.NoError(t, b.ToggleFlag(row, col))
			}
		}
	}

	assert.Equal(t, 12, b.countValues(Mine))
}

func TestRevealCell(t *testing.T) {
	t.Parallel()

	t.Run("full board is all mines", func(t *testing.T) {
		t.Parallel()
		b, err := New(2, 2, 4, newRand())
		require.NoError(t, err)
		for row := range 2 {
			for col := range 2 {
				res, err := b.RevealCell(row, col)
				require.NoError(t, err)
				assert.True(t, res.Mine, "%d:%d", row, col)
			}
		}
	})

	t.Run("empty board counts zero", func(t *testing.T) {
		t.Parallel()
		b, err := New(10, 10, 0, newRand())
		require.NoError(t, err)
		for row := range 10 {
			for col := range 10 {
				res, err := b.RevealCell(row, col)
				require.NoError(t, err)
				assert.False(t, res.Mine)
				assert.Equal(t, 0, res.MineCount)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		b, err := New(5, 5, 0, newRand())
		require.NoError(t, err)
		first, err := b.RevealCell(2, 2)
		require.NoError(t, err)
		second, err := b.RevealCell(2, 2)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("overrides flag", func(t *testing.T) {
		t.Parallel()
		b, err := New(3, 3, 0, newRand())
		require.NoError(t, err)
		require.NoError(t, b.ToggleFlag(1, 1))
		_, err = b.RevealCell(1, 1)
		require.NoError(t, err)
		assert.Equal(t, Revealed, b.cells[1*3+1].state)
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		b, err := New(4, 3, 0, newRand())
		require.NoError(t, err)
		for _, pos := range [][2]int{{3, 0}, {0, 4}, {-1, 0}, {0, -1}, {3, 4}} {
			_, err := b.RevealCell(pos[0], pos[1])
			assert.ErrorIs(t, err, ErrOutOfBounds, "%v", pos)
		}
	})
}

func TestToggleFlag(t *testing.T) {
	t.Parallel()

	t.Run("toggles closed cells", func(t *testing.T) {
		t.Parallel()
		b, err := New(3, 3, 0, newRand())
		require.NoError(t, err)

		require.NoError(t, b.ToggleFlag(0, 0))
		assert.Equal(t, Flagged, b.cells[0].state)

		require.NoError(t, b.ToggleFlag(0, 0))
		assert.Equal(t, Closed, b.cells[0].state)
	})

	t.Run("revealed is absorbing", func(t *testing.T) {
		t.Parallel()
		b, err := New(3, 3, 0, newRand())
		require.NoError(t, err)
		_, err = b.RevealCell(1, 2)
		require.NoError(t, err)

		require.NoError(t, b.ToggleFlag(1, 2))
		assert.Equal(t, Revealed, b.cells[1*3+2].state)
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		b, err := New(3, 3, 0, newRand())
		require.NoError(t, err)
		assert.ErrorIs(t, b.ToggleFlag(3, 0), ErrOutOfBounds)
		assert.ErrorIs(t, b.ToggleFlag(0, 3), ErrOutOfBounds)
	})
}

func TestCountMines(t *testing.T) {
	t.Parallel()

	// 3x3 with mines in every cell but the center: the center sees all 8.
	b, err := New(3, 3, 0, newRand())
	require.NoError(t, err)
	for i := range b.cells {
		if i != 4 {
			b.cells[i].value = Mine
		}
	}

	assert.Equal(t, 8, b.CountMines(1, 1))
	assert.Equal(t, 3, b.CountMines(0, 0))
	assert.Equal(t, 4, b.CountMines(0, 1))
}

func TestNeighborClipping(t *testing.T) {
	t.Parallel()

	// On a fully mined board the neighbor count equals the neighbor total,
	// which pins down the clipped enumeration per position class.
	b, err := New(10, 10, 100, newRand())
	require.NoError(t, err)

	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"corner", 0, 0, 3},
		{"corner far", 9, 9, 3},
		{"edge top", 0, 5, 5},
		{"edge left", 5, 0, 5},
		{"edge bottom", 9, 4, 5},
		{"interior", 5, 5, 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, b.CountMines(test.row, test.col))
		})
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	b, err := New(2, 2, 0, newRand())
	require.NoError(t, err)
	b.cells[3].value = Mine

	_, err = b.RevealCell(0, 0)
	require.NoError(t, err)
	_, err = b.RevealCell(1, 1)
	require.NoError(t, err)
	require.NoError(t, b.ToggleFlag(0, 1))

	views := b.Snapshot()
	require.Len(t, views, 4)

	assert.Equal(t, CellView{Row: 0, Col: 0, State: Revealed, MineCount: 1}, views[0])
	assert.Equal(t, CellView{Row: 0, Col: 1, State: Flagged}, views[1])
	assert.Equal(t, CellView{Row: 1, Col: 0, State: Closed}, views[2])
	assert.Equal(t, CellView{Row: 1, Col: 1, State: Revealed, Mine: true}, views[3])

	// closed and flagged views must not leak values
	for _, v := range views[1:3] {
		assert.False(t, v.Mine)
		assert.Zero(t, v.MineCount)
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	b, err := New(6, 5, 7, newRand())
	require.NoError(t, err)
	_, err = b.RevealCell(2, 3)
	require.NoError(t, err)
	require.NoError(t, b.ToggleFlag(4, 1))

	data, err := b.Bytes()
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, b.cells, got.cells)
	assert.Equal(t, b.Width(), got.Width())
	assert.Equal(t, b.Height(), got.Height())
	assert.Equal(t, b.MineCount(), got.MineCount())
}

func TestDecodeRejectsCorruptState(t *testing.T) {
	t.Parallel()

	b, err := New(3, 3, 2, newRand())
	require.NoError(t, err)
	b.mineCount = 5 // lie about the layout

	data, err := b.Bytes()
	require.NoError(t, err)

	_, err = Decode(data)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrOutOfBounds))
}
