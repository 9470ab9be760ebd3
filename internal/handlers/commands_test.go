package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varenn/minefield-server/internal/board"
)

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(4, 4, 0, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return b
}

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	t.Run("reveal returns an outcome", func(t *testing.T) {
		t.Parallel()
		b := newTestBoard(t)
		res, err := ExecuteCommand(b, "o 1 2")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.False(t, res.Mine)
		assert.Equal(t, 0, res.MineCount)
	})

	t.Run("flag returns no outcome", func(t *testing.T) {
		t.Parallel()
		b := newTestBoard(t)
		res, err := ExecuteCommand(b, "f 0 0")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("get is a no-op", func(t *testing.T) {
		t.Parallel()
		b := newTestBoard(t)
		res, err := ExecuteCommand(b, "g")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("out of bounds surfaces the core error", func(t *testing.T) {
		t.Parallel()
		b := newTestBoard(t)
		_, err := ExecuteCommand(b, "o 4 0")
		assert.ErrorIs(t, err, board.ErrOutOfBounds)
		_, err = ExecuteCommand(b, "f 0 4")
		assert.ErrorIs(t, err, board.ErrOutOfBounds)
	})

	t.Run("rejects malformed commands", func(t *testing.T) {
		t.Parallel()
		b := newTestBoard(t)
		for _, cmd := range []string{"x 0 0", "o", "o 1", "o 1 2 3", "f a b", "g 1"} {
			_, err := ExecuteCommand(b, cmd)
			assert.Error(t, err, "%q", cmd)
		}
	})
}

func TestByPiece(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
	}
	for _, test := range testCases {
		for i, p := range byPiece(test.input, test.sep) {
			require.Less(t, i, len(test.array))
			assert.Equal(t, test.array[i], p)
		}
	}
}

func TestParseMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Move
		wantErr error
	}{
		{"reveal", RevealMove, nil},
		{"REVEAL", RevealMove, nil},
		{"flag", FlagMove, nil},
		{"chord", 0, ErrBadMove},
		{"", 0, ErrBadMove},
	}
	for _, test := range tests {
		move, err := parseMove(test.input)
		if test.wantErr != nil {
			assert.ErrorIs(t, err, test.wantErr, "%q", test.input)
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.want, move)
	}
}

func TestParseCreateBoardDTO(t *testing.T) {
	t.Parallel()

	dto, err := ParseCreateBoardDTO(map[string][]string{
		"width":      {"30"},
		"height":     {"16"},
		"mine_count": {"99"},
		"extra":      {"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, CreateBoardDTO{Width: 30, Height: 16, MineCount: 99}, dto)

	_, err = ParseCreateBoardDTO(map[string][]string{"width": {"30"}})
	assert.Error(t, err)
}
