package board

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	b, err := New(3, 2, 0, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b.cells[0].value = Mine // 0:0

	_, err = b.RevealCell(0, 0) // the mine
	require.NoError(t, err)
	_, err = b.RevealCell(0, 1) // adjacent to it
	require.NoError(t, err)
	_, err = b.RevealCell(1, 2) // not adjacent
	require.NoError(t, err)
	require.NoError(t, b.ToggleFlag(1, 0))

	want := strings.Join([]string{
		"* 1 # ",
		"F # 0 ",
		"",
	}, "\n")
	assert.Equal(t, want, b.Render())
}

func TestRenderDoesNotMutate(t *testing.T) {
	t.Parallel()

	b, err := New(4, 4, 5, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	_, err = b.RevealCell(0, 0)
	require.NoError(t, err)

	before, err := b.Bytes()
	require.NoError(t, err)

	first := b.Render()
	second := b.Render()
	assert.Equal(t, first, second)

	after, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRenderAllClosed(t *testing.T) {
	t.Parallel()

	b, err := New(2, 2, 1, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, "# # \n# # \n", b.Render())
}
