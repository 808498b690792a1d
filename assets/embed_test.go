package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GrgurDuj/nono-game/assets"
	"github.com/GrgurDuj/nono-game/internal/catalog"
)

// Every shipped puzzle must parse; a broken embedded file would only
// surface at play time otherwise.
func TestEmbeddedPuzzlesParse(t *testing.T) {
	fsys, err := assets.Puzzles()
	require.NoError(t, err)

	c := catalog.NewFS(fsys)
	ids, err := c.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	assert.Equal(t, "puzzle_1", ids[0])

	for _, id := range ids {
		g, err := c.Load(context.Background(), id)
		require.NoError(t, err, "puzzle %s", id)
		assert.Greater(t, g.Rows(), 0)
		assert.Greater(t, g.Cols(), 0)
	}
}
