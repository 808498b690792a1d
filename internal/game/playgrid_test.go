package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayGridMarks(t *testing.T) {
	p := NewPlayGrid(2, 3)

	t.Run("starts all unknown", func(t *testing.T) {
		for r := 0; r < 2; r++ {
			for c := 0; c < 3; c++ {
				m, err := p.Mark(r, c)
				require.NoError(t, err)
				assert.Equal(t, Unknown, m)
			}
		}
	})

	t.Run("set and read back", func(t *testing.T) {
		require.NoError(t, p.SetMark(1, 2, Filled))
		require.NoError(t, p.SetMark(0, 0, MarkedEmpty))

		m, err := p.Mark(1, 2)
		require.NoError(t, err)
		assert.Equal(t, Filled, m)

		m, err = p.Mark(0, 0)
		require.NoError(t, err)
		assert.Equal(t, MarkedEmpty, m)
	})

	t.Run("reset clears everything", func(t *testing.T) {
		p.Reset()
		m, err := p.Mark(1, 2)
		require.NoError(t, err)
		assert.Equal(t, Unknown, m)
	})
}

func TestPlayGridBounds(t *testing.T) {
	p := NewPlayGrid(2, 2)

	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		_, err := p.Mark(cell[0], cell[1])
		require.Error(t, err)

		var be *BoundsError
		require.True(t, errors.As(err, &be), "want BoundsError, got %v", err)
		assert.Equal(t, cell[0], be.Row)
		assert.Equal(t, cell[1], be.Col)
		assert.Equal(t, 2, be.Rows)
		assert.Equal(t, 2, be.Cols)

		assert.Error(t, p.SetMark(cell[0], cell[1], Filled))
	}
}

func TestPlayGridIsComplete(t *testing.T) {
	solution := mustGrid(t,
		"110",
		"010",
	)

	fillExact := func(p *PlayGrid) {
		for r := 0; r < solution.Rows(); r++ {
			for c := 0; c < solution.Cols(); c++ {
				if solution.Filled(r, c) {
					require.NoError(t, p.SetMark(r, c, Filled))
				}
			}
		}
	}

	t.Run("exact fills complete", func(t *testing.T) {
		p := NewPlayGrid(2, 3)
		fillExact(p)
		assert.True(t, p.IsComplete(solution))
	})

	t.Run("marked empties do not matter", func(t *testing.T) {
		p := NewPlayGrid(2, 3)
		fillExact(p)
		require.NoError(t, p.SetMark(0, 2, MarkedEmpty))
		require.NoError(t, p.SetMark(1, 0, MarkedEmpty))
		assert.True(t, p.IsComplete(solution))
	})

	t.Run("missing fill is incomplete", func(t *testing.T) {
		p := NewPlayGrid(2, 3)
		fillExact(p)
		require.NoError(t, p.SetMark(1, 1, Unknown))
		assert.False(t, p.IsComplete(solution))
	})

	t.Run("stray fill is incomplete", func(t *testing.T) {
		p := NewPlayGrid(2, 3)
		fillExact(p)
		require.NoError(t, p.SetMark(1, 2, Filled))
		assert.False(t, p.IsComplete(solution))
	})

	t.Run("untouched grid completes an all-blank picture", func(t *testing.T) {
		blank := mustGrid(t, "00", "00")
		assert.True(t, NewPlayGrid(2, 2).IsComplete(blank))
	})

	t.Run("dimension mismatch is never complete", func(t *testing.T) {
		assert.False(t, NewPlayGrid(3, 3).IsComplete(solution))
	})
}
