package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		g, err := Parse(strings.NewReader("1 0\n0 1\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
		assert.True(t, g.Filled(0, 0))
		assert.False(t, g.Filled(0, 1))
		assert.True(t, g.Filled(1, 1))
	})

	t.Run("rectangle", func(t *testing.T) {
		g, err := Parse(strings.NewReader("1 1 0\n0 0 1\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 3, g.Cols())
	})

	t.Run("comments and blank lines are skipped", func(t *testing.T) {
		src := "# heart, 2x2 for testing\n\n1 0\n# middle note\n0 1\n\n"
		g, err := Parse(strings.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
	})

	t.Run("tabs and extra spaces separate cells too", func(t *testing.T) {
		g, err := Parse(strings.NewReader("1\t0  1\n0 1\t1\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, g.Cols())
	})

	t.Run("windows line endings", func(t *testing.T) {
		g, err := Parse(strings.NewReader("1 0\r\n0 1\r\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
	})
}

func TestParseMalformed(t *testing.T) {
	t.Run("ragged rows", func(t *testing.T) {
		_, err := Parse(strings.NewReader("1 0 1\n0 1\n"))
		require.Error(t, err)

		var mpe *MalformedPuzzleError
		require.True(t, errors.As(err, &mpe), "want MalformedPuzzleError, got %v", err)
		assert.Equal(t, 2, mpe.Line)
		assert.Contains(t, mpe.Reason, "want 3")
	})

	t.Run("line numbers count skipped lines", func(t *testing.T) {
		_, err := Parse(strings.NewReader("# title\n1 0\n0 1 1\n"))
		var mpe *MalformedPuzzleError
		require.True(t, errors.As(err, &mpe))
		assert.Equal(t, 3, mpe.Line)
	})

	t.Run("non-binary cell", func(t *testing.T) {
		_, err := Parse(strings.NewReader("1 0\n0 2\n"))
		var mpe *MalformedPuzzleError
		require.True(t, errors.As(err, &mpe))
		assert.Equal(t, 2, mpe.Line)
		assert.Contains(t, mpe.Reason, `"2"`)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		var mpe *MalformedPuzzleError
		require.True(t, errors.As(err, &mpe))
		assert.Equal(t, 0, mpe.Line)
		assert.Contains(t, mpe.Reason, "no rows")
	})

	t.Run("comment-only source", func(t *testing.T) {
		_, err := Parse(strings.NewReader("# nothing here\n\n"))
		var mpe *MalformedPuzzleError
		require.True(t, errors.As(err, &mpe))
	})
}
