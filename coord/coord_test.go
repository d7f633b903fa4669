package coord_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcsd/coord"
)

func TestShape_Validate(t *testing.T) {
	assert.ErrorIs(t, coord.Shape{}.Validate(), coord.ErrEmptyShape)
	assert.ErrorIs(t, coord.Shape{3, 0}.Validate(), coord.ErrBadShape)
	assert.ErrorIs(t, coord.Shape{-1}.Validate(), coord.ErrBadShape)
	assert.ErrorIs(t, coord.Shape{math.MaxInt, 2}.Validate(), coord.ErrVolumeOverflow)
	assert.NoError(t, coord.Shape{10, 10}.Validate())
}

func TestShape_Volume(t *testing.T) {
	assert.Equal(t, 100, coord.Shape{10, 10}.Volume())
	assert.Equal(t, 24, coord.Shape{2, 3, 4}.Volume())
	assert.Equal(t, 7, coord.Shape{7}.Volume())
}

func TestShape_Contains(t *testing.T) {
	s := coord.Shape{3, 3}
	assert.True(t, s.Contains(coord.Of(0, 0)))
	assert.True(t, s.Contains(coord.Of(2, 2)))
	assert.False(t, s.Contains(coord.Of(3, 0)))
	assert.False(t, s.Contains(coord.Of(0, -1)))
	assert.False(t, s.Contains(coord.Of(1)))
}

// TestShape_IndexRoundTrip walks every cell of a 2×3×4 shape and checks that
// Index is row-major and that Coordinate inverts it.
func TestShape_IndexRoundTrip(t *testing.T) {
	s := coord.Shape{2, 3, 4}
	want := 0
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				c := coord.Of(x, y, z)
				idx, err := s.Index(c)
				require.NoError(t, err)
				require.Equal(t, want, idx, "index of %v", c)
				back, err := s.Coordinate(idx)
				require.NoError(t, err)
				require.True(t, c.Equal(back), "round trip of %v gave %v", c, back)
				want++
			}
		}
	}
}

func TestShape_IndexErrors(t *testing.T) {
	s := coord.Shape{3, 3}
	_, err := s.Index(coord.Of(1))
	assert.ErrorIs(t, err, coord.ErrDimensionMismatch)
	_, err = s.Index(coord.Of(1, 3))
	assert.ErrorIs(t, err, coord.ErrOutOfBounds)
	_, err = s.Coordinate(9)
	assert.ErrorIs(t, err, coord.ErrOutOfBounds)
	_, err = s.Coordinate(-1)
	assert.ErrorIs(t, err, coord.ErrOutOfBounds)
}

func TestCoordinate_CloneEqualString(t *testing.T) {
	c := coord.Of(1, 2, 3)
	d := c.Clone()
	d[0] = 9
	assert.Equal(t, 1, c[0], "clone must not alias")
	assert.False(t, c.Equal(d))
	assert.True(t, c.Equal(coord.Of(1, 2, 3)))
	assert.False(t, c.Equal(coord.Of(1, 2)))
	assert.Equal(t, "(1,2,3)", c.String())
	assert.Nil(t, coord.Coordinate(nil).Clone())
}
