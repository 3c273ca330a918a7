package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siiir/points"
)

func TestCanvasEmpty(t *testing.T) {
	c := NewCanvas(3, 2)
	assert.Equal(t, 3, c.Cols())
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, "   \n   ", c.String())
}

func TestCanvasMark(t *testing.T) {
	c := NewCanvas(4, 3)
	assert.True(t, c.Mark(points.NewPoint2D(1.0, 1.0), '*'))
	assert.Equal(t, "    \n *  \n    ", c.String())

	// Coordinates are truncated, not rounded.
	assert.True(t, c.Mark(points.NewPoint2D(3.9, 2.9), 'o'))
	assert.Equal(t, "    \n *  \n   o", c.String())
}

func TestCanvasMarkOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 3)
	assert.False(t, c.Mark(points.NewPoint2D(-0.5, 1.0), '*'))
	assert.False(t, c.Mark(points.NewPoint2D(1.0, -0.5), '*'))
	assert.False(t, c.Mark(points.NewPoint2D(4.0, 1.0), '*'))
	assert.False(t, c.Mark(points.NewPoint2D(1.0, 3.0), '*'))
	assert.Equal(t, "    \n    \n    ", c.String())
}

func TestCanvasMarkNonFinite(t *testing.T) {
	c := NewCanvas(4, 3)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e30, -1e30} {
		assert.NotPanics(t, func() {
			assert.False(t, c.Mark(points.NewPoint2D(v, 1.0), '*'), "x=%v", v)
			assert.False(t, c.Mark(points.NewPoint2D(1.0, v), '*'), "y=%v", v)
		})
	}
	assert.Equal(t, "    \n    \n    ", c.String())
}

func TestCanvasMarkWide(t *testing.T) {
	c := NewCanvas(4, 1)
	// A double-width rune shadows the next cell.
	assert.True(t, c.Mark(points.NewPoint2D(0.0, 0.0), '世'))
	assert.Equal(t, "世  ", c.String())

	// Dropped when it would cross the right edge.
	assert.False(t, c.Mark(points.NewPoint2D(3.0, 0.0), '世'))
}

func TestCanvasMarkAll(t *testing.T) {
	c := NewCanvas(4, 4)
	ps := []points.Point2D[float64]{
		points.NewPoint2D(0.0, 0),
		points.NewPoint2D(2.0, 2),
		points.NewPoint2D(9.0, 9), // off canvas
	}
	assert.Equal(t, 2, c.MarkAll(ps, '*'))
	assert.Equal(t, 2, strings.Count(c.String(), "*"))
}
