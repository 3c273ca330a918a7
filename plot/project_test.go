package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siiir/points"
)

func TestRotateIdentity(t *testing.T) {
	ps := []points.Point3D[float64]{
		points.NewPoint3D(1.0, 2, 3),
		points.NewPoint3D(-1.0, 0, 0.5),
	}
	got := Rotate(ps, 0, 0, 0)
	for i := range ps {
		assert.InDelta(t, ps[i].X, got[i].X, 1e-12)
		assert.InDelta(t, ps[i].Y, got[i].Y, 1e-12)
		assert.InDelta(t, ps[i].Z, got[i].Z, 1e-12)
	}
}

func TestRotateQuarterTurnZ(t *testing.T) {
	ps := []points.Point3D[float64]{points.NewPoint3D(1.0, 0, 0)}
	got := Rotate(ps, 0, 0, math.Pi/2)
	assert.InDelta(t, 0, got[0].X, 1e-12)
	assert.InDelta(t, 1, got[0].Y, 1e-12)
	assert.InDelta(t, 0, got[0].Z, 1e-12)
}

func TestRotatePreservesDistance(t *testing.T) {
	p := points.NewPoint3D(1.0, 2, 3)
	before, err := p.HypotSq()
	assert.NoError(t, err)

	got := Rotate([]points.Point3D[float64]{p}, 0.3, 1.1, -0.7)
	after, err := got[0].HypotSq()
	assert.NoError(t, err)
	assert.InDelta(t, before, after, 1e-9)
}

func TestProjectCenter(t *testing.T) {
	// A point on the camera axis lands in the canvas center.
	ps := []points.Point3D[float64]{points.NewPoint3D(0.0, 0, 0)}
	got := Project(ps, 40, 20, 5)
	assert.Len(t, got, 1)
	assert.InDelta(t, 20, got[0].X, 1e-12)
	assert.InDelta(t, 10, got[0].Y, 1e-12)
}

func TestProjectDropsBehindCamera(t *testing.T) {
	ps := []points.Point3D[float64]{
		points.NewPoint3D(0.0, 0, -5), // exactly at the camera
		points.NewPoint3D(0.0, 0, -6), // behind it
		points.NewPoint3D(0.0, 0, 0),
	}
	got := Project(ps, 40, 20, 5)
	assert.Len(t, got, 1)
}

func TestProjectNearerIsLarger(t *testing.T) {
	near := Project([]points.Point3D[float64]{points.NewPoint3D(1.0, 0, -2)}, 40, 20, 5)
	far := Project([]points.Point3D[float64]{points.NewPoint3D(1.0, 0, 2)}, 40, 20, 5)
	assert.Greater(t, near[0].X, far[0].X)
}
