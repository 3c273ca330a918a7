package plot

import (
	"math"

	"github.com/siiir/points"
)

// Rotate returns ps rotated about the origin by the given angles in
// radians, applied in x, y, z axis order.
func Rotate(ps []points.Point3D[float64], ax, ay, az float64) []points.Point3D[float64] {
	fn := rotateFn(ax, ay, az)
	out := make([]points.Point3D[float64], len(ps))
	for i, p := range ps {
		out[i] = fn(p)
	}
	return out
}

// rotateFn returns a function that rotates around (0,0,0).
// Supply angles in radians.
func rotateFn(ax, ay, az float64) func(points.Point3D[float64]) points.Point3D[float64] {
	sx, cx := math.Sincos(ax)
	sy, cy := math.Sincos(ay)
	sz, cz := math.Sincos(az)
	return func(p points.Point3D[float64]) points.Point3D[float64] {
		y, z := p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
		x, z := p.X*cy+z*sy, -p.X*sy+z*cy
		x, y = x*cz-y*sz, x*sz+y*cz
		return points.NewPoint3D(x, y, z)
	}
}

// Project performs a perspective projection of ps onto a cols x rows
// canvas. zoff shifts the scene away from the camera before dividing;
// points at or behind the camera are dropped.
func Project(ps []points.Point3D[float64], cols, rows int, zoff float64) []points.Point2D[float64] {
	halfW := float64(cols) * 0.5
	halfH := float64(rows) * 0.5
	out := make([]points.Point2D[float64], 0, len(ps))
	for _, p := range ps {
		z := p.Z + zoff
		if z <= 0 {
			continue
		}
		invZ := 1 / z
		x := halfW*p.X*invZ + halfW
		y := halfH*p.Y*invZ + halfH
		out = append(out, points.NewPoint2D(x, y))
	}
	return out
}
