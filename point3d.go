package points

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/siiir/points/scalar"
)

// Point3D represents a point in three dimensional space. It embeds the
// x/y plane as a Point2D, so X and Y are reachable directly on the
// value. The zero value is the origin.
//
// Point3D and Point2D are distinct types and never compare equal to
// one another; use XY and WithZ for explicit conversion.
type Point3D[N scalar.Number] struct {
	Point2D[N]
	Z N
}

// NewPoint3D constructs the point (x, y, z).
func NewPoint3D[N scalar.Number](x, y, z N) Point3D[N] {
	return Point3D[N]{Point2D: Point2D[N]{X: x, Y: y}, Z: z}
}

// Point3DFromArray constructs a point from its components in x, y, z
// order.
func Point3DFromArray[N scalar.Number](a [3]N) Point3D[N] {
	return NewPoint3D(a[0], a[1], a[2])
}

// Array returns the components in x, y, z order.
func (p Point3D[N]) Array() [3]N {
	return [3]N{p.X, p.Y, p.Z}
}

// XY returns the projection of p onto the x/y plane, dropping z.
func (p Point3D[N]) XY() Point2D[N] {
	return p.Point2D
}

// Add returns the component-wise sum p+q.
func (p Point3D[N]) Add(q Point3D[N]) Point3D[N] {
	return Point3D[N]{Point2D: p.Point2D.Add(q.Point2D), Z: p.Z + q.Z}
}

// Sub returns the component-wise difference p-q.
func (p Point3D[N]) Sub(q Point3D[N]) Point3D[N] {
	return Point3D[N]{Point2D: p.Point2D.Sub(q.Point2D), Z: p.Z - q.Z}
}

// Neg returns the point with each component negated.
func (p Point3D[N]) Neg() Point3D[N] {
	return Point3D[N]{Point2D: p.Point2D.Neg(), Z: -p.Z}
}

// Equal reports whether p and q have equal components.
func (p Point3D[N]) Equal(q Point3D[N]) bool {
	return p == q
}

// HypotSq returns the sum of squares of the components,
// x*x + y*y + z*z. It returns scalar.ErrOverflow if any intermediate
// value is not representable in N.
func (p Point3D[N]) HypotSq() (N, error) {
	sum, err := p.Point2D.HypotSq()
	if err != nil {
		return 0, err
	}
	zz, ok := scalar.CheckedMul(p.Z, p.Z)
	if !ok {
		return 0, fmt.Errorf("z*z with z=%v: %w", p.Z, scalar.ErrOverflow)
	}
	sum, ok = scalar.CheckedAdd(sum, zz)
	if !ok {
		return 0, fmt.Errorf("x*x + y*y + z*z for %v: %w", p, scalar.ErrOverflow)
	}
	return sum, nil
}

// Hash returns a structural hash of p. Equal points hash equal.
func (p Point3D[N]) Hash() uint64 {
	hashed, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash point: %v", err))
	}
	return hashed
}

// String renders p as "( x, y, z )".
func (p Point3D[N]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", p.X, p.Y, p.Z)
}

// MinPoint3D returns the point whose every component is the smallest
// value representable in N.
func MinPoint3D[N scalar.Number]() Point3D[N] {
	m := scalar.MinValue[N]()
	return NewPoint3D(m, m, m)
}

// MaxPoint3D returns the point whose every component is the largest
// value representable in N.
func MaxPoint3D[N scalar.Number]() Point3D[N] {
	m := scalar.MaxValue[N]()
	return NewPoint3D(m, m, m)
}
