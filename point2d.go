// Package points provides value types representing points in two and
// three dimensional space.
//
// Point2D and Point3D are generic over any integer or floating-point
// scalar type and support addition, subtraction, negation and
// comparison. Equality follows the scalar type's own semantics, so the
// usual floating-point caveats apply: a point with a NaN component is
// not equal to itself.
package points

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/siiir/points/scalar"
)

// Point2D represents a point in two dimensional space. The zero value
// is the origin. Point2D is a plain value type: it is copied on
// assignment and comparable with ==.
type Point2D[N scalar.Number] struct {
	X N
	Y N
}

// NewPoint2D constructs the point (x, y).
func NewPoint2D[N scalar.Number](x, y N) Point2D[N] {
	return Point2D[N]{X: x, Y: y}
}

// Point2DFromArray constructs a point from its components in x, y
// order.
func Point2DFromArray[N scalar.Number](a [2]N) Point2D[N] {
	return Point2D[N]{X: a[0], Y: a[1]}
}

// Array returns the components in x, y order.
func (p Point2D[N]) Array() [2]N {
	return [2]N{p.X, p.Y}
}

// Add returns the component-wise sum p+q. Like Go scalar arithmetic it
// wraps on integer overflow; see HypotSq for a checked operation.
func (p Point2D[N]) Add(q Point2D[N]) Point2D[N] {
	return Point2D[N]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p-q.
func (p Point2D[N]) Sub(q Point2D[N]) Point2D[N] {
	return Point2D[N]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the point with each component negated.
func (p Point2D[N]) Neg() Point2D[N] {
	return Point2D[N]{X: -p.X, Y: -p.Y}
}

// Equal reports whether p and q have equal components.
func (p Point2D[N]) Equal(q Point2D[N]) bool {
	return p == q
}

// WithZ lifts p into three dimensional space with the given z
// component.
func (p Point2D[N]) WithZ(z N) Point3D[N] {
	return Point3D[N]{Point2D: p, Z: z}
}

// HypotSq returns the sum of squares of the components, x*x + y*y.
// It returns scalar.ErrOverflow if any intermediate value is not
// representable in N.
func (p Point2D[N]) HypotSq() (N, error) {
	xx, ok := scalar.CheckedMul(p.X, p.X)
	if !ok {
		return 0, fmt.Errorf("x*x with x=%v: %w", p.X, scalar.ErrOverflow)
	}
	yy, ok := scalar.CheckedMul(p.Y, p.Y)
	if !ok {
		return 0, fmt.Errorf("y*y with y=%v: %w", p.Y, scalar.ErrOverflow)
	}
	sum, ok := scalar.CheckedAdd(xx, yy)
	if !ok {
		return 0, fmt.Errorf("x*x + y*y for %v: %w", p, scalar.ErrOverflow)
	}
	return sum, nil
}

// Hash returns a structural hash of p. Equal points hash equal.
func (p Point2D[N]) Hash() uint64 {
	hashed, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash point: %v", err))
	}
	return hashed
}

// String renders p as "( x, y )".
func (p Point2D[N]) String() string {
	return fmt.Sprintf("( %v, %v )", p.X, p.Y)
}

// MinPoint2D returns the point whose every component is the smallest
// value representable in N.
func MinPoint2D[N scalar.Number]() Point2D[N] {
	m := scalar.MinValue[N]()
	return Point2D[N]{X: m, Y: m}
}

// MaxPoint2D returns the point whose every component is the largest
// value representable in N.
func MaxPoint2D[N scalar.Number]() Point2D[N] {
	m := scalar.MaxValue[N]()
	return Point2D[N]{X: m, Y: m}
}
