package geometry

import (
	"rational/src/math/rational"
)

// Point is a 3-D point with exact rational coordinates.
type Point struct {
	X, Y, Z rational.Rational
}

func NewPoint(x, y, z rational.Rational) Point {
	return Point{X: x, Y: y, Z: z}
}

func PointFromInts(x, y, z int64) Point {
	return Point{X: rational.FromInt(x), Y: rational.FromInt(y), Z: rational.FromInt(z)}
}

// PointFromFloats converts each coordinate with rational.TryFromFloat64, so
// 0.1 becomes exactly 1/10.
func PointFromFloats(x, y, z float64) (Point, error) {
	var p Point
	var err error
	if p.X, err = rational.TryFromFloat64(x); err != nil {
		return Point{}, err
	}
	if p.Y, err = rational.TryFromFloat64(y); err != nil {
		return Point{}, err
	}
	if p.Z, err = rational.TryFromFloat64(z); err != nil {
		return Point{}, err
	}
	return p, nil
}

func (p Point) IsZero() bool {
	return p.X.IsZero() && p.Y.IsZero() && p.Z.IsZero()
}

func (p Point) Equal(b Point) bool {
	return p.X.Equal(b.X) && p.Y.Equal(b.Y) && p.Z.Equal(b.Z)
}

func (p Point) Add(b Point) Point {
	return Point{
		X: p.X.Add(b.X),
		Y: p.Y.Add(b.Y),
		Z: p.Z.Add(b.Z),
	}
}

func (p Point) Subtract(b Point) Point {
	return Point{
		X: p.X.Sub(b.X),
		Y: p.Y.Sub(b.Y),
		Z: p.Z.Sub(b.Z),
	}
}

func (p Point) Scale(s rational.Rational) Point {
	return Point{
		X: p.X.Mul(s),
		Y: p.Y.Mul(s),
		Z: p.Z.Mul(s),
	}
}

func (p Point) Dot(b Point) rational.Rational {
	return p.X.Mul(b.X).Add(p.Y.Mul(b.Y)).Add(p.Z.Mul(b.Z))
}

func (p Point) Cross(b Point) Point {
	return Point{
		X: p.Y.Mul(b.Z).Sub(p.Z.Mul(b.Y)), // y * b.z - z * b.y
		Y: p.Z.Mul(b.X).Sub(p.X.Mul(b.Z)), // z * b.x - x * b.z
		Z: p.X.Mul(b.Y).Sub(p.Y.Mul(b.X)), // x * b.y - y * b.x
	}
}

func (p Point) XScalar() float64 {
	return p.X.Float64()
}

func (p Point) YScalar() float64 {
	return p.Y.Float64()
}

func (p Point) ZScalar() float64 {
	return p.Z.Float64()
}

// Centroid returns the mean of points. It panics if points is empty.
func Centroid(points ...Point) Point {
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(rational.FromInt(int64(len(points))).Inv())
}
