package geometry

import (
	"rational/src/math/rational"
)

// Plane holds the points p where Normal·p + Offset == 0. The normal points
// to the outside.
type Plane struct {
	Normal Point
	Offset rational.Rational
}

// PlaneFromVertices returns the plane through a, b and c with normal
// (b-a)×(c-a).
func PlaneFromVertices(a, b, c Point) Plane {
	normal := b.Subtract(a).Cross(c.Subtract(a))
	return Plane{
		Normal: normal,
		Offset: normal.Dot(a).Neg(),
	}
}

// Distance is the signed, unnormalized distance of p from the plane.
func (pl Plane) Distance(p Point) rational.Rational {
	return pl.Normal.Dot(p).Add(pl.Offset)
}

func IsPointInsidePlanes(planes []Plane, point Point, margin rational.Rational) bool {
	for i := 0; i < len(planes); i++ {
		dist := planes[i].Distance(point).Sub(margin)
		if dist.Sign() > 0 {
			return false
		}
	}
	return true
}

func AreVerticesBehindPlane(plane Plane, vertices []Point, margin rational.Rational) bool {
	for i := 0; i < len(vertices); i++ {
		dist := plane.Distance(vertices[i]).Sub(margin)
		if dist.Sign() > 0 {
			return false
		}
	}
	return true
}
