package mesh

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/geometry"
)

// Edge is a curved (circular-arc) block edge between two local vertex
// indices (0-7). The arc passes through ArcPoint. At most one edge per
// local index pair is meaningful within a block.
type Edge struct {
	Index1, Index2 int
	ArcPoint       v3.Vec
}

// NewEdge creates an arc edge between local vertices i1 and i2 passing
// through the given point.
func NewEdge(i1, i2 int, arcPoint v3.Vec) Edge {
	return Edge{Index1: i1, Index2: i2, ArcPoint: arcPoint}
}

// Connects reports whether the edge joins the unordered local index pair
// (i1, i2).
func (e Edge) Connects(i1, i2 int) bool {
	return (e.Index1 == i1 && e.Index2 == i2) || (e.Index1 == i2 && e.Index2 == i1)
}

// Length returns the length of the circular arc from a through e.ArcPoint
// to b. When the three points are collinear (no circle exists) the chord
// length is returned instead.
func (e Edge) Length(a, b v3.Vec) float64 {
	center, ok := circumcenter(a, e.ArcPoint, b)
	if !ok {
		return geometry.Distance(a, b)
	}

	ra := a.Sub(center)
	rm := e.ArcPoint.Sub(center)
	rb := b.Sub(center)
	radius := ra.Length()

	// Total swept angle is the sum of the two sub-arcs so that the arc is
	// forced through the through-point, not around the short way.
	return radius * (angleBetween(ra, rm) + angleBetween(rm, rb))
}

// IsValid reports whether the edge describes a real arc for the given
// endpoint positions: the endpoints are distinct and the through-point is
// not on the chord. Straight "arcs" are dropped by the mesh writer.
func (e Edge) IsValid(a, b v3.Vec) bool {
	if geometry.Coincident(a, b) {
		return false
	}
	_, ok := circumcenter(a, e.ArcPoint, b)
	return ok
}

// circumcenter returns the center of the circle through three points, or
// ok=false when the points are (nearly) collinear.
func circumcenter(p1, p2, p3 v3.Vec) (v3.Vec, bool) {
	u := p2.Sub(p1)
	v := p3.Sub(p1)
	w := u.Cross(v)

	w2 := w.Dot(w)
	if w2 < geometry.Tolerance*geometry.Tolerance {
		return v3.Vec{}, false
	}

	center := p1.Add(
		v.Cross(w).MulScalar(u.Dot(u)).
			Add(w.Cross(u).MulScalar(v.Dot(v))).
			DivScalar(2 * w2))
	return center, true
}

// angleBetween returns the angle between two vectors in [0, pi].
func angleBetween(a, b v3.Vec) float64 {
	cos := a.Dot(b) / (a.Length() * b.Length())
	// Clamp against rounding before acos.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}
