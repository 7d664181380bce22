package shapes

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/geometry"
)

// O-grid proportions of a circular cross section: the central square's
// corners sit at coreVertexRatio of the radius, its curved sides bulge out
// to coreEdgeRatio. Chosen for reasonable cell-size transition between the
// core and the shell blocks.
const (
	coreVertexRatio = 0.7
	coreEdgeRatio   = 0.62
)

// Circle is a circular cross section split into the 5 faces of an O-grid:
// a central square core and 4 shell faces between the core and the rim.
// Lofting two circles produces a cylinder or frustum.
type Circle struct {
	Center      v3.Vec
	RadiusPoint v3.Vec
	Normal      v3.Vec

	Core  Face
	Shell [4]Face
}

// NewCircle creates the O-grid cross section of the circle around center,
// through radiusPoint, in the plane normal to normal.
func NewCircle(center, radiusPoint, normal v3.Vec) Circle {
	c := Circle{Center: center, RadiusPoint: radiusPoint, Normal: normal}
	radiusVector := radiusPoint.Sub(center)

	rotate := func(p v3.Vec, angle float64) v3.Vec {
		return geometry.RotateAround(p, normal, angle, center)
	}

	// Core square: corners every 90 degrees, curved sides bulging out at
	// the 45 degree bisectors.
	corePoint := center.Add(radiusVector.MulScalar(coreVertexRatio))
	edgePoint := center.Add(radiusVector.MulScalar(coreEdgeRatio))

	var corePoints [4]v3.Vec
	for i := 0; i < 4; i++ {
		corePoints[i] = rotate(corePoint, float64(i)*math.Pi/2)
	}
	c.Core = NewFace(corePoints)
	for i := 0; i < 4; i++ {
		c.Core = c.Core.WithArc(i, rotate(edgePoint, math.Pi/4+float64(i)*math.Pi/2))
	}

	// One shell face between core side 0-1 and the rim, rotated into the
	// other three quadrants. Only the rim side is curved.
	shellFace := NewFace([4]v3.Vec{
		corePoints[0],
		radiusPoint,
		rotate(radiusPoint, math.Pi/2),
		corePoints[1],
	}).WithArc(1, rotate(c.RadiusPoint, math.Pi/4))

	for i := 0; i < 4; i++ {
		c.Shell[i] = shellFace.Rotate(normal, float64(i)*math.Pi/2, center)
	}

	return c
}

// Radius returns the circle radius.
func (c Circle) Radius() float64 {
	return geometry.Distance(c.Center, c.RadiusPoint)
}

// Translate returns the circle moved by the given vector. The normal is
// unchanged.
func (c Circle) Translate(v v3.Vec) Circle {
	return NewCircle(c.Center.Add(v), c.RadiusPoint.Add(v), c.Normal)
}

// Rotate returns the circle rotated by angle around the axis through
// origin.
func (c Circle) Rotate(axis v3.Vec, angle float64, origin v3.Vec) Circle {
	return NewCircle(
		geometry.RotateAround(c.Center, axis, angle, origin),
		geometry.RotateAround(c.RadiusPoint, axis, angle, origin),
		geometry.RotateAround(c.Normal, axis, angle, v3.Vec{}),
	)
}

// Scale returns the circle rebuilt with a new radius, keeping center and
// normal.
func (c Circle) Scale(newRadius float64) Circle {
	direction := geometry.Unit(c.RadiusPoint.Sub(c.Center))
	return NewCircle(c.Center, c.Center.Add(direction.MulScalar(newRadius)), c.Normal)
}
