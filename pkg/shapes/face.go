// Package shapes builds common mesh primitives out of hexahedral blocks:
// boxes, cylinders, and cone frustums with an O-grid cross section. Shapes
// produce plain [mesh.Block] values; add them to a [mesh.Mesh] and prepare
// it as usual.
package shapes

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/geometry"
)

// Face is a quad used as the top or bottom of a lofted block: 4 corner
// points and, per side, an optional arc through-point. Side i connects
// Points[i] to Points[(i+1)%4].
type Face struct {
	Points [4]v3.Vec
	Arcs   [4]*v3.Vec
}

// NewFace creates a flat face without curved sides.
func NewFace(points [4]v3.Vec) Face {
	return Face{Points: points}
}

// WithArc returns a copy of the face whose given side passes through the
// arc point.
func (f Face) WithArc(side int, point v3.Vec) Face {
	arcs := f.Arcs
	arcs[side] = &point
	f.Arcs = arcs
	return f
}

// Translate returns the face moved by the given vector.
func (f Face) Translate(v v3.Vec) Face {
	out := Face{}
	for i, p := range f.Points {
		out.Points[i] = p.Add(v)
	}
	for i, a := range f.Arcs {
		if a != nil {
			moved := a.Add(v)
			out.Arcs[i] = &moved
		}
	}
	return out
}

// Rotate returns the face rotated by angle (radians) around the axis
// through origin.
func (f Face) Rotate(axis v3.Vec, angle float64, origin v3.Vec) Face {
	out := Face{}
	for i, p := range f.Points {
		out.Points[i] = geometry.RotateAround(p, axis, angle, origin)
	}
	for i, a := range f.Arcs {
		if a != nil {
			rotated := geometry.RotateAround(*a, axis, angle, origin)
			out.Arcs[i] = &rotated
		}
	}
	return out
}
