// Package geometry provides the 3-D point helpers shared across hexmesh.
//
// Points and vectors are represented with [v3.Vec] from the sdfx CAD
// library, so mesh code composes directly with its vector operations
// (Add, Sub, Cross, Length, ...) instead of reimplementing them.
package geometry

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Tolerance is the geometric tolerance used throughout hexmesh.
// Points closer than this are treated as coincident (and merged into a
// single mesh vertex), and grading cascade samples smaller than this are
// treated as degenerate. The value follows the reference blockMesh
// tooling; meshes are expected to be defined in O(1) length units.
const Tolerance = 1e-7

// Distance returns the Euclidean distance between two points.
func Distance(a, b v3.Vec) float64 {
	return b.Sub(a).Length()
}

// Unit returns the unit vector pointing in the direction of v.
func Unit(v v3.Vec) v3.Vec {
	return v.Normalize()
}

// Coincident reports whether two points lie within Tolerance of each other.
func Coincident(a, b v3.Vec) bool {
	return Distance(a, b) < Tolerance
}

// RotateAround rotates point p by angle (radians) around the axis through
// origin, using the Rodrigues rotation formula. The axis does not need to
// be normalized.
func RotateAround(p, axis v3.Vec, angle float64, origin v3.Vec) v3.Vec {
	u := axis.Normalize()
	r := p.Sub(origin)

	sin, cos := math.Sincos(angle)
	rotated := r.MulScalar(cos).
		Add(u.Cross(r).MulScalar(sin)).
		Add(u.MulScalar(u.Dot(r) * (1 - cos)))

	return origin.Add(rotated)
}
