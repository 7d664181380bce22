package shapes

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/mesh"
)

// NewBox creates a single axis-aligned block between corner and
// corner+size, in the standard blockMesh corner numbering.
func NewBox(corner, size v3.Vec) *mesh.Block {
	far := corner.Add(size)
	return mesh.NewBlockFromPoints([8]v3.Vec{
		corner,
		{X: far.X, Y: corner.Y, Z: corner.Z},
		{X: far.X, Y: far.Y, Z: corner.Z},
		{X: corner.X, Y: far.Y, Z: corner.Z},
		{X: corner.X, Y: corner.Y, Z: far.Z},
		{X: far.X, Y: corner.Y, Z: far.Z},
		far,
		{X: corner.X, Y: far.Y, Z: far.Z},
	})
}
