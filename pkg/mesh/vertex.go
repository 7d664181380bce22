package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// UnassignedIndex is the mesh index of a vertex or block before the mesh
// has been prepared.
const UnassignedIndex = -1

// Vertex is a mesh corner point. Vertices are shared by identity between
// neighbouring blocks that touch the same location; [Mesh.Prepare] merges
// coincident corners and assigns each surviving vertex a global mesh index
// exactly once.
type Vertex struct {
	Point     v3.Vec
	MeshIndex int
}

// NewVertex creates an unindexed vertex at the given point.
func NewVertex(p v3.Vec) *Vertex {
	return &Vertex{Point: p, MeshIndex: UnassignedIndex}
}
