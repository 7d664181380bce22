package shapes

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/mesh"
)

// Loft is the operation connecting two faces into one block: the bottom
// face becomes local vertices 0-3, the top face 4-7, and face arc points
// become curved block edges. Optional side arcs curve the four vertical
// edges (used by swept shapes).
type Loft struct {
	block *mesh.Block
}

// NewLoft lofts the bottom face to the top face. sideArcs may be nil; when
// given, sideArcs[i] curves the vertical edge from bottom corner i to top
// corner i.
func NewLoft(bottom, top Face, sideArcs [4]*v3.Vec) *Loft {
	var points [8]v3.Vec
	copy(points[0:4], bottom.Points[:])
	copy(points[4:8], top.Points[:])

	var edges []mesh.Edge
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		if a := bottom.Arcs[i]; a != nil {
			edges = append(edges, mesh.NewEdge(i, next, *a))
		}
		if a := top.Arcs[i]; a != nil {
			edges = append(edges, mesh.NewEdge(4+i, 4+next, *a))
		}
		if a := sideArcs[i]; a != nil {
			edges = append(edges, mesh.NewEdge(i, 4+i, *a))
		}
	}

	return &Loft{block: mesh.NewBlockFromPoints(points, edges...)}
}

// Block returns the block produced by the loft.
func (l *Loft) Block() *mesh.Block { return l.block }

// SetCellCount sets the cell count of the underlying block along axis.
func (l *Loft) SetCellCount(axis mesh.Axis, count int) {
	l.block.SetCellCount(axis, count)
}

// GradeToSize records a deferred grading request on the underlying block.
func (l *Loft) GradeToSize(axis mesh.Axis, cellSize float64, inverse bool) {
	l.block.GradeToSize(axis, cellSize, inverse)
}

// SetPatch assigns block sides of the underlying block to a patch.
func (l *Loft) SetPatch(patch string, sides ...mesh.Side) error {
	return l.block.SetPatch(patch, sides...)
}
