package mesh

import (
	"errors"

	hexerrors "github.com/dkastelic/hexmesh/pkg/errors"
	"github.com/dkastelic/hexmesh/pkg/geometry"
)

// ErrAlreadyPrepared is returned by [Mesh.Prepare] when the mesh has
// already been prepared. Preparation assigns indices and drains the
// deferred queues exactly once.
var ErrAlreadyPrepared = errors.New("mesh has already been prepared")

// ErrNotPrepared is returned by [Mesh.WriteDict] when the mesh has not
// been prepared; writing before index assignment would emit garbage
// indices.
var ErrNotPrepared = errors.New("mesh has not been prepared")

// Mesh owns the blocks of one blockMeshDict and the mesh-wide vertex list.
// Blocks are added during construction; Prepare then merges coincident
// corners into shared vertices, assigns global indices, propagates cell
// counts and gradings between neighbour blocks, and executes the blocks'
// deferred sizing requests.
//
// A Mesh is not safe for concurrent use; the whole model is strictly
// single-threaded and ordering-based (construct, prepare, write).
type Mesh struct {
	Vertices []*Vertex
	Blocks   []*Block

	// PatchTypes overrides the boundary type written for a patch
	// (default "patch"), e.g. "wall" or "empty".
	PatchTypes map[string]string

	prepared bool
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{PatchTypes: map[string]string{}}
}

// AddBlock adds a block to the mesh. Corner merging and index assignment
// happen later, in [Prepare]; until then the block keeps its own vertices.
func (m *Mesh) AddBlock(b *Block) {
	m.Blocks = append(m.Blocks, b)
}

// Prepared reports whether Prepare has run.
func (m *Mesh) Prepared() bool { return m.prepared }

// Prepare finalizes the mesh. It runs exactly once, after all blocks have
// been added, and performs in order:
//
//  1. Corner merging: block vertices within the geometric tolerance of an
//     already-registered vertex are replaced by it, so neighbouring blocks
//     share vertex identity.
//  2. Index assignment: every unique vertex and every block receives its
//     global mesh index.
//  3. Deferred counts: all queued count-to-size requests run, FIFO per
//     block, then axes without a count inherit it from a neighbour block
//     sharing the corresponding edge pair.
//  4. Deferred gradings: all queued grade-to-size requests run, FIFO per
//     block, then unset gradings inherit from neighbours the same way.
//
// The first failure aborts preparation and is returned; nothing is retried.
func (m *Mesh) Prepare() error {
	if m.prepared {
		return ErrAlreadyPrepared
	}

	m.mergeVertices()

	for i, b := range m.Blocks {
		b.MeshIndex = i
	}

	for _, b := range m.Blocks {
		if err := b.DrainCounts(); err != nil {
			return err
		}
	}
	m.propagateCounts()

	for _, b := range m.Blocks {
		if err := b.DrainGradings(); err != nil {
			return err
		}
	}
	m.propagateGradings()

	m.prepared = true
	return nil
}

// mergeVertices deduplicates block corners into the mesh-wide vertex list
// and assigns global vertex indices. Points within [geometry.Tolerance]
// of a registered vertex alias that vertex.
func (m *Mesh) mergeVertices() {
	for _, b := range m.Blocks {
		for i, v := range b.Vertices {
			b.Vertices[i] = m.registerVertex(v)
		}
	}
}

func (m *Mesh) registerVertex(v *Vertex) *Vertex {
	if v.MeshIndex != UnassignedIndex {
		// Already registered, possibly through another block sharing it.
		return v
	}
	for _, existing := range m.Vertices {
		if geometry.Coincident(existing.Point, v.Point) {
			return existing
		}
	}
	v.MeshIndex = len(m.Vertices)
	m.Vertices = append(m.Vertices, v)
	return v
}

// propagateCounts copies cell counts onto axes that have none from
// neighbour blocks sharing the corresponding edge pair, repeating until no
// more counts can be filled in.
func (m *Mesh) propagateCounts() {
	for changed := true; changed; {
		changed = false
		for _, b := range m.Blocks {
			for axis := AxisX; axis <= AxisZ; axis++ {
				if b.NCells[axis] > 0 {
					continue
				}
				if count, ok := m.neighbourCount(b, axis); ok {
					b.NCells[axis] = count
					changed = true
				}
			}
		}
	}
}

func (m *Mesh) neighbourCount(b *Block, axis Axis) (int, bool) {
	for _, pair := range b.AxisVertexPairs(axis) {
		for _, other := range m.Blocks {
			if other == b {
				continue
			}
			otherAxis, ok := other.AxisFromPair(pair)
			if !ok || other.NCells[otherAxis] <= 0 {
				continue
			}
			return other.NCells[otherAxis], true
		}
	}
	return 0, false
}

// propagateGradings mirrors propagateCounts for grading ratios, so a
// grading requested on one block spreads to the neighbours that share its
// graded edges.
func (m *Mesh) propagateGradings() {
	for changed := true; changed; {
		changed = false
		for _, b := range m.Blocks {
			for axis := AxisX; axis <= AxisZ; axis++ {
				if b.Grading[axis] != 0 {
					continue
				}
				if g, ok := m.neighbourGrading(b, axis); ok {
					b.Grading[axis] = g
					changed = true
				}
			}
		}
	}
}

func (m *Mesh) neighbourGrading(b *Block, axis Axis) (float64, bool) {
	for _, pair := range b.AxisVertexPairs(axis) {
		for _, other := range m.Blocks {
			if other == b {
				continue
			}
			otherAxis, ok := other.AxisFromPair(pair)
			if !ok || other.Grading[otherAxis] == 0 {
				continue
			}
			return other.Grading[otherAxis], true
		}
	}
	return 0, false
}

// uniqueEdges returns the curved edges of all blocks that describe real
// arcs, deduplicated by their global vertex index pair.
func (m *Mesh) uniqueEdges() []globalEdge {
	seen := map[IndexPair]bool{}
	var result []globalEdge

	for _, b := range m.Blocks {
		for _, e := range b.Edges {
			v1 := b.Vertices[e.Index1]
			v2 := b.Vertices[e.Index2]
			if !e.IsValid(v1.Point, v2.Point) {
				continue
			}
			pair := NewIndexPair(v1.MeshIndex, v2.MeshIndex)
			if pair.A == pair.B || seen[pair] {
				continue
			}
			seen[pair] = true
			result = append(result, globalEdge{
				Index1:   v1.MeshIndex,
				Index2:   v2.MeshIndex,
				ArcPoint: e.ArcPoint,
			})
		}
	}
	return result
}

// checkResolved verifies that every block has a full set of cell counts,
// so writing cannot emit a half-resolved mesh.
func (m *Mesh) checkResolved() error {
	for _, b := range m.Blocks {
		if !b.IsCountDefined() {
			return hexerrors.New(hexerrors.ErrCodeUnresolvedCount,
				"block %d (%s) has unresolved cell counts %v", b.MeshIndex, b.Description, b.NCells)
		}
	}
	return nil
}
