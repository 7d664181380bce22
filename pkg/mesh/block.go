// Package mesh models structured hexahedral meshes for the OpenFOAM
// blockMesh generator.
//
// A [Block] is one 8-corner cell of the mesh: it measures its own size,
// resolves per-axis cell counts and gradings, and serializes into one
// blockMeshDict record. Blocks touching the same location share [Vertex]
// identity; the [Mesh] merges coincident corners, assigns global vertex
// and block indices, drains the blocks' deferred sizing requests, and
// writes the complete blockMeshDict.
//
// Sizing works in two phases. During construction, CountToSize and
// GradeToSize only record requests; the geometry they depend on is not
// final until the whole mesh is indexed. [Mesh.Prepare] then executes the
// recorded requests exactly once, in FIFO order.
package mesh

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/errors"
	"github.com/dkastelic/hexmesh/pkg/geometry"
	"github.com/dkastelic/hexmesh/pkg/solver"
)

// Block is a single hexahedral cell description: 8 corner vertices in the
// standard blockMesh numbering, optional curved edges, per-axis cell counts
// and gradings, and patch assignments.
//
// A zero count or grading means "not set": counts can be inherited from
// neighbour blocks during [Mesh.Prepare], and an unset grading serializes
// as 1 (uniform).
type Block struct {
	Vertices [8]*Vertex
	Edges    []Edge

	// NCells is the number of cells along each axis; 0 means undefined.
	NCells [3]int

	// Grading is the simpleGrading ratio along each axis; 0 means undefined.
	Grading [3]float64

	// CellZone is the name of the cell zone the block belongs to ("" for none).
	CellZone string

	// Patches maps a patch name to the block sides assigned to it, in
	// assignment order.
	Patches map[string][]Side

	// Description is echoed as a trailing comment in the block record,
	// useful when debugging a generated blockMeshDict.
	Description string

	// MeshIndex is the global block index, assigned by [Mesh.Prepare].
	MeshIndex int

	deferredCounts   []deferredCount
	deferredGradings []deferredGrading
}

// NewBlock creates a block from 8 vertices and optional curved edges.
// Edge indices refer to the local vertex numbering (0-7).
func NewBlock(vertices [8]*Vertex, edges ...Edge) *Block {
	return &Block{
		Vertices:  vertices,
		Edges:     edges,
		Patches:   map[string][]Side{},
		MeshIndex: UnassignedIndex,
	}
}

// NewBlockFromPoints creates a block from 8 raw corner points, allocating a
// fresh vertex for each. Edge indices refer to the local numbering (0-7).
func NewBlockFromPoints(points [8]v3.Vec, edges ...Edge) *Block {
	var vertices [8]*Vertex
	for i, p := range points {
		vertices[i] = NewVertex(p)
	}
	return NewBlock(vertices, edges...)
}

// IsCountDefined reports whether all three axes have a cell count.
func (b *Block) IsCountDefined() bool {
	return b.NCells[0] > 0 && b.NCells[1] > 0 && b.NCells[2] > 0
}

// IsAnyCountDefined reports whether at least one axis has a cell count.
func (b *Block) IsAnyCountDefined() bool {
	return b.NCells[0] > 0 || b.NCells[1] > 0 || b.NCells[2] > 0
}

// IsGradingDefined reports whether all three axes have a grading.
func (b *Block) IsGradingDefined() bool {
	return b.Grading[0] != 0 && b.Grading[1] != 0 && b.Grading[2] != 0
}

// IsAnyGradingDefined reports whether at least one axis has a grading.
func (b *Block) IsAnyGradingDefined() bool {
	return b.Grading[0] != 0 || b.Grading[1] != 0 || b.Grading[2] != 0
}

// SetCellCount sets the cell count along the given axis directly.
func (b *Block) SetCellCount(axis Axis, count int) {
	b.NCells[axis] = count
}

// Size returns the approximate extent of the block along the given axis:
// the mean of the 4 edge measurements parallel to that axis, using the arc
// length where a curved edge is defined and the straight vertex distance
// otherwise. For non-rectilinear blocks this is an estimate, good enough
// for count and grading resolution.
func (b *Block) Size(axis Axis) float64 {
	var sum float64
	for _, pair := range axisPairs[axis] {
		sum += b.edgeLength(pair[0], pair[1])
	}
	return sum / 4
}

func (b *Block) edgeLength(i1, i2 int) float64 {
	a := b.Vertices[i1].Point
	c := b.Vertices[i2].Point
	for _, e := range b.Edges {
		if e.Connects(i1, i2) {
			return e.Length(a, c)
		}
	}
	return geometry.Distance(a, c)
}

// IndexPair is an unordered pair of global vertex indices. Construct with
// [NewIndexPair] so that equal pairs compare equal regardless of order.
type IndexPair struct {
	A, B int
}

// NewIndexPair returns the normalized (A <= B) pair of the two indices.
func NewIndexPair(a, b int) IndexPair {
	if b < a {
		a, b = b, a
	}
	return IndexPair{A: a, B: b}
}

// AxisVertexPairs returns the global vertex index pairs of the edges
// running along the given axis. Pairs whose vertices merged into the same
// global vertex (collapsed wedge or pyramid corners) are omitted, so the
// result holds at most 4 pairs. Only meaningful after [Mesh.Prepare].
func (b *Block) AxisVertexPairs(axis Axis) []IndexPair {
	var pairs []IndexPair
	for _, pair := range axisPairs[axis] {
		i1 := b.Vertices[pair[0]].MeshIndex
		i2 := b.Vertices[pair[1]].MeshIndex
		if i1 == i2 {
			// Vertices in the same spot; there is no edge here.
			continue
		}
		pairs = append(pairs, NewIndexPair(i1, i2))
	}
	return pairs
}

// AxisFromPair returns the axis along which the given global vertex pair
// runs in this block, or ok=false when no axis matches. Neighbour blocks
// use this to map a shared edge back to their own axis numbering.
func (b *Block) AxisFromPair(pair IndexPair) (Axis, bool) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		for _, p := range b.AxisVertexPairs(axis) {
			if p == pair {
				return axis, true
			}
		}
	}
	return 0, false
}

// SetPatch assigns one or more block sides to the named patch. Repeated
// calls accumulate sides in call order; duplicates are kept as given.
// Returns an error when a side is not one of the six block side names.
func (b *Block) SetPatch(patch string, sides ...Side) error {
	for _, s := range sides {
		if !ValidSide(s) {
			return errors.New(errors.ErrCodeInvalidSide, "unknown block side: %q", string(s))
		}
	}
	if b.Patches == nil {
		b.Patches = map[string][]Side{}
	}
	b.Patches[patch] = append(b.Patches[patch], sides...)
	return nil
}

// Faces returns one formatted face per side registered under the named
// patch, in assignment order: the 4 global vertex indices of the face in
// blockMesh winding order, as "(a b c d)". An unknown patch name yields an
// empty result. Only meaningful after [Mesh.Prepare].
func (b *Block) Faces(patch string) []string {
	sides := b.Patches[patch]
	faces := make([]string, 0, len(sides))
	for _, side := range sides {
		faces = append(faces, b.formatFace(side))
	}
	return faces
}

func (b *Block) formatFace(side Side) string {
	idx := faceMap[side]
	return fmt.Sprintf("(%d %d %d %d)",
		b.Vertices[idx[0]].MeshIndex,
		b.Vertices[idx[1]].MeshIndex,
		b.Vertices[idx[2]].MeshIndex,
		b.Vertices[idx[3]].MeshIndex,
	)
}

// CountToSize requests that the cell count along the given axis be derived
// from the desired cell edge length. The computation is deferred until
// [Mesh.Prepare]; this call only records the request.
func (b *Block) CountToSize(axis Axis, cellSize float64) {
	b.deferredCounts = append(b.deferredCounts, deferredCount{axis: axis, cellSize: cellSize})
}

// resolveCount computes floor(blockSize/cellSize) cells along the axis.
// Truncation is intentional: the resulting cells are never smaller than
// requested.
func (b *Block) resolveCount(axis Axis, cellSize float64) (int, error) {
	if !axis.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidAxis, "axis out of range: %d", int(axis))
	}
	if cellSize <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidBlock, "cell size must be positive: %g", cellSize)
	}

	count := int(b.Size(axis) / cellSize)
	b.NCells[axis] = count
	return count, nil
}

// GradeToSize requests a grading along the given axis such that the
// boundary cell ends up with the desired edge length. With inverse=false
// the last cell is matched; inverse=true flips the ratio so the first cell
// is matched instead. The sign of cellSize is ignored. The computation is
// deferred until [Mesh.Prepare]; this call only records the request.
func (b *Block) GradeToSize(axis Axis, cellSize float64, inverse bool) {
	b.deferredGradings = append(b.deferredGradings, deferredGrading{
		axis:     axis,
		cellSize: cellSize,
		inverse:  inverse,
	})
}

// resolveGrading finds the geometric grading for the axis by root-finding
// the ratio of a simulated cell cascade, rescaled so the simulated total
// matches the measured block size.
func (b *Block) resolveGrading(axis Axis, cellSize float64, inverse bool) error {
	if !axis.Valid() {
		return errors.New(errors.ErrCodeInvalidAxis, "axis out of range: %d", int(axis))
	}

	n := b.NCells[axis]
	blockSize := b.Size(axis)
	size := math.Abs(cellSize)

	if size > blockSize {
		return errors.New(errors.ErrCodeSizeExceedsBlock,
			"cell size is larger than block size: %g > %g", size, blockSize)
	}

	// A cascade of 0 or 1 cells has nothing to grade.
	if n <= 1 {
		b.Grading[axis] = 1
		return nil
	}

	var first, last float64

	// lastCell simulates n cells starting at 1 and multiplying by ratio,
	// rescales the cascade so its total matches the block size, and
	// returns the residual against the requested boundary cell size.
	// A sample shrinking below the geometric tolerance makes the trial
	// non-evaluable; the solver treats the NaN as divergence.
	lastCell := func(ratio float64) float64 {
		sample := 1.0
		var total float64
		for i := 0; i < n; i++ {
			total += sample
			sample *= ratio
			if math.Abs(sample) < geometry.Tolerance {
				return math.NaN()
			}
		}
		scale := blockSize / total
		first = scale
		last = sample * scale
		return size - last
	}

	if _, err := solver.Newton(lastCell, 1); err != nil {
		return errors.Wrap(errors.ErrCodeNoConvergence, err,
			"no grading along %s matches boundary cell size %g", axis, size)
	}

	if inverse {
		b.Grading[axis] = last / first
	} else {
		b.Grading[axis] = first / last
	}
	return nil
}

// Record serializes the block into its blockMeshDict record:
//
//	hex ( v0 v1 v2 v3 v4 v5 v6 v7 ) zone (nx ny nz) simpleGrading (gx gy gz) // index description
//
// An unset grading serializes as 1. Unset cell counts are an error: the
// caller must resolve or set all counts before writing the mesh.
func (b *Block) Record() (string, error) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		if b.NCells[axis] <= 0 {
			return "", errors.New(errors.ErrCodeUnresolvedCount,
				"block %d has no cell count along %s", b.MeshIndex, axis)
		}
	}

	indices := make([]string, len(b.Vertices))
	for i, v := range b.Vertices {
		indices[i] = strconv.Itoa(v.MeshIndex)
	}

	return fmt.Sprintf("hex ( %s ) %s (%d %d %d) simpleGrading (%s %s %s) // %d %s",
		strings.Join(indices, " "),
		b.CellZone,
		b.NCells[0], b.NCells[1], b.NCells[2],
		formatGrading(b.Grading[0]), formatGrading(b.Grading[1]), formatGrading(b.Grading[2]),
		b.MeshIndex, b.Description,
	), nil
}

// formatGrading renders a grading ratio for the dict record. Unset (0)
// becomes the uniform default 1; whole ratios keep one decimal so a set
// grading is distinguishable from the default.
func formatGrading(g float64) string {
	if g == 0 {
		return "1"
	}
	if g == math.Trunc(g) {
		return strconv.FormatFloat(g, 'f', 1, 64)
	}
	return strconv.FormatFloat(g, 'g', -1, 64)
}
