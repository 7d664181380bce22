package shapes

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dkastelic/hexmesh/pkg/geometry"
	"github.com/dkastelic/hexmesh/pkg/mesh"
)

// Block-side and axis mapping shared by the swept circular shapes, tied to
// how faces enter the loft: the radial axis of a shell block runs from the
// core outward, the tangential axis along the rim, the axial axis along
// the sweep.
const (
	bottomPatchSide = mesh.SideBottom
	topPatchSide    = mesh.SideTop
	outerPatchSide  = mesh.SideRight

	axialAxis      = mesh.AxisZ
	radialAxis     = mesh.AxisX
	tangentialAxis = mesh.AxisY
)

// Frustum is a truncated cone between two axis points, meshed as an
// O-grid: one core block and 4 shell blocks around it.
type Frustum struct {
	Core  *Loft
	Shell [4]*Loft
}

// NewFrustum creates a cone frustum with its axis between axisPoint1 and
// axisPoint2. radiusPoint1 sets the starting rim; radius2 is the end
// radius (the end rim point is derived so both rims line up).
func NewFrustum(axisPoint1, axisPoint2, radiusPoint1 v3.Vec, radius2 float64) *Frustum {
	axis := axisPoint2.Sub(axisPoint1)

	circle1 := NewCircle(axisPoint1, radiusPoint1, axis)
	circle2 := circle1.Translate(axis).Scale(radius2)

	return loftBetween(circle1, circle2)
}

// NewCylinder creates a frustum with constant radius.
func NewCylinder(axisPoint1, axisPoint2, radiusPoint1 v3.Vec) *Frustum {
	return NewFrustum(axisPoint1, axisPoint2, radiusPoint1,
		geometry.Distance(axisPoint1, radiusPoint1))
}

// loftBetween connects two O-grid cross sections into 5 blocks.
func loftBetween(c1, c2 Circle) *Frustum {
	f := &Frustum{Core: NewLoft(c1.Core, c2.Core, [4]*v3.Vec{})}
	for i := 0; i < 4; i++ {
		f.Shell[i] = NewLoft(c1.Shell[i], c2.Shell[i], [4]*v3.Vec{})
	}
	return f
}

// Lofts returns all 5 lofts, core first.
func (f *Frustum) Lofts() []*Loft {
	return append([]*Loft{f.Core}, f.Shell[:]...)
}

// Blocks returns the 5 blocks of the shape, core first.
func (f *Frustum) Blocks() []*mesh.Block {
	lofts := f.Lofts()
	blocks := make([]*mesh.Block, len(lofts))
	for i, l := range lofts {
		blocks[i] = l.Block()
	}
	return blocks
}

// AddTo adds all blocks of the shape to the mesh.
func (f *Frustum) AddTo(m *mesh.Mesh) {
	for _, b := range f.Blocks() {
		m.AddBlock(b)
	}
}

// SetBottomPatch assigns the starting cross section to a patch.
func (f *Frustum) SetBottomPatch(patch string) error {
	return f.setPatchAll(patch, bottomPatchSide)
}

// SetTopPatch assigns the ending cross section to a patch.
func (f *Frustum) SetTopPatch(patch string) error {
	return f.setPatchAll(patch, topPatchSide)
}

func (f *Frustum) setPatchAll(patch string, side mesh.Side) error {
	for _, b := range f.Blocks() {
		if err := b.SetPatch(patch, side); err != nil {
			return err
		}
	}
	return nil
}

// SetOuterPatch assigns the curved outer wall (shell blocks only) to a
// patch.
func (f *Frustum) SetOuterPatch(patch string) error {
	for _, s := range f.Shell {
		if err := s.SetPatch(patch, outerPatchSide); err != nil {
			return err
		}
	}
	return nil
}

// SetCellZone assigns all blocks of the shape to a cell zone.
func (f *Frustum) SetCellZone(zone string) {
	for _, b := range f.Blocks() {
		b.CellZone = zone
	}
}

// SetAxialCellCount sets the cell count along the sweep axis. Setting it
// on one shell block is enough; mesh preparation copies it to the blocks
// sharing those edges.
func (f *Frustum) SetAxialCellCount(count int) {
	f.Shell[0].SetCellCount(axialAxis, count)
}

// SetRadialCellCount sets the cell count from the core to the rim.
func (f *Frustum) SetRadialCellCount(count int) {
	f.Shell[0].SetCellCount(radialAxis, count)
}

// SetTangentialCellCount sets the cell count along the rim, via the core
// block's two in-plane axes.
func (f *Frustum) SetTangentialCellCount(count int) {
	f.Core.SetCellCount(radialAxis, count)
	f.Core.SetCellCount(tangentialAxis, count)
}

// SetAxialCellSize requests an axial grading so the last cells of the
// sweep match the given size. Deferred until mesh preparation.
func (f *Frustum) SetAxialCellSize(size float64) {
	f.Core.GradeToSize(axialAxis, size, false)
}

// SetOuterCellSize requests a radial grading so the cells at the outer
// wall match the given size. Deferred until mesh preparation; the other
// shell blocks inherit the grading through the shared edges.
func (f *Frustum) SetOuterCellSize(size float64) {
	f.Shell[0].GradeToSize(radialAxis, size, false)
}
