package mesh

// Axis identifies one of the three local directions of a hexahedral block.
type Axis int

// Block axes in the standard blockMesh corner numbering.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Valid reports whether the axis is one of X, Y, Z.
func (a Axis) Valid() bool { return a >= AxisX && a <= AxisZ }

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "invalid"
}

// Side names one of the six faces of a block, following the blockMesh
// sketch in the OpenFOAM user guide.
type Side string

// The six block sides.
const (
	SideBottom Side = "bottom"
	SideTop    Side = "top"
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideFront  Side = "front"
	SideBack   Side = "back"
)

// faceMap maps each side to the 4 local vertex indices of that face, in the
// winding order expected by blockMesh. Fixed for all blocks; never mutated.
var faceMap = map[Side][4]int{
	SideBottom: {0, 1, 2, 3},
	SideTop:    {4, 5, 6, 7},
	SideLeft:   {4, 0, 3, 7},
	SideRight:  {5, 1, 2, 6},
	SideFront:  {4, 5, 1, 0},
	SideBack:   {7, 6, 2, 3},
}

// axisPairs lists, for each axis, the 4 pairs of local vertex indices whose
// connecting edges run along that axis. Fixed for all blocks; never mutated.
var axisPairs = [3][4][2]int{
	{{0, 1}, {3, 2}, {4, 5}, {7, 6}}, // x
	{{0, 3}, {1, 2}, {5, 6}, {4, 7}}, // y
	{{0, 4}, {1, 5}, {2, 6}, {3, 7}}, // z
}

// ValidSide reports whether s names one of the six block sides.
func ValidSide(s Side) bool {
	_, ok := faceMap[s]
	return ok
}
