// Package manifest loads TOML mesh descriptions and turns them into meshes.
//
// A manifest lists shapes (boxes, cylinders, frustums) together with their
// cell counts, gradings, patches and cell zones, plus mesh-wide settings
// such as the metre scale and boundary patch types. [Manifest.Build]
// assembles the shapes into a [mesh.Mesh] ready for preparation.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	v3 "github.com/deadsy/sdfx/vec/v3"

	hexerrors "github.com/dkastelic/hexmesh/pkg/errors"
	"github.com/dkastelic/hexmesh/pkg/mesh"
	"github.com/dkastelic/hexmesh/pkg/shapes"
)

// Manifest is the top-level TOML document.
type Manifest struct {
	// Scale is written as convertToMeters. Zero means 1.
	Scale float64 `toml:"scale"`

	// Comment is placed at the top of the generated dictionary.
	Comment string `toml:"comment"`

	// Patches maps patch names to boundary types (wall, patch, empty, ...).
	// Patches used by shapes but missing here default to "patch".
	Patches map[string]string `toml:"patches"`

	Boxes     []Box      `toml:"box"`
	Cylinders []Cylinder `toml:"cylinder"`
	Frustums  []Frustum  `toml:"frustum"`
}

// Box is a single axis-aligned block.
type Box struct {
	Corner [3]float64 `toml:"corner"`
	Size   [3]float64 `toml:"size"`

	Cells   [3]int     `toml:"cells"`
	Grading [3]float64 `toml:"grading"`

	CellZone    string              `toml:"cell_zone"`
	Description string              `toml:"description"`
	Patches     map[string][]string `toml:"patches"`
}

// Cylinder is a constant-radius swept O-grid.
type Cylinder struct {
	AxisPoint1  [3]float64 `toml:"axis_point1"`
	AxisPoint2  [3]float64 `toml:"axis_point2"`
	RadiusPoint [3]float64 `toml:"radius_point"`

	AxialCells      int `toml:"axial_cells"`
	RadialCells     int `toml:"radial_cells"`
	TangentialCells int `toml:"tangential_cells"`

	// Cell sizes request gradings solved during mesh preparation.
	AxialCellSize float64 `toml:"axial_cell_size"`
	OuterCellSize float64 `toml:"outer_cell_size"`

	BottomPatch string `toml:"bottom_patch"`
	TopPatch    string `toml:"top_patch"`
	OuterPatch  string `toml:"outer_patch"`
	CellZone    string `toml:"cell_zone"`
}

// Frustum is a cylinder whose radius changes linearly to Radius2.
type Frustum struct {
	Cylinder
	Radius2 float64 `toml:"radius2"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hexerrors.Wrap(hexerrors.ErrCodeInvalidPath, err, "read manifest %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a manifest from TOML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, hexerrors.Wrap(hexerrors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Boxes)+len(m.Cylinders)+len(m.Frustums) == 0 {
		return hexerrors.New(hexerrors.ErrCodeInvalidManifest, "manifest defines no shapes")
	}
	if m.Scale < 0 {
		return hexerrors.New(hexerrors.ErrCodeInvalidManifest,
			"scale must be positive, got %v", m.Scale)
	}

	for name := range m.Patches {
		if err := hexerrors.ValidatePatchName(name); err != nil {
			return err
		}
	}

	for i, b := range m.Boxes {
		for _, s := range b.Size {
			if s == 0 {
				return hexerrors.New(hexerrors.ErrCodeInvalidManifest,
					"box %d has a zero size component", i)
			}
		}
		if err := hexerrors.ValidateCellZone(b.CellZone); err != nil {
			return err
		}
		for patch, sides := range b.Patches {
			if err := hexerrors.ValidatePatchName(patch); err != nil {
				return err
			}
			for _, side := range sides {
				if !mesh.ValidSide(mesh.Side(side)) {
					return hexerrors.New(hexerrors.ErrCodeInvalidSide,
						"box %d patch %s: unknown side %q", i, patch, side)
				}
			}
		}
	}

	for i, c := range m.Cylinders {
		if err := c.validate(fmt.Sprintf("cylinder %d", i)); err != nil {
			return err
		}
	}
	for i, f := range m.Frustums {
		if err := f.Cylinder.validate(fmt.Sprintf("frustum %d", i)); err != nil {
			return err
		}
		if f.Radius2 <= 0 {
			return hexerrors.New(hexerrors.ErrCodeInvalidManifest,
				"frustum %d: radius2 must be positive, got %v", i, f.Radius2)
		}
	}
	return nil
}

func (c *Cylinder) validate(what string) error {
	if c.AxisPoint1 == c.AxisPoint2 {
		return hexerrors.New(hexerrors.ErrCodeInvalidManifest,
			"%s: axis points coincide", what)
	}
	if c.RadiusPoint == c.AxisPoint1 {
		return hexerrors.New(hexerrors.ErrCodeInvalidManifest,
			"%s: radius point coincides with the axis start", what)
	}
	for _, patch := range []string{c.BottomPatch, c.TopPatch, c.OuterPatch} {
		if patch == "" {
			continue
		}
		if err := hexerrors.ValidatePatchName(patch); err != nil {
			return err
		}
	}
	return hexerrors.ValidateCellZone(c.CellZone)
}

// Build assembles the manifest's shapes into a mesh. The mesh is not yet
// prepared; call [mesh.Mesh.Prepare] before writing it out.
func (m *Manifest) Build() (*mesh.Mesh, error) {
	out := mesh.NewMesh()
	for name, patchType := range m.Patches {
		out.PatchTypes[name] = patchType
	}

	for i := range m.Boxes {
		if err := m.Boxes[i].addTo(out); err != nil {
			return nil, err
		}
	}
	for i := range m.Cylinders {
		f := shapes.NewCylinder(vec(m.Cylinders[i].AxisPoint1),
			vec(m.Cylinders[i].AxisPoint2), vec(m.Cylinders[i].RadiusPoint))
		if err := m.Cylinders[i].apply(f, out); err != nil {
			return nil, err
		}
	}
	for i := range m.Frustums {
		f := shapes.NewFrustum(vec(m.Frustums[i].AxisPoint1),
			vec(m.Frustums[i].AxisPoint2), vec(m.Frustums[i].RadiusPoint),
			m.Frustums[i].Radius2)
		if err := m.Frustums[i].apply(f, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WriteOptions returns the writer options carried by the manifest.
func (m *Manifest) WriteOptions() mesh.WriteOptions {
	scale := m.Scale
	if scale == 0 {
		scale = 1
	}
	return mesh.WriteOptions{ConvertToMeters: scale, Comment: m.Comment}
}

func (b *Box) addTo(out *mesh.Mesh) error {
	block := shapes.NewBox(vec(b.Corner), vec(b.Size))
	for axis, n := range b.Cells {
		if n > 0 {
			block.SetCellCount(mesh.Axis(axis), n)
		}
	}
	for axis, g := range b.Grading {
		if g != 0 {
			block.Grading[axis] = g
		}
	}
	block.CellZone = b.CellZone
	block.Description = b.Description
	for patch, sides := range b.Patches {
		for _, side := range sides {
			if err := block.SetPatch(patch, mesh.Side(side)); err != nil {
				return err
			}
		}
	}
	out.AddBlock(block)
	return nil
}

func (c *Cylinder) apply(f *shapes.Frustum, out *mesh.Mesh) error {
	if c.AxialCells > 0 {
		f.SetAxialCellCount(c.AxialCells)
	}
	if c.RadialCells > 0 {
		f.SetRadialCellCount(c.RadialCells)
	}
	if c.TangentialCells > 0 {
		f.SetTangentialCellCount(c.TangentialCells)
	}
	if c.AxialCellSize > 0 {
		f.SetAxialCellSize(c.AxialCellSize)
	}
	if c.OuterCellSize > 0 {
		f.SetOuterCellSize(c.OuterCellSize)
	}

	if c.BottomPatch != "" {
		if err := f.SetBottomPatch(c.BottomPatch); err != nil {
			return err
		}
	}
	if c.TopPatch != "" {
		if err := f.SetTopPatch(c.TopPatch); err != nil {
			return err
		}
	}
	if c.OuterPatch != "" {
		if err := f.SetOuterPatch(c.OuterPatch); err != nil {
			return err
		}
	}
	if c.CellZone != "" {
		f.SetCellZone(c.CellZone)
	}

	f.AddTo(out)
	return nil
}

func vec(p [3]float64) v3.Vec {
	return v3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
