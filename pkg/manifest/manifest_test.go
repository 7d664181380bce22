package manifest

import (
	"bytes"
	"strings"
	"testing"

	hexerrors "github.com/dkastelic/hexmesh/pkg/errors"
	"github.com/dkastelic/hexmesh/pkg/mesh"
)

const pipeManifest = `
scale = 0.001
comment = "test pipe"

[patches]
inlet = "patch"
outlet = "patch"
walls = "wall"

[[cylinder]]
axis_point1 = [0, 0, 0]
axis_point2 = [0, 0, 2]
radius_point = [1, 0, 0]
axial_cells = 5
radial_cells = 3
tangential_cells = 8
bottom_patch = "inlet"
top_patch = "outlet"
outer_patch = "walls"
cell_zone = "fluid"
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(pipeManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Scale != 0.001 {
		t.Errorf("Scale = %v, want 0.001", m.Scale)
	}
	if got := m.Patches["walls"]; got != "wall" {
		t.Errorf("Patches[walls] = %q, want wall", got)
	}
	if len(m.Cylinders) != 1 {
		t.Fatalf("len(Cylinders) = %d, want 1", len(m.Cylinders))
	}

	c := m.Cylinders[0]
	if c.AxialCells != 5 || c.RadialCells != 3 || c.TangentialCells != 8 {
		t.Errorf("cell counts = %d/%d/%d, want 5/3/8",
			c.AxialCells, c.RadialCells, c.TangentialCells)
	}
	if c.CellZone != "fluid" {
		t.Errorf("CellZone = %q, want fluid", c.CellZone)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code hexerrors.Code
	}{
		{
			name: "not toml",
			toml: "this is { not toml",
			code: hexerrors.ErrCodeInvalidManifest,
		},
		{
			name: "no shapes",
			toml: `scale = 1.0`,
			code: hexerrors.ErrCodeInvalidManifest,
		},
		{
			name: "zero box size",
			toml: `
[[box]]
corner = [0, 0, 0]
size = [1, 0, 1]
`,
			code: hexerrors.ErrCodeInvalidManifest,
		},
		{
			name: "bad side name",
			toml: `
[[box]]
corner = [0, 0, 0]
size = [1, 1, 1]
[box.patches]
inlet = ["bottom", "sideways"]
`,
			code: hexerrors.ErrCodeInvalidSide,
		},
		{
			name: "bad patch name",
			toml: `
[patches]
"in let" = "patch"

[[box]]
corner = [0, 0, 0]
size = [1, 1, 1]
`,
			code: hexerrors.ErrCodeInvalidManifest,
		},
		{
			name: "coinciding axis points",
			toml: `
[[cylinder]]
axis_point1 = [0, 0, 1]
axis_point2 = [0, 0, 1]
radius_point = [1, 0, 0]
`,
			code: hexerrors.ErrCodeInvalidManifest,
		},
		{
			name: "frustum without radius2",
			toml: `
[[frustum]]
axis_point1 = [0, 0, 0]
axis_point2 = [0, 0, 1]
radius_point = [1, 0, 0]
`,
			code: hexerrors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if got := hexerrors.GetCode(err); got != tt.code {
				t.Errorf("error code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestBuildBox(t *testing.T) {
	m, err := Parse([]byte(`
[[box]]
corner = [0, 0, 0]
size = [2, 1, 1]
cells = [20, 10, 10]
grading = [1, 3, 1]
cell_zone = "solid"
description = "base plate"
[box.patches]
bottom = ["bottom"]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := m.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(out.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(out.Blocks))
	}

	b := out.Blocks[0]
	if b.NCells != [3]int{20, 10, 10} {
		t.Errorf("NCells = %v, want [20 10 10]", b.NCells)
	}
	if b.Grading != [3]float64{1, 3, 1} {
		t.Errorf("Grading = %v, want [1 3 1]", b.Grading)
	}
	if b.CellZone != "solid" {
		t.Errorf("CellZone = %q, want solid", b.CellZone)
	}
	if b.Description != "base plate" {
		t.Errorf("Description = %q, want base plate", b.Description)
	}
	if got := b.Patches["bottom"]; len(got) != 1 || got[0] != mesh.SideBottom {
		t.Errorf("Patches[bottom] = %v, want [bottom]", got)
	}
}

func TestBuildPipe(t *testing.T) {
	m, err := Parse([]byte(pipeManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := m.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(out.Blocks) != 5 {
		t.Fatalf("len(Blocks) = %d, want 5", len(out.Blocks))
	}
	if err := out.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	var buf bytes.Buffer
	if err := out.WriteDict(&buf, m.WriteOptions()); err != nil {
		t.Fatalf("WriteDict() error = %v", err)
	}
	dict := buf.String()

	for _, want := range []string{
		"// test pipe",
		"convertToMeters 0.001;",
		"walls",
		"wall;",
		"fluid",
	} {
		if !strings.Contains(dict, want) {
			t.Errorf("dict missing %q", want)
		}
	}
}

func TestWriteOptionsDefaultScale(t *testing.T) {
	m := &Manifest{}
	if opts := m.WriteOptions(); opts.ConvertToMeters != 1 {
		t.Errorf("ConvertToMeters = %v, want 1", opts.ConvertToMeters)
	}
}
