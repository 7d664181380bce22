package mesh

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// WriteOptions configures blockMeshDict output.
type WriteOptions struct {
	// ConvertToMeters is the scaling factor written into the dict.
	// Zero means 1 (mesh already in meters).
	ConvertToMeters float64

	// Comment is an optional free-text line placed in the dict header,
	// typically carrying build traceability (tool version, run ID).
	Comment string
}

// globalEdge is a curved edge expressed in global vertex indices, ready
// for the edges section of the dict.
type globalEdge struct {
	Index1, Index2 int
	ArcPoint       v3.Vec
}

const dictHeader = `/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
| \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox           |
|  \\    /   O peration     |                                                 |
|   \\  /    A nd           |                                                 |
|    \\/     M anipulation  |                                                 |
\*---------------------------------------------------------------------------*/
FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      blockMeshDict;
}
// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //
`

// WriteDict writes the complete blockMeshDict for the mesh: vertices,
// block records, arc edges, and boundary patches. The mesh must be
// prepared first, and every block must have resolved cell counts.
func (m *Mesh) WriteDict(w io.Writer, opts WriteOptions) error {
	if !m.prepared {
		return ErrNotPrepared
	}
	if err := m.checkResolved(); err != nil {
		return err
	}

	scale := opts.ConvertToMeters
	if scale == 0 {
		scale = 1
	}

	if _, err := io.WriteString(w, dictHeader); err != nil {
		return err
	}
	if opts.Comment != "" {
		fmt.Fprintf(w, "// %s\n", opts.Comment)
	}
	fmt.Fprintf(w, "\nconvertToMeters %s;\n", formatFloat(scale))

	m.writeVertices(w)
	if err := m.writeBlocks(w); err != nil {
		return err
	}
	m.writeEdges(w)
	m.writeBoundary(w)

	_, err := io.WriteString(w, "\nmergePatchPairs\n(\n);\n")
	return err
}

func (m *Mesh) writeVertices(w io.Writer) {
	fmt.Fprint(w, "\nvertices\n(\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "    (%s %s %s) // %d\n",
			formatFloat(v.Point.X), formatFloat(v.Point.Y), formatFloat(v.Point.Z), v.MeshIndex)
	}
	fmt.Fprint(w, ");\n")
}

func (m *Mesh) writeBlocks(w io.Writer) error {
	fmt.Fprint(w, "\nblocks\n(\n")
	for _, b := range m.Blocks {
		record, err := b.Record()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    %s\n", record)
	}
	fmt.Fprint(w, ");\n")
	return nil
}

func (m *Mesh) writeEdges(w io.Writer) {
	fmt.Fprint(w, "\nedges\n(\n")
	for _, e := range m.uniqueEdges() {
		fmt.Fprintf(w, "    arc %d %d (%s %s %s)\n",
			e.Index1, e.Index2,
			formatFloat(e.ArcPoint.X), formatFloat(e.ArcPoint.Y), formatFloat(e.ArcPoint.Z))
	}
	fmt.Fprint(w, ");\n")
}

// writeBoundary emits one boundary entry per patch name, with the faces of
// every block side assigned to that patch. Patches are written in sorted
// name order so output is deterministic.
func (m *Mesh) writeBoundary(w io.Writer) {
	names := m.patchNames()

	fmt.Fprint(w, "\nboundary\n(\n")
	for _, name := range names {
		patchType := m.PatchTypes[name]
		if patchType == "" {
			patchType = "patch"
		}

		fmt.Fprintf(w, "    %s\n    {\n        type %s;\n        faces\n        (\n", name, patchType)
		for _, b := range m.Blocks {
			for _, face := range b.Faces(name) {
				fmt.Fprintf(w, "            %s\n", face)
			}
		}
		fmt.Fprint(w, "        );\n    }\n")
	}
	fmt.Fprint(w, ");\n")
}

// patchNames returns every patch name used by any block, sorted.
func (m *Mesh) patchNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, b := range m.Blocks {
		for name := range b.Patches {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// formatFloat renders a coordinate or scale with the shortest exact
// representation.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
