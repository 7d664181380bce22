// Package render visualizes block connectivity as Graphviz diagrams.
//
// Blocks become graph nodes and face neighbours are joined by an edge, which
// makes it easy to check that a multi-block mesh is actually connected the
// way the manifest intended. This package uses [github.com/goccy/go-graphviz]
// for in-process SVG generation (no Graphviz installation required).
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dkastelic/hexmesh/pkg/mesh"
)

// Options configures connectivity diagram rendering.
type Options struct {
	// Detailed includes cell counts and cell zones in node labels.
	// When false, only the block index and description are shown.
	Detailed bool
}

// ToDOT converts the mesh's block connectivity to Graphviz DOT format.
// Two blocks are connected when they share a full face (4 vertices).
// The mesh must be prepared so vertex aliasing is resolved.
func ToDOT(m *mesh.Mesh, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph blocks {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i, b := range m.Blocks {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", i, fmtLabel(i, b, opts.Detailed))
	}

	buf.WriteString("\n")
	for i, a := range m.Blocks {
		for j := i + 1; j < len(m.Blocks); j++ {
			if sharedVertices(a, m.Blocks[j]) >= 4 {
				fmt.Fprintf(&buf, "  %d -- %d;\n", i, j)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, b *mesh.Block, detailed bool) string {
	label := fmt.Sprintf("block %d", i)
	if b.Description != "" {
		label = b.Description
	}
	if !detailed {
		return label
	}

	parts := []string{label}
	if b.IsAnyCountDefined() {
		parts = append(parts, fmt.Sprintf("cells: %d %d %d",
			b.NCells[0], b.NCells[1], b.NCells[2]))
	}
	if b.CellZone != "" {
		parts = append(parts, "zone: "+b.CellZone)
	}
	return strings.Join(parts, "\n")
}

// sharedVertices counts mesh vertices present in both blocks. Prepared
// meshes alias coincident corners, so pointer identity is enough.
func sharedVertices(a, b *mesh.Block) int {
	n := 0
	for _, va := range a.Vertices {
		for _, vb := range b.Vertices {
			if va == vb {
				n++
				break
			}
		}
	}
	return n
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
