package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	hexerrors "github.com/dkastelic/hexmesh/pkg/errors"
	"github.com/dkastelic/hexmesh/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file path, "-" for stdout
	format   string // output format: "svg" or "dot"
	detailed bool   // include cell counts and zones in node labels
}

// graphCommand creates the graph command for visualizing block connectivity.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{output: "blocks.svg", format: formatSVG}

	cmd := &cobra.Command{
		Use:   "graph <manifest.toml>",
		Short: "Render the block connectivity of a manifest",
		Long:  `Graph renders the blocks of a mesh manifest as a Graphviz diagram, with an edge between every pair of blocks sharing a face. Useful for checking that a multi-block manifest is connected as intended.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return hexerrors.New(hexerrors.ErrCodeInvalidFormat,
					"unknown format %q (supported: dot, svg)", opts.format)
			}
			return c.runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file, or - for stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include cell counts and zones in labels")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, manifestPath string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	msh, _, err := buildMesh(manifestPath, logger)
	if err != nil {
		return err
	}

	dot := render.ToDOT(msh, render.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering connectivity graph...")
		spinner.Start()
		data, err = render.RenderSVG(ctx, dot)
		spinner.Stop()
		if err != nil {
			if spinner.Cancelled() {
				return ctx.Err()
			}
			return err
		}
	}

	if opts.output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := hexerrors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}

	printSuccess("Connectivity graph written (%d blocks, %d connections)",
		len(msh.Blocks), strings.Count(dot, " -- "))
	printFile(opts.output)
	return nil
}
