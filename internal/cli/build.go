package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dkastelic/hexmesh/pkg/buildinfo"
	hexerrors "github.com/dkastelic/hexmesh/pkg/errors"
	"github.com/dkastelic/hexmesh/pkg/manifest"
	"github.com/dkastelic/hexmesh/pkg/mesh"
)

// defaultDictPath is where blockMesh expects its dictionary inside an
// OpenFOAM case directory.
const defaultDictPath = "system/blockMeshDict"

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path, "-" for stdout
	force  bool   // overwrite an existing output file
}

// buildCommand creates the build command for generating blockMeshDict files.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{output: defaultDictPath}

	cmd := &cobra.Command{
		Use:   "build <manifest.toml>",
		Short: "Generate a blockMeshDict from a mesh manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file, or - for stdout")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing output file")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, manifestPath string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	msh, writeOpts, err := buildMesh(manifestPath, logger)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		if err := msh.WriteDict(os.Stdout, writeOpts); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Generated %d blocks", len(msh.Blocks)))
		return nil
	}

	if err := writeDictFile(msh, writeOpts, opts.output, opts.force); err != nil {
		return err
	}

	printSuccess("Mesh written")
	printFile(opts.output)
	printMeshStats(len(msh.Blocks), len(msh.Vertices), totalCells(msh))
	prog.done(fmt.Sprintf("Generated %d blocks", len(msh.Blocks)))
	return nil
}

// buildMesh loads a manifest, assembles its shapes and prepares the mesh.
// Shared by the build and graph commands.
func buildMesh(path string, logger *log.Logger) (*mesh.Mesh, mesh.WriteOptions, error) {
	man, err := manifest.Load(path)
	if err != nil {
		return nil, mesh.WriteOptions{}, err
	}
	logger.Debugf("loaded %s: %d boxes, %d cylinders, %d frustums",
		path, len(man.Boxes), len(man.Cylinders), len(man.Frustums))

	msh, err := man.Build()
	if err != nil {
		return nil, mesh.WriteOptions{}, err
	}
	if err := msh.Prepare(); err != nil {
		return nil, mesh.WriteOptions{}, err
	}
	logger.Debugf("prepared mesh: %d blocks, %d vertices", len(msh.Blocks), len(msh.Vertices))

	// Every build is traceable through the dict header.
	writeOpts := man.WriteOptions()
	stamp := fmt.Sprintf("hexmesh %s run %s", buildinfo.Version, uuid.NewString())
	if writeOpts.Comment != "" {
		stamp = writeOpts.Comment + " | " + stamp
	}
	writeOpts.Comment = stamp
	return msh, writeOpts, nil
}

func writeDictFile(msh *mesh.Mesh, opts mesh.WriteOptions, path string, force bool) error {
	if err := hexerrors.ValidateOutputPath(path); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return hexerrors.New(hexerrors.ErrCodeInvalidPath,
				"%s already exists, use --force to overwrite", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := msh.WriteDict(f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// totalCells sums the cell counts of all blocks. Counts are resolved after
// preparation, so the product per block is well defined.
func totalCells(msh *mesh.Mesh) int {
	total := 0
	for _, b := range msh.Blocks {
		total += b.NCells[0] * b.NCells[1] * b.NCells[2]
	}
	return total
}
