package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `
scale = 0.01

[patches]
inlet = "patch"
walls = "wall"

[[box]]
corner = [0, 0, 0]
size = [1, 1, 1]
cells = [4, 4, 4]
[box.patches]
inlet = ["left"]
walls = ["bottom", "top"]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != "hexmesh" {
		t.Errorf("Use = %q, want hexmesh", root.Use)
	}

	for _, name := range []string{"build", "graph", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestBuildCommand(t *testing.T) {
	manifestPath := writeManifest(t, testManifest)
	out := filepath.Join(t.TempDir(), "blockMeshDict")

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"build", manifestPath, "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dict := string(data)

	for _, want := range []string{
		"convertToMeters 0.01;",
		"hex ( 0 1 2 3 4 5 6 7 )",
		"(4 4 4)",
		"inlet",
		"walls",
		"wall;",
	} {
		if !strings.Contains(dict, want) {
			t.Errorf("dict missing %q", want)
		}
	}
}

func TestBuildCommandRefusesOverwrite(t *testing.T) {
	manifestPath := writeManifest(t, testManifest)
	out := filepath.Join(t.TempDir(), "blockMeshDict")
	if err := os.WriteFile(out, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"build", manifestPath, "-o", out})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want overwrite refusal")
	}

	// --force allows it.
	root = c.RootCommand()
	root.SetArgs([]string{"build", manifestPath, "-o", out, "--force"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() with --force error = %v", err)
	}
}

func TestBuildCommandBadManifest(t *testing.T) {
	manifestPath := writeManifest(t, `scale = 1.0`)

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"build", manifestPath, "-o", filepath.Join(t.TempDir(), "out")})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want manifest error")
	}
}

func TestGraphCommandDOT(t *testing.T) {
	manifestPath := writeManifest(t, testManifest)
	out := filepath.Join(t.TempDir(), "blocks.dot")

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"graph", manifestPath, "-o", out, "-f", "dot"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "graph blocks {") {
		t.Error("output is not a DOT graph")
	}
}

func TestGraphCommandUnknownFormat(t *testing.T) {
	manifestPath := writeManifest(t, testManifest)

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"graph", manifestPath, "-f", "png"})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want format error")
	}
}
