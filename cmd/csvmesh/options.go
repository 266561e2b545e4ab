package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/config"
	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/importer"
	"github.com/philipparndt/csvmesh/pkg/mesh"
	"github.com/philipparndt/csvmesh/pkg/scene"
)

// addImportFlags registers the options shared by every command that
// decodes a capture.
func addImportFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "TOML profile with import settings")
	cmd.Flags().String("name", importer.DefaultMeshName, "Name for the imported mesh")
	cmd.Flags().Float64("merge-threshold", importer.DefaultMergeThreshold,
		"Distance below which vertices merge; 0 merges exact duplicates only")
}

// addOutputFlags registers the options shared by the commands that
// write mesh files.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file (default: input with .obj extension)")
	cmd.Flags().Bool("center", false, "Move the bounding-box center to the origin")
	cmd.Flags().String("listing", "", "Vertex listing file (default: output with .vertices.txt extension)")
	cmd.Flags().Bool("no-listing", false, "Skip the vertex listing")
}

// resolveConfig merges settings in three layers: built-in defaults,
// then the profile file, then explicit flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("name") {
		cfg.MeshName, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("merge-threshold") {
		cfg.MergeThreshold, _ = cmd.Flags().GetFloat64("merge-threshold")
	}
	return cfg, nil
}

// fileHost builds the writing host for convert and watch.
func fileHost(cmd *cobra.Command, cfg config.Config, input string) *scene.Directory {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".obj"
	}

	center := cfg.Center
	if cmd.Flags().Changed("center") {
		center, _ = cmd.Flags().GetBool("center")
	}

	listing, _ := cmd.Flags().GetString("listing")
	disableListing := !cfg.Listing && listing == ""
	if noListing, _ := cmd.Flags().GetBool("no-listing"); noListing {
		disableListing = true
	}

	return &scene.Directory{
		OutputPath:     output,
		ListingPath:    listing,
		DisableListing: disableListing,
		Center:         center,
	}
}

// loadMesh imports the capture in memory, without writing any files.
func loadMesh(path string, opts importer.Options) (*importer.Result, error) {
	return importer.Import(path, quietHost{}, opts)
}

// quietHost accepts the mesh and discards everything else. Commands
// that only inspect a capture use it in place of a writing host.
type quietHost struct{}

func (quietHost) CreateMesh(name string, vertices []geometry.Vector3, faces []mesh.Face) (importer.MeshHandle, error) {
	return nil, nil
}

func (quietHost) InsertIntoScene(m importer.MeshHandle) (importer.ObjectHandle, error) {
	return nil, nil
}

func (quietHost) Report(level importer.Level, message string) {}

func (quietHost) WriteDebugListing(vertices []geometry.Vector3) error { return nil }
