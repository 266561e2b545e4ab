package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/version"
)

var rootCmd = &cobra.Command{
	Use:   "csvmesh",
	Short: "Convert CSV vertex captures into triangle meshes",
	Long: `csvmesh turns CSV vertex captures, one homogeneous position per row,
into cleaned triangle meshes. Every three consecutive rows become one
triangle; cleanup merges duplicate corners, removes loose edges and
makes face normals consistent. Meshes can be written as OBJ or binary
STL files, inspected, rendered to PNG previews, or reconverted on
every save.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
