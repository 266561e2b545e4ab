package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a CSV vertex capture",
	Long:  "Import the capture in memory and show dimensions, triangle count, surface area, edge statistics and cleanup results.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addImportFlags(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	imported, err := loadMesh(filename, cfg.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing CSV file: %v\n", err)
		os.Exit(1)
	}

	m := imported.Mesh
	result := analysis.Analyze(m)

	fmt.Println("CSV Capture Information")
	fmt.Println("=======================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Loose Edges: %d\n", result.LooseEdgeCount)
	fmt.Printf("  Connected Components: %d\n", result.Components)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Cleanup:")
	fmt.Printf("  Vertices merged: %d\n", imported.VerticesMerged)
	fmt.Printf("  Loose edges removed: %d\n", imported.LooseEdgesRemoved)
	fmt.Printf("  Faces flipped: %d\n\n", imported.FacesFlipped)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", result.BoundingBox.Min)
	fmt.Printf("  Max: %s\n", result.BoundingBox.Max)
	fmt.Printf("  Center: %s\n\n", result.BoundingBox.Center())

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.Diagonal)
	fmt.Printf("  Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.MeanEdgeLength)
	fmt.Printf("  Std Dev: %.6f units\n", result.StdDevEdgeLength)
}
