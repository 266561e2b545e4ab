package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/analysis"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in an imported capture",
	Long:  "Find and measure edges of the cleaned mesh, including longest, shortest, or edges within a specific length range. Edges not covered by a face are marked as loose.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
	addImportFlags(edgesCmd)
}

func runEdges(cmd *cobra.Command, args []string) {
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

	result := analysis.Analyze(imported.Mesh)

	var edges []analysis.EdgeInfo
	var title string

	if edgesLongest {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	} else if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else if edgesMaxLength > 0 {
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	} else {
		edges = result.Edges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", edgesCount, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Printf("Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("Avg edge length: %.6f units\n\n", result.MeanEdgeLength)

	if len(edges) > 0 {
		fmt.Printf("%-6s %-35s %-35s %-12s %-6s\n", "Index", "Start", "End", "Length", "Loose")
		fmt.Println("--------------------------------------------------------------------------------------------------")
		for i, edge := range edges {
			loose := ""
			if edge.Loose {
				loose = "yes"
			}
			fmt.Printf("%-6d %-35s %-35s %-12.6f %-6s\n",
				i+1,
				edge.Start,
				edge.End,
				edge.Length,
				loose)
		}
	} else {
		fmt.Println("No edges found matching the criteria.")
	}
}
