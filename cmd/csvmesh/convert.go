package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/importer"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a CSV vertex capture into a mesh file",
	Long: `Import a capture and write the cleaned mesh next to it.
The output format follows the file extension: .obj (with a companion
.mtl material) or .stl (binary).`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	addOutputFlags(convertCmd)
	addImportFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	host := fileHost(cmd, cfg, filename)

	// The host reports the outcome; a failure has already been printed.
	result, err := importer.Import(filename, host, cfg.Options())
	if err != nil {
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", result.Object)
}
