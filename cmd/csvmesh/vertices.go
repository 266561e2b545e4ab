package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/csv"
)

var verticesCount int

var verticesCmd = &cobra.Command{
	Use:   "vertices [file]",
	Short: "Print the decoded vertices of a CSV capture",
	Long:  "Decode the capture row by row and print each position after the perspective divide, before any cleanup.",
	Args:  cobra.ExactArgs(1),
	Run:   runVertices,
}

func init() {
	rootCmd.AddCommand(verticesCmd)

	verticesCmd.Flags().IntVarP(&verticesCount, "count", "n", 0, "Stop after this many vertices (0 prints all)")
	verticesCmd.Flags().String("config", "", "TOML profile with import settings")
}

func runVertices(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	decoder := csv.NewDecoderProfile(f, cfg.Profile())
	printed := 0
	for verticesCount <= 0 || printed < verticesCount {
		v, err := decoder.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding CSV file: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(v)
		printed++
	}
}
