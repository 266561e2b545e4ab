package main

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/preview"
)

var (
	previewOutput string
	previewWidth  int
	previewHeight int
	previewYaw    float64
	previewPitch  float64
	previewZoom   float64
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render an imported capture to a PNG image",
	Long:  "Import the capture in memory and render the cleaned mesh into a PNG image. Faces are flat shaded, loose edges drawn as lines.",
	Args:  cobra.ExactArgs(1),
	Run:   runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Output image (default: input with .png extension)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 800, "Image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 600, "Image height in pixels")
	previewCmd.Flags().Float64Var(&previewYaw, "yaw", 45, "Camera orbit around the vertical axis, in degrees")
	previewCmd.Flags().Float64Var(&previewPitch, "pitch", 35, "Camera elevation angle, in degrees")
	previewCmd.Flags().Float64Var(&previewZoom, "zoom", 1.0, "Zoom factor; values above 1 move closer")
	addImportFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) {
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

	img := preview.Render(imported.Mesh, preview.Options{
		Width:  previewWidth,
		Height: previewHeight,
		Yaw:    previewYaw * math.Pi / 180,
		Pitch:  previewPitch * math.Pi / 180,
		Zoom:   previewZoom,
	})

	output := previewOutput
	if output == "" {
		output = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating image file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}
