// Package analysis computes measurements of an imported mesh.
package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/mesh"
)

// EdgeInfo describes one edge of the mesh.
type EdgeInfo struct {
	Edge   mesh.Edge
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Loose  bool
}

// Result contains the measurements of a mesh.
type Result struct {
	VertexCount    int
	TriangleCount  int
	EdgeCount      int
	LooseEdgeCount int
	Components     int

	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Diagonal    float64
	Volume      float64
	SurfaceArea float64

	MinEdgeLength    float64
	MaxEdgeLength    float64
	MeanEdgeLength   float64
	StdDevEdgeLength float64

	Edges []EdgeInfo
}

// Analyze measures the mesh: element counts, bounding volume and
// edge-length statistics. Volume is the bounding-box volume, not the
// enclosed volume of the surface.
func Analyze(m *mesh.Mesh) *Result {
	result := &Result{
		VertexCount:    m.VertexCount(),
		TriangleCount:  m.TriangleCount(),
		EdgeCount:      m.EdgeCount(),
		LooseEdgeCount: m.LooseEdgeCount(),
		Components:     m.ConnectedComponents(),
		BoundingBox:    m.BoundingBox(),
		SurfaceArea:    m.SurfaceArea(),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.Diagonal = result.BoundingBox.Diagonal()
	result.Volume = result.BoundingBox.Volume()

	if len(m.Edges) == 0 {
		return result
	}

	loose := make(map[mesh.Edge]bool)
	for _, e := range m.LooseEdges() {
		loose[e] = true
	}

	lengths := make([]float64, 0, len(m.Edges))
	for _, e := range m.Edges {
		start, end := m.Vertices[e[0]], m.Vertices[e[1]]
		length := start.Distance(end)
		result.Edges = append(result.Edges, EdgeInfo{
			Edge:   e,
			Start:  start,
			End:    end,
			Length: length,
			Loose:  loose[e],
		})
		lengths = append(lengths, length)
	}

	result.MinEdgeLength = floats.Min(lengths)
	result.MaxEdgeLength = floats.Max(lengths)
	result.MeanEdgeLength = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		result.StdDevEdgeLength = stat.StdDev(lengths, nil)
	}

	return result
}

// FindEdgesByLength returns all edges whose length lies in the
// inclusive range.
func FindEdgesByLength(result *Result, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.Edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges.
func FindLongestEdges(result *Result, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.Edges))
	copy(edges, result.Edges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FindShortestEdges returns the N shortest edges.
func FindShortestEdges(result *Result, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.Edges))
	copy(edges, result.Edges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}
