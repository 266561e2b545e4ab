package mesh

import (
	"math"

	"github.com/philipparndt/csvmesh/pkg/geometry"
)

// MergeByDistance coalesces every vertex that lies within threshold of an
// earlier-surviving vertex into that vertex. The earliest vertex of each
// cluster survives, so the pass is deterministic and a second run with the
// same threshold is a no-op. A threshold of zero or less merges exact
// duplicates only.
//
// Faces are rewritten to the surviving indices. A face left with fewer
// than three distinct vertices is removed; if exactly two remain, its
// collapsed edge stays in the edge set, where the loose-edge pass can
// find it. Two faces over the same surviving vertex set keep only the
// first. Returns the number of vertices removed.
func (m *Mesh) MergeByDistance(threshold float64) int {
	kept, remap := m.mergeVertices(threshold)
	removed := len(m.Vertices) - len(kept)
	if removed == 0 {
		return 0
	}
	m.Vertices = kept
	m.remapFaces(remap)
	return removed
}

// mergeVertices returns the surviving vertices in first-seen order and a
// remap from old index to new.
func (m *Mesh) mergeVertices(threshold float64) ([]geometry.Vector3, []int) {
	kept := make([]geometry.Vector3, 0, len(m.Vertices))
	remap := make([]int, len(m.Vertices))

	if threshold <= 0 {
		seen := make(map[geometry.Vector3]int, len(m.Vertices))
		for i, v := range m.Vertices {
			if j, ok := seen[v]; ok {
				remap[i] = j
				continue
			}
			remap[i] = len(kept)
			seen[v] = len(kept)
			kept = append(kept, v)
		}
		return kept, remap
	}

	// Survivors are binned into cells of edge length threshold, so any
	// vertex within threshold of a survivor sits in the same cell or a
	// direct neighbor.
	thresholdSq := threshold * threshold
	cellOf := func(v geometry.Vector3) [3]int {
		return [3]int{
			int(math.Floor(v.X / threshold)),
			int(math.Floor(v.Y / threshold)),
			int(math.Floor(v.Z / threshold)),
		}
	}
	grid := make(map[[3]int][]int)
	for i, v := range m.Vertices {
		c := cellOf(v)
		target := -1
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					cell := [3]int{c[0] + dx, c[1] + dy, c[2] + dz}
					for _, j := range grid[cell] {
						if v.DistanceSquared(kept[j]) <= thresholdSq && (target < 0 || j < target) {
							target = j
						}
					}
				}
			}
		}
		if target >= 0 {
			remap[i] = target
			continue
		}
		remap[i] = len(kept)
		grid[c] = append(grid[c], len(kept))
		kept = append(kept, v)
	}
	return kept, remap
}

// remapFaces rewrites faces and edges to the surviving vertex indices,
// dropping what collapsed.
func (m *Mesh) remapFaces(remap []int) {
	faces := m.Faces[:0]
	seenFace := make(map[[3]int]bool, len(m.Faces))
	var collapsed []Edge
	for _, f := range m.Faces {
		g := Face{remap[f[0]], remap[f[1]], remap[f[2]]}
		switch countDistinct(g) {
		case 3:
			key := sortedIndices(g)
			if seenFace[key] {
				continue
			}
			seenFace[key] = true
			faces = append(faces, g)
		case 2:
			collapsed = append(collapsed, collapsedEdge(g))
		}
		// A face collapsed to a single vertex leaves nothing behind.
	}
	m.Faces = faces

	edges := m.Edges[:0]
	seenEdge := make(map[Edge]bool, len(m.Edges))
	for _, e := range m.Edges {
		g := NewEdge(remap[e[0]], remap[e[1]])
		if g[0] == g[1] || seenEdge[g] {
			continue
		}
		seenEdge[g] = true
		edges = append(edges, g)
	}
	for _, e := range collapsed {
		if !seenEdge[e] {
			seenEdge[e] = true
			edges = append(edges, e)
		}
	}
	m.Edges = edges
}

func countDistinct(f Face) int {
	switch {
	case f[0] == f[1] && f[1] == f[2]:
		return 1
	case f[0] == f[1] || f[1] == f[2] || f[0] == f[2]:
		return 2
	default:
		return 3
	}
}

// collapsedEdge returns the single edge of a face with exactly two
// distinct vertices.
func collapsedEdge(f Face) Edge {
	if f[0] == f[1] {
		return NewEdge(f[0], f[2])
	}
	return NewEdge(f[0], f[1])
}

func sortedIndices(f Face) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
