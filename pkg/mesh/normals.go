package mesh

// MakeNormalsConsistent propagates winding orientation across the mesh so
// that every edge shared by two faces is traversed in opposite directions
// by them. Each connected patch is flooded from its lowest-index face,
// which keeps its winding; neighbors wound against it are flipped. The
// result is consistent orientation per patch, not a guaranteed outward
// one. Returns the number of faces flipped.
func (m *Mesh) MakeNormalsConsistent() int {
	if len(m.Faces) == 0 {
		return 0
	}

	edgeFaces := make(map[Edge][]int, len(m.Faces)*3)
	for i, f := range m.Faces {
		for _, e := range f.Edges() {
			edgeFaces[e] = append(edgeFaces[e], i)
		}
	}

	visited := make([]bool, len(m.Faces))
	flipped := 0
	var queue []int
	for seed := range m.Faces {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range m.Faces[cur].Edges() {
				for _, next := range edgeFaces[e] {
					if visited[next] {
						continue
					}
					visited[next] = true
					if sameTraversal(m.Faces[cur], m.Faces[next], e) {
						m.Faces[next] = m.Faces[next].Flipped()
						flipped++
					}
					queue = append(queue, next)
				}
			}
		}
	}
	return flipped
}

// sameTraversal reports whether both faces walk the shared edge in the
// same direction, which means their windings disagree.
func sameTraversal(a, b Face, e Edge) bool {
	return traversalStart(a, e) == traversalStart(b, e)
}

// traversalStart returns the vertex at which the face's winding enters
// the edge.
func traversalStart(f Face, e Edge) int {
	pairs := [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
	for _, p := range pairs {
		if NewEdge(p[0], p[1]) == e {
			return p[0]
		}
	}
	return -1
}
