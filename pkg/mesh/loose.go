package mesh

// RemoveLooseEdges deletes every edge that borders no face, together with
// any vertex only those edges referenced. Vertices and edges in use by a
// surviving face are never touched, and a vertex with no edges at all is
// loose geometry of a different kind and stays. Returns the number of
// edges removed.
func (m *Mesh) RemoveLooseEdges() int {
	if len(m.Edges) == 0 {
		return 0
	}

	covered := m.faceEdgeSet()
	kept := m.Edges[:0]
	orphaned := make(map[int]bool)
	removed := 0
	for _, e := range m.Edges {
		if covered[e] {
			kept = append(kept, e)
			continue
		}
		removed++
		orphaned[e[0]] = true
		orphaned[e[1]] = true
	}
	m.Edges = kept
	if removed == 0 {
		return 0
	}

	for _, f := range m.Faces {
		delete(orphaned, f[0])
		delete(orphaned, f[1])
		delete(orphaned, f[2])
	}
	for _, e := range m.Edges {
		delete(orphaned, e[0])
		delete(orphaned, e[1])
	}
	if len(orphaned) == 0 {
		return removed
	}

	remap := make([]int, len(m.Vertices))
	vertices := m.Vertices[:0]
	for i, v := range m.Vertices {
		if orphaned[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(vertices)
		vertices = append(vertices, v)
	}
	m.Vertices = vertices
	for i, f := range m.Faces {
		m.Faces[i] = Face{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	for i, e := range m.Edges {
		m.Edges[i] = NewEdge(remap[e[0]], remap[e[1]])
	}
	return removed
}
