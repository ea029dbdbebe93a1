// Package debug provides debug visualization and capture utilities.
package debug

// GenerateBBoxWireframeVertices creates line vertices for a wireframe box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// z = min face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, minX, maxY, minZ,
		minX, maxY, minZ, minX, minY, minZ,
		// z = max face
		minX, minY, maxZ, maxX, minY, maxZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, minY, maxZ,
		// verticals
		minX, minY, minZ, minX, minY, maxZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		minX, maxY, minZ, minX, maxY, maxZ,
	}
}

// GenerateBBoxWireframeFromBounds creates wireframe vertices for the box
// spanning lo..hi, grown by padding on every side. Swapped corners are
// reordered.
func GenerateBBoxWireframeFromBounds(lo, hi [3]float32, padding float32) []float32 {
	for i := range 3 {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
		lo[i] -= padding
		hi[i] += padding
	}
	return GenerateBBoxWireframeVertices(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24
