package math

// GenerateNormals computes a face normal for every triangle in the index
// list and writes it to the triangle's three vertices. Vertices shared
// between faces end up with the normal of the last face that touched them,
// which is exactly what the faceted primitives (pyramid, prism) want since
// their vertices are not shared across faces.
func GenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalize()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}
