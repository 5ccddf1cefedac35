package systems

import (
	"fmt"

	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

// segment count for the curved primitives
const radialSegments = 36

// sphere tessellation
const (
	sphereStacks = 16
	sphereSlices = 32
)

func generatePrimitive(shape MeshShape) (*metadata.GeometryConfig, error) {
	switch shape {
	case ShapePlane:
		return generatePlane(), nil
	case ShapeBox:
		return generateBox(), nil
	case ShapeSphere:
		return generateSphere(), nil
	case ShapeCylinder:
		return generateConical("cylinder", 1.0, 1.0), nil
	case ShapeCone:
		return generateConical("cone", 1.0, 0.0), nil
	case ShapePyramid:
		return generatePyramid(), nil
	case ShapePrism:
		return generatePrism(), nil
	case ShapeTaperedCylinder:
		return generateConical("tapered cylinder", 1.0, 0.5), nil
	default:
		return nil, fmt.Errorf("no generator for %s", shape)
	}
}

// generatePlane builds a 2x2 quad in the XZ plane, centered on the origin,
// facing +Y.
func generatePlane() *metadata.GeometryConfig {
	vertices := []math.Vertex3D{
		{Position: math.NewVec3(-1, 0, 1), Normal: math.NewVec3(0, 1, 0), Texcoord: math.NewVec2(0, 0)},
		{Position: math.NewVec3(1, 0, 1), Normal: math.NewVec3(0, 1, 0), Texcoord: math.NewVec2(1, 0)},
		{Position: math.NewVec3(1, 0, -1), Normal: math.NewVec3(0, 1, 0), Texcoord: math.NewVec2(1, 1)},
		{Position: math.NewVec3(-1, 0, -1), Normal: math.NewVec3(0, 1, 0), Texcoord: math.NewVec2(0, 1)},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return &metadata.GeometryConfig{Name: "plane", Vertices: vertices, Indices: indices}
}

// generateBox builds a unit cube centered on the origin. Faces do not share
// vertices so each can carry its own normal and texture coordinates.
func generateBox() *metadata.GeometryConfig {
	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}
	faces := []face{
		{ // front (+Z)
			normal:  math.NewVec3(0, 0, 1),
			corners: [4]math.Vec3{{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}},
		},
		{ // back (-Z)
			normal:  math.NewVec3(0, 0, -1),
			corners: [4]math.Vec3{{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}},
		},
		{ // right (+X)
			normal:  math.NewVec3(1, 0, 0),
			corners: [4]math.Vec3{{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}},
		},
		{ // left (-X)
			normal:  math.NewVec3(-1, 0, 0),
			corners: [4]math.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: -0.5}},
		},
		{ // top (+Y)
			normal:  math.NewVec3(0, 1, 0),
			corners: [4]math.Vec3{{X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}},
		},
		{ // bottom (-Y)
			normal:  math.NewVec3(0, -1, 0),
			corners: [4]math.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}},
		},
	}
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	vertices := make([]math.Vertex3D, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i := 0; i < 4; i++ {
			vertices = append(vertices, math.Vertex3D{
				Position: f.corners[i],
				Normal:   f.normal,
				Texcoord: uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return &metadata.GeometryConfig{Name: "box", Vertices: vertices, Indices: indices}
}

// generateSphere builds a unit sphere centered on the origin from
// latitude/longitude bands. Normals equal the unit positions.
func generateSphere() *metadata.GeometryConfig {
	vertices := make([]math.Vertex3D, 0, (sphereStacks+1)*(sphereSlices+1))
	for stack := 0; stack <= sphereStacks; stack++ {
		theta := math.K_PI * float32(stack) / float32(sphereStacks)
		y := cosf(theta)
		ringRadius := sinf(theta)
		for slice := 0; slice <= sphereSlices; slice++ {
			phi := math.K_PI_2 * float32(slice) / float32(sphereSlices)
			position := math.NewVec3(ringRadius*cosf(phi), y, ringRadius*sinf(phi))
			vertices = append(vertices, math.Vertex3D{
				Position: position,
				Normal:   position,
				Texcoord: math.NewVec2(float32(slice)/float32(sphereSlices), 1.0-float32(stack)/float32(sphereStacks)),
			})
		}
	}

	indices := make([]uint32, 0, sphereStacks*sphereSlices*6)
	for stack := 0; stack < sphereStacks; stack++ {
		for slice := 0; slice < sphereSlices; slice++ {
			i0 := uint32(stack*(sphereSlices+1) + slice)
			i1 := i0 + 1
			i2 := i0 + sphereSlices + 1
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}
	return &metadata.GeometryConfig{Name: "sphere", Vertices: vertices, Indices: indices}
}

// generateConical builds a solid of revolution with the given bottom and
// top radii and height 1, base centered on the origin, extending +Y. It
// covers the cylinder (equal radii), the cone (zero top radius) and the
// tapered cylinder in between. Caps are generated for any non-zero radius.
func generateConical(name string, bottomRadius, topRadius float32) *metadata.GeometryConfig {
	vertices := make([]math.Vertex3D, 0)
	indices := make([]uint32, 0)

	// side surface; the slant determines the normal's vertical component
	for i := 0; i <= radialSegments; i++ {
		phi := math.K_PI_2 * float32(i) / float32(radialSegments)
		c := cosf(phi)
		s := sinf(phi)
		normal := math.NewVec3(c, bottomRadius-topRadius, s).Normalize()
		u := float32(i) / float32(radialSegments)

		vertices = append(vertices,
			math.Vertex3D{
				Position: math.NewVec3(bottomRadius*c, 0, bottomRadius*s),
				Normal:   normal,
				Texcoord: math.NewVec2(u, 0),
			},
			math.Vertex3D{
				Position: math.NewVec3(topRadius*c, 1, topRadius*s),
				Normal:   normal,
				Texcoord: math.NewVec2(u, 1),
			},
		)
	}
	for i := 0; i < radialSegments; i++ {
		b0 := uint32(i * 2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		indices = append(indices, b0, t0, b1, b1, t0, t1)
	}

	if bottomRadius > 0 {
		appendCap(&vertices, &indices, bottomRadius, 0, math.NewVec3(0, -1, 0))
	}
	if topRadius > 0 {
		appendCap(&vertices, &indices, topRadius, 1, math.NewVec3(0, 1, 0))
	}

	return &metadata.GeometryConfig{Name: name, Vertices: vertices, Indices: indices}
}

// appendCap adds a triangle-fan disc at the given height.
func appendCap(vertices *[]math.Vertex3D, indices *[]uint32, radius, y float32, normal math.Vec3) {
	center := uint32(len(*vertices))
	*vertices = append(*vertices, math.Vertex3D{
		Position: math.NewVec3(0, y, 0),
		Normal:   normal,
		Texcoord: math.NewVec2(0.5, 0.5),
	})
	for i := 0; i <= radialSegments; i++ {
		phi := math.K_PI_2 * float32(i) / float32(radialSegments)
		c := cosf(phi)
		s := sinf(phi)
		*vertices = append(*vertices, math.Vertex3D{
			Position: math.NewVec3(radius*c, y, radius*s),
			Normal:   normal,
			Texcoord: math.NewVec2(0.5+0.5*c, 0.5+0.5*s),
		})
	}
	for i := 0; i < radialSegments; i++ {
		*indices = append(*indices, center, center+1+uint32(i), center+2+uint32(i))
	}
}

// generatePyramid builds a square-base pyramid centered on the origin with
// a unit base and unit height. Faces are unshared; normals come from the
// face planes.
func generatePyramid() *metadata.GeometryConfig {
	apex := math.NewVec3(0, 0.5, 0)
	base := [4]math.Vec3{
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: -0.5},
	}

	vertices := make([]math.Vertex3D, 0, 16)
	indices := make([]uint32, 0, 18)

	// four triangular sides
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		start := uint32(len(vertices))
		vertices = append(vertices,
			math.Vertex3D{Position: base[i], Texcoord: math.NewVec2(0, 0)},
			math.Vertex3D{Position: base[j], Texcoord: math.NewVec2(1, 0)},
			math.Vertex3D{Position: apex, Texcoord: math.NewVec2(0.5, 1)},
		)
		indices = append(indices, start, start+1, start+2)
	}

	// square base
	start := uint32(len(vertices))
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i := 3; i >= 0; i-- {
		vertices = append(vertices, math.Vertex3D{Position: base[i], Texcoord: uvs[3-i]})
	}
	indices = append(indices, start, start+1, start+2, start, start+2, start+3)

	math.GenerateNormals(vertices, indices)
	return &metadata.GeometryConfig{Name: "pyramid", Vertices: vertices, Indices: indices}
}

// generatePrism builds a triangular prism: a unit square footprint with a
// ridge running along Z at the top, like a tent. Faces are unshared;
// normals come from the face planes.
func generatePrism() *metadata.GeometryConfig {
	// footprint corners at y=-0.5, ridge endpoints at y=0.5
	fl := math.NewVec3(-0.5, -0.5, 0.5)  // front left
	fr := math.NewVec3(0.5, -0.5, 0.5)   // front right
	bl := math.NewVec3(-0.5, -0.5, -0.5) // back left
	br := math.NewVec3(0.5, -0.5, -0.5)  // back right
	rf := math.NewVec3(0, 0.5, 0.5)      // ridge front
	rb := math.NewVec3(0, 0.5, -0.5)     // ridge back

	vertices := make([]math.Vertex3D, 0, 18)
	indices := make([]uint32, 0, 24)

	quad := func(a, b, c, d math.Vec3) {
		start := uint32(len(vertices))
		vertices = append(vertices,
			math.Vertex3D{Position: a, Texcoord: math.NewVec2(0, 0)},
			math.Vertex3D{Position: b, Texcoord: math.NewVec2(1, 0)},
			math.Vertex3D{Position: c, Texcoord: math.NewVec2(1, 1)},
			math.Vertex3D{Position: d, Texcoord: math.NewVec2(0, 1)},
		)
		indices = append(indices, start, start+1, start+2, start, start+2, start+3)
	}
	tri := func(a, b, c math.Vec3) {
		start := uint32(len(vertices))
		vertices = append(vertices,
			math.Vertex3D{Position: a, Texcoord: math.NewVec2(0, 0)},
			math.Vertex3D{Position: b, Texcoord: math.NewVec2(1, 0)},
			math.Vertex3D{Position: c, Texcoord: math.NewVec2(0.5, 1)},
		)
		indices = append(indices, start, start+1, start+2)
	}

	quad(fl, rf, rb, bl) // left slope
	quad(fr, br, rb, rf) // right slope
	quad(bl, br, fr, fl) // bottom
	tri(fl, fr, rf)      // front end
	tri(br, bl, rb)      // back end

	math.GenerateNormals(vertices, indices)
	return &metadata.GeometryConfig{Name: "prism", Vertices: vertices, Indices: indices}
}

func sinf(x float32) float32 {
	return math.Sin(x)
}

func cosf(x float32) float32 {
	return math.Cos(x)
}
