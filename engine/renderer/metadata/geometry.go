package metadata

import "github.com/spaghettifunk/atelier/engine/math"

/** @brief An opaque handle to uploaded vertex/index buffers. Zero is never valid. */
type GeometryHandle uint32

/** @brief The handle value used for "no geometry". */
const InvalidGeometryHandle GeometryHandle = 0

/**
 * @brief CPU-side vertex and index data for a mesh, ready for a one-time
 * upload to the GPU.
 */
type GeometryConfig struct {
	/** @brief The mesh name, used for logging only. */
	Name string
	/** @brief The vertex data. */
	Vertices []math.Vertex3D
	/** @brief The triangle list indexing into Vertices. */
	Indices []uint32
}

/** @brief An opaque handle to a linked GPU shader program. Zero is never valid. */
type ProgramHandle uint32

/** @brief The handle value used for "no program". */
const InvalidProgramHandle ProgramHandle = 0
