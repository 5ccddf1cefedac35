package systems

import (
	"fmt"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

// MeshShape identifies one of the primitive meshes the scene is built from.
type MeshShape int

const (
	ShapePlane MeshShape = iota
	ShapeBox
	ShapeSphere
	ShapeCylinder
	ShapeCone
	ShapePyramid
	ShapePrism
	ShapeTaperedCylinder
)

func (s MeshShape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapePyramid:
		return "pyramid"
	case ShapePrism:
		return "prism"
	case ShapeTaperedCylinder:
		return "tapered cylinder"
	default:
		return fmt.Sprintf("unknown shape %d", int(s))
	}
}

/**
 * @brief MeshSystem generates and uploads the primitive meshes and issues
 * their draw calls. Each shape's buffers are uploaded at most once no
 * matter how often it is drawn; drawing uses whatever transform, material
 * and texture state is currently live in the shader.
 */
type MeshSystem struct {
	backend renderer.Backend
	loaded  map[MeshShape]metadata.GeometryHandle
}

func NewMeshSystem(backend renderer.Backend) *MeshSystem {
	return &MeshSystem{
		backend: backend,
		loaded:  make(map[MeshShape]metadata.GeometryHandle),
	}
}

// Load generates the shape's vertex and index buffers and uploads them.
// Safe to call repeatedly; later calls are no-ops.
func (ms *MeshSystem) Load(shape MeshShape) error {
	if _, ok := ms.loaded[shape]; ok {
		return nil
	}

	config, err := generatePrimitive(shape)
	if err != nil {
		core.LogError(err.Error())
		return err
	}

	handle, err := ms.backend.GeometryCreate(config)
	if err != nil {
		core.LogError("failed to upload %s mesh: %v", shape, err)
		return err
	}
	ms.loaded[shape] = handle

	core.LogDebug("%s mesh uploaded: %d vertices, %d indices", shape, len(config.Vertices), len(config.Indices))
	return nil
}

// Draw issues the draw call for a previously loaded shape.
func (ms *MeshSystem) Draw(shape MeshShape) error {
	handle, ok := ms.loaded[shape]
	if !ok {
		err := fmt.Errorf("draw requested for %s mesh before it was loaded", shape)
		core.LogError(err.Error())
		return err
	}
	ms.backend.GeometryDraw(handle)
	return nil
}

// Shutdown releases all uploaded mesh buffers.
func (ms *MeshSystem) Shutdown() error {
	for shape, handle := range ms.loaded {
		ms.backend.GeometryDestroy(handle)
		delete(ms.loaded, shape)
	}
	return nil
}
