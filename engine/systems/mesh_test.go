package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/renderer/renderertest"
	"github.com/spaghettifunk/atelier/engine/systems"
)

var allShapes = []systems.MeshShape{
	systems.ShapePlane,
	systems.ShapeBox,
	systems.ShapeSphere,
	systems.ShapeCylinder,
	systems.ShapeCone,
	systems.ShapePyramid,
	systems.ShapePrism,
	systems.ShapeTaperedCylinder,
}

func TestMeshLoadUploadsEveryShape(t *testing.T) {
	backend := renderertest.New()
	ms := systems.NewMeshSystem(backend)

	for _, shape := range allShapes {
		require.NoError(t, ms.Load(shape), "shape %s", shape)
	}

	assert.Len(t, backend.Geometries, len(allShapes))
	for _, config := range backend.Geometries {
		assert.NotEmpty(t, config.Vertices)
		assert.NotEmpty(t, config.Indices)
		// indices come in triangles and stay in range
		assert.Zero(t, len(config.Indices)%3)
		for _, idx := range config.Indices {
			assert.Less(t, int(idx), len(config.Vertices))
		}
	}
}

func TestMeshLoadIsIdempotent(t *testing.T) {
	backend := renderertest.New()
	ms := systems.NewMeshSystem(backend)

	require.NoError(t, ms.Load(systems.ShapeBox))
	require.NoError(t, ms.Load(systems.ShapeBox))

	assert.Len(t, backend.Geometries, 1)
}

func TestMeshDrawRequiresLoad(t *testing.T) {
	backend := renderertest.New()
	ms := systems.NewMeshSystem(backend)

	assert.Error(t, ms.Draw(systems.ShapeSphere))
	assert.Empty(t, backend.Draws)

	require.NoError(t, ms.Load(systems.ShapeSphere))
	require.NoError(t, ms.Draw(systems.ShapeSphere))
	require.NoError(t, ms.Draw(systems.ShapeSphere))
	assert.Len(t, backend.Draws, 2)
}

func TestMeshShutdownReleasesBuffers(t *testing.T) {
	backend := renderertest.New()
	ms := systems.NewMeshSystem(backend)

	require.NoError(t, ms.Load(systems.ShapeBox))
	require.NoError(t, ms.Load(systems.ShapePlane))
	require.NoError(t, ms.Shutdown())

	assert.Empty(t, backend.Geometries)
	assert.Len(t, backend.DestroyedGeometry, 2)
	assert.Error(t, ms.Draw(systems.ShapeBox))
}

func TestMeshNormalsAreUnitLength(t *testing.T) {
	backend := renderertest.New()
	ms := systems.NewMeshSystem(backend)

	for _, shape := range allShapes {
		require.NoError(t, ms.Load(shape))
	}

	for _, config := range backend.Geometries {
		for _, v := range config.Vertices {
			assert.InDelta(t, 1.0, v.Normal.Length(), 1e-3, "mesh %s", config.Name)
		}
	}
}
