package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
	"github.com/spaghettifunk/atelier/engine/renderer/renderertest"
	"github.com/spaghettifunk/atelier/engine/systems"
)

func newLightFixture(t *testing.T) (*systems.LightSystem, *renderertest.Backend, *metadata.UniformNames) {
	t.Helper()

	am, _ := newAssetTree(t)
	backend := renderertest.New()
	uniforms := metadata.DefaultUniformNames()
	ss := systems.NewShaderSystem(am, backend)
	return systems.NewLightSystem(ss, uniforms), backend, uniforms
}

func TestLightConfigurePushesDirectionalAndPoints(t *testing.T) {
	ls, backend, uniforms := newLightFixture(t)

	ls.SetDirectional(metadata.DirectionalLight{
		Direction: math.NewVec3(-7, 10, -10),
		Ambient:   math.NewVec3(0.2, 0.2, 0.2),
		Diffuse:   math.NewVec3(0.7, 0.7, 0.7),
		Specular:  math.NewVec3Zero(),
		Active:    true,
	})
	require.NoError(t, ls.AddPointLight(metadata.PointLight{
		Position:  math.NewVec3(14, 35, 5),
		Diffuse:   math.NewVec3(0.4, 0.4, 0.4),
		Constant:  1.0,
		Linear:    0.09,
		Quadratic: 0.032,
		Active:    true,
	}))

	ls.Configure()

	assert.Equal(t, true, backend.Uniforms[uniforms.UseLighting])
	assert.Equal(t, math.NewVec3(-7, 10, -10), backend.Uniforms[uniforms.DirectionalLight.Direction])
	assert.Equal(t, true, backend.Uniforms[uniforms.DirectionalLight.Active])

	assert.Equal(t, math.NewVec3(14, 35, 5), backend.Uniforms[uniforms.PointLights[0].Position])
	assert.Equal(t, float32(0.09), backend.Uniforms[uniforms.PointLights[0].Linear])
	assert.Equal(t, true, backend.Uniforms[uniforms.PointLights[0].Active])
}

func TestLightConfigureDeactivatesUnusedSlots(t *testing.T) {
	ls, backend, uniforms := newLightFixture(t)

	require.NoError(t, ls.AddPointLight(metadata.PointLight{Active: true}))
	ls.Configure()

	for i := 1; i < metadata.MaxPointLights; i++ {
		assert.Equal(t, false, backend.Uniforms[uniforms.PointLights[i].Active])
	}
}

func TestLightPointSlotsAreBounded(t *testing.T) {
	ls, _, _ := newLightFixture(t)

	for i := 0; i < metadata.MaxPointLights; i++ {
		require.NoError(t, ls.AddPointLight(metadata.PointLight{Active: true}))
	}
	assert.Equal(t, metadata.MaxPointLights, ls.PointLightCount())

	err := ls.AddPointLight(metadata.PointLight{Active: true})
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, metadata.MaxPointLights, ls.PointLightCount())
}

func TestLightConfigureWithoutDirectionalSkipsIt(t *testing.T) {
	ls, backend, uniforms := newLightFixture(t)

	ls.Configure()

	assert.Equal(t, true, backend.Uniforms[uniforms.UseLighting])
	_, wrote := backend.Uniforms[uniforms.DirectionalLight.Direction]
	assert.False(t, wrote)
}
