package systems

import (
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

/**
 * @brief LightSystem configures the fixed set of scene light sources: one
 * directional light and up to four point lights in indexed slots. Lights
 * are described during preparation and pushed into shader uniform state
 * exactly once; nothing here mutates per frame.
 */
type LightSystem struct {
	shaderSystem *ShaderSystem
	uniforms     *metadata.UniformNames

	directional    metadata.DirectionalLight
	hasDirectional bool
	pointLights    []metadata.PointLight
}

func NewLightSystem(ss *ShaderSystem, uniforms *metadata.UniformNames) *LightSystem {
	return &LightSystem{
		shaderSystem: ss,
		uniforms:     uniforms,
		pointLights:  make([]metadata.PointLight, 0, metadata.MaxPointLights),
	}
}

// SetDirectional describes the single directional light. Calling it again
// overwrites the slot.
func (ls *LightSystem) SetDirectional(light metadata.DirectionalLight) {
	ls.directional = light
	ls.hasDirectional = true
}

// AddPointLight claims the next point light slot. There are exactly
// metadata.MaxPointLights slots and no dynamic growth.
func (ls *LightSystem) AddPointLight(light metadata.PointLight) error {
	if len(ls.pointLights) >= metadata.MaxPointLights {
		err := &core.CapacityExceededError{Resource: "point light", Capacity: metadata.MaxPointLights}
		core.LogError(err.Error())
		return err
	}
	ls.pointLights = append(ls.pointLights, light)
	return nil
}

// Configure pushes the whole lighting setup into shader uniform state and
// enables the lighting model. Must run after the shader program is in use
// and before the render loop begins.
func (ls *LightSystem) Configure() {
	ls.shaderSystem.SetBool(ls.uniforms.UseLighting, true)

	if ls.hasDirectional {
		names := ls.uniforms.DirectionalLight
		ls.shaderSystem.SetVec3(names.Direction, ls.directional.Direction)
		ls.shaderSystem.SetVec3(names.Ambient, ls.directional.Ambient)
		ls.shaderSystem.SetVec3(names.Diffuse, ls.directional.Diffuse)
		ls.shaderSystem.SetVec3(names.Specular, ls.directional.Specular)
		ls.shaderSystem.SetBool(names.Active, ls.directional.Active)
	}

	for i, light := range ls.pointLights {
		names := ls.uniforms.PointLights[i]
		ls.shaderSystem.SetVec3(names.Position, light.Position)
		ls.shaderSystem.SetVec3(names.Ambient, light.Ambient)
		ls.shaderSystem.SetVec3(names.Diffuse, light.Diffuse)
		ls.shaderSystem.SetVec3(names.Specular, light.Specular)
		ls.shaderSystem.SetFloat(names.Constant, light.Constant)
		ls.shaderSystem.SetFloat(names.Linear, light.Linear)
		ls.shaderSystem.SetFloat(names.Quadratic, light.Quadratic)
		ls.shaderSystem.SetBool(names.Active, light.Active)
	}

	// remaining slots stay off so the shader skips them
	for i := len(ls.pointLights); i < metadata.MaxPointLights; i++ {
		ls.shaderSystem.SetBool(ls.uniforms.PointLights[i].Active, false)
	}

	core.LogInfo("scene lighting configured: directional=%t, point lights=%d", ls.hasDirectional, len(ls.pointLights))
}

// PointLightCount returns the number of claimed point light slots.
func (ls *LightSystem) PointLightCount() int {
	return len(ls.pointLights)
}
