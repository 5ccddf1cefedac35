package systems

import (
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

/**
 * @brief RenderStateSystem pushes the per-object state snapshot — model
 * matrix, colour-or-texture selection, material and UV scale — into shader
 * uniforms immediately before the object's draw call. Exactly one snapshot
 * is live at a time: each call here overwrites its part of the previous
 * object's state, and the paired draw must happen before the next object
 * starts mutating it.
 */
type RenderStateSystem struct {
	shaderSystem   *ShaderSystem
	textureSystem  *TextureSystem
	materialSystem *MaterialSystem
	uniforms       *metadata.UniformNames
}

func NewRenderStateSystem(ss *ShaderSystem, ts *TextureSystem, ms *MaterialSystem, uniforms *metadata.UniformNames) *RenderStateSystem {
	return &RenderStateSystem{
		shaderSystem:   ss,
		textureSystem:  ts,
		materialSystem: ms,
		uniforms:       uniforms,
	}
}

// SetTransformations composes the model matrix from the object's scale,
// per-axis rotation in degrees and position, and pushes it to the shader.
func (rs *RenderStateSystem) SetTransformations(scale, rotationDegrees, position math.Vec3) {
	model := math.ComposeTransform(scale, rotationDegrees, position)
	rs.shaderSystem.SetMat4(rs.uniforms.Model, model)
}

// SetShaderColor switches the shader to flat colour mode and pushes the
// given RGBA colour. Mutually exclusive with SetShaderTexture.
func (rs *RenderStateSystem) SetShaderColor(red, green, blue, alpha float32) {
	rs.shaderSystem.SetBool(rs.uniforms.UseTexture, false)
	rs.shaderSystem.SetVec4(rs.uniforms.ObjectColor, math.NewVec4(red, green, blue, alpha))
}

// SetShaderTexture switches the shader to texture mode and points the
// object sampler at the unit resolved from the tag. If the tag is not
// registered the shader is left in flat colour mode and an UnknownTagError
// is returned; an invalid unit is never pushed.
func (rs *RenderStateSystem) SetShaderTexture(tag string) error {
	slot, found := rs.textureSystem.FindSlot(tag)
	if !found {
		err := &core.UnknownTagError{Resource: "texture", Tag: tag}
		core.LogWarn(err.Error())
		rs.shaderSystem.SetBool(rs.uniforms.UseTexture, false)
		return err
	}
	rs.shaderSystem.SetBool(rs.uniforms.UseTexture, true)
	rs.shaderSystem.SetSampler(rs.uniforms.ObjectTexture, slot)
	return nil
}

// SetShaderMaterial pushes the diffuse/specular/shininess uniforms of the
// material registered under tag. If the tag is not registered the default
// material is pushed instead — the previous object's material must never
// stay live — and an UnknownTagError is returned.
func (rs *RenderStateSystem) SetShaderMaterial(tag string) error {
	material, found := rs.materialSystem.Find(tag)
	var err error
	if !found {
		err = &core.UnknownTagError{Resource: "material", Tag: tag}
		core.LogWarn(err.Error())
		material = metadata.DefaultMaterial()
	}

	names := rs.uniforms.Material
	rs.shaderSystem.SetVec3(names.DiffuseColor, material.DiffuseColor)
	rs.shaderSystem.SetVec3(names.SpecularColor, material.SpecularColor)
	// pow() with a zero exponent blows out the highlight
	rs.shaderSystem.SetFloat(names.Shininess, math.Clamp(material.Shininess, 0.1, 128.0))
	return err
}

// SetTextureUVScale pushes the scale applied to texture coordinates,
// letting one texture repeat or stretch across a mesh's UV space.
func (rs *RenderStateSystem) SetTextureUVScale(u, v float32) {
	rs.shaderSystem.SetVec2(rs.uniforms.UVScale, math.NewVec2(u, v))
}
