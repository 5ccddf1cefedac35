package metadata

import "fmt"

/**
 * @brief The wire-format names of the material member uniforms.
 */
type MaterialUniformNames struct {
	DiffuseColor  string
	SpecularColor string
	Shininess     string
}

/**
 * @brief The wire-format names of the directional light member uniforms.
 */
type DirectionalLightUniformNames struct {
	Direction string
	Ambient   string
	Diffuse   string
	Specular  string
	Active    string
}

/**
 * @brief The wire-format names of one point light slot's member uniforms.
 */
type PointLightUniformNames struct {
	Position  string
	Ambient   string
	Diffuse   string
	Specular  string
	Constant  string
	Linear    string
	Quadratic string
	Active    string
}

/**
 * @brief UniformNames maps every logical uniform role to its wire-format
 * name in the scene shader. Constructed once at startup and passed by
 * reference; never mutated afterwards. This replaces scattering the name
 * strings as globals through the systems that write them.
 */
type UniformNames struct {
	/** @brief The model matrix. */
	Model string
	/** @brief The view matrix, owned by the hosting camera. */
	View string
	/** @brief The projection matrix, owned by the hosting camera. */
	Projection string
	/** @brief The camera's world-space position, for specular shading. */
	ViewPosition string
	/** @brief The flat object colour, used when texturing is off. */
	ObjectColor string
	/** @brief The sampler holding the object's texture unit. */
	ObjectTexture string
	/** @brief Flag selecting texture sampling over flat colour. */
	UseTexture string
	/** @brief Flag enabling the lighting model. */
	UseLighting string
	/** @brief The scale applied to texture coordinates. */
	UVScale string
	/** @brief The current material member uniforms. */
	Material MaterialUniformNames
	/** @brief The directional light member uniforms. */
	DirectionalLight DirectionalLightUniformNames
	/** @brief The member uniforms of each fixed point light slot. */
	PointLights [MaxPointLights]PointLightUniformNames
}

// DefaultUniformNames builds the uniform name schema of the scene shader.
func DefaultUniformNames() *UniformNames {
	names := &UniformNames{
		Model:         "model",
		View:          "view",
		Projection:    "projection",
		ViewPosition:  "viewPosition",
		ObjectColor:   "objectColor",
		ObjectTexture: "objectTexture",
		UseTexture:    "bUseTexture",
		UseLighting:   "bUseLighting",
		UVScale:       "UVscale",
		Material: MaterialUniformNames{
			DiffuseColor:  "material.diffuseColor",
			SpecularColor: "material.specularColor",
			Shininess:     "material.shininess",
		},
		DirectionalLight: DirectionalLightUniformNames{
			Direction: "directionalLight.direction",
			Ambient:   "directionalLight.ambient",
			Diffuse:   "directionalLight.diffuse",
			Specular:  "directionalLight.specular",
			Active:    "directionalLight.bActive",
		},
	}
	for i := 0; i < MaxPointLights; i++ {
		names.PointLights[i] = PointLightUniformNames{
			Position:  fmt.Sprintf("pointLights[%d].position", i),
			Ambient:   fmt.Sprintf("pointLights[%d].ambient", i),
			Diffuse:   fmt.Sprintf("pointLights[%d].diffuse", i),
			Specular:  fmt.Sprintf("pointLights[%d].specular", i),
			Constant:  fmt.Sprintf("pointLights[%d].constant", i),
			Linear:    fmt.Sprintf("pointLights[%d].linear", i),
			Quadratic: fmt.Sprintf("pointLights[%d].quadratic", i),
			Active:    fmt.Sprintf("pointLights[%d].bActive", i),
		}
	}
	return names
}
