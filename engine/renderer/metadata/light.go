package metadata

import "github.com/spaghettifunk/atelier/engine/math"

/** @brief The fixed number of point light slots. No dynamic growth. */
const MaxPointLights int = 4

/**
 * @brief A single directional light source. The scene has exactly one;
 * configuring it again overwrites the slot.
 */
type DirectionalLight struct {
	/** @brief The direction the light travels in. */
	Direction math.Vec3
	/** @brief The ambient contribution. */
	Ambient math.Vec3
	/** @brief The diffuse contribution. */
	Diffuse math.Vec3
	/** @brief The specular contribution. */
	Specular math.Vec3
	/** @brief Whether the shader should evaluate this light. */
	Active bool
}

/**
 * @brief A point light source occupying one of the fixed indexed slots.
 * Configured once during preparation; not mutated per frame.
 */
type PointLight struct {
	/** @brief The world-space position of the light. */
	Position math.Vec3
	/** @brief The ambient contribution. */
	Ambient math.Vec3
	/** @brief The diffuse contribution. */
	Diffuse math.Vec3
	/** @brief The specular contribution. */
	Specular math.Vec3
	/** @brief The constant attenuation factor. */
	Constant float32
	/** @brief The linear attenuation factor. */
	Linear float32
	/** @brief The quadratic attenuation factor. */
	Quadratic float32
	/** @brief Whether the shader should evaluate this light. */
	Active bool
}
