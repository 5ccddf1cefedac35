package metadata

import "github.com/spaghettifunk/atelier/engine/math"

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/**
 * @brief A material, which represents the surface appearance of an object
 * in the world: how much diffuse and specular light it reflects and how
 * concentrated its highlight is. Value type, immutable after registration.
 * Multiple scene objects may reference the same material by tag.
 */
type Material struct {
	/** @brief The human-readable lookup key. Expected unique; first match wins. */
	Tag string
	/** @brief The diffuse colour. */
	DiffuseColor math.Vec3
	/** @brief The specular colour. */
	SpecularColor math.Vec3
	/** @brief The material shininess, determines how concentrated the specular highlight is. */
	Shininess float32
}

// DefaultMaterial is the neutral material pushed when a lookup by tag
// misses, so a bad tag shows up as a flat grey object instead of silently
// reusing whatever material the previous object set.
func DefaultMaterial() Material {
	return Material{
		Tag:           DefaultMaterialName,
		DiffuseColor:  math.NewVec3(0.5, 0.5, 0.5),
		SpecularColor: math.NewVec3Zero(),
		Shininess:     1.0,
	}
}
