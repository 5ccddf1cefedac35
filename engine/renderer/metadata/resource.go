package metadata

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief No resource type. Files the asset manager does not care about. */
	ResourceTypeNone ResourceType = iota
	/** @brief Image resource type. */
	ResourceTypeImage
	/** @brief GLSL shader source resource type. */
	ResourceTypeShaderSource
)

/**
 * @brief A generic structure for a loaded resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

/**
 * @brief A structure to hold image resource data.
 */
type ImageResourceData struct {
	/** @brief The number of channels, 3 (RGB) or 4 (RGBA). */
	ChannelCount int
	/** @brief The width of the image. */
	Width int
	/** @brief The height of the image. */
	Height int
	/** @brief Tightly packed pixel rows. Bottom row first when loaded with FlipY. */
	Pixels []uint8
}

/** @brief Parameters used when loading an image. */
type ImageResourceParams struct {
	/** @brief Indicates if the image should be flipped on the y-axis when loaded. */
	FlipY bool
}

/**
 * @brief A structure to hold a GLSL shader source string.
 */
type ShaderSourceResourceData struct {
	Source string
}
