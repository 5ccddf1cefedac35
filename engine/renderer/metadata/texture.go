package metadata

/**
 * @brief The maximum number of texture units the renderer can keep bound at
 * once. Loads beyond this are rejected with a CapacityExceededError.
 */
const MaxTextureSlots int = 16

/** @brief An opaque handle to a GPU texture object. Zero is never valid. */
type TextureHandle uint32

/** @brief The handle value used for "no texture". */
const InvalidTextureHandle TextureHandle = 0

/**
 * @brief A texture registered with the texture system. Entries are created
 * during scene preparation and owned exclusively by the registry until
 * teardown releases them all together.
 */
type TextureEntry struct {
	/** @brief The texture unit this entry is bound to. Dense, assigned in load order from 0. */
	Slot int
	/** @brief The human-readable lookup key. Expected unique; first match wins. */
	Tag string
	/** @brief The GPU texture object. */
	Handle TextureHandle
	/** @brief The width of the source image in pixels. */
	Width int
	/** @brief The height of the source image in pixels. */
	Height int
	/** @brief The channel count of the source image, 3 (RGB) or 4 (RGBA). */
	ChannelCount int
}
