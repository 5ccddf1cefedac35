package systems

import (
	"fmt"

	"github.com/spaghettifunk/atelier/engine/assets"
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be loaded at once.
	 * Bounded by the number of texture units the hardware can keep bound. */
	MaxTextureCount int
}

/**
 * @brief TextureSystem is the owning registry for all GPU textures in the
 * scene. Textures are loaded once during preparation, each taking the next
 * dense slot in load order, and are looked up by tag at draw time. The
 * system is the only component that creates or destroys texture handles.
 */
type TextureSystem struct {
	config *TextureSystemConfig
	// registered textures in load order; index == assigned slot
	registered []*metadata.TextureEntry

	assetManager *assets.AssetManager
	backend      renderer.Backend
}

func NewTextureSystem(config *TextureSystemConfig, am *assets.AssetManager, backend renderer.Backend) (*TextureSystem, error) {
	if config.MaxTextureCount <= 0 || config.MaxTextureCount > metadata.MaxTextureSlots {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be in 1..%d", metadata.MaxTextureSlots)
		core.LogError(err.Error())
		return nil, err
	}

	return &TextureSystem{
		config:       config,
		registered:   make([]*metadata.TextureEntry, 0, config.MaxTextureCount),
		assetManager: am,
		backend:      backend,
	}, nil
}

// Load reads the named image from the asset tree, uploads it as a mipmapped
// 2D texture and registers it under the given tag in the next free slot.
// Images are flipped vertically on load; only 3- and 4-channel images are
// accepted. A failed load consumes no slot and never aborts the caller.
func (ts *TextureSystem) Load(name, tag string) error {
	if len(ts.registered) >= ts.config.MaxTextureCount {
		err := &core.CapacityExceededError{Resource: "texture", Capacity: ts.config.MaxTextureCount}
		core.LogError("cannot load texture '%s': %v", name, err)
		return err
	}

	if _, found := ts.FindSlot(tag); found {
		core.LogWarn("texture tag '%s' is already registered; the new entry will be shadowed on lookup", tag)
	}

	resource, err := ts.assetManager.LoadAsset(name, metadata.ResourceTypeImage, &metadata.ImageResourceParams{FlipY: true})
	if err != nil {
		core.LogError("failed to load texture '%s': %v", name, err)
		return err
	}
	defer ts.assetManager.UnloadAsset(resource)

	data, ok := resource.Data.(*metadata.ImageResourceData)
	if !ok {
		err := fmt.Errorf("image resource '%s' holds unexpected data type %T", name, resource.Data)
		core.LogError(err.Error())
		return err
	}

	handle, err := ts.backend.TextureCreate(data.Pixels, data.Width, data.Height, data.ChannelCount)
	if err != nil {
		core.LogError("failed to upload texture '%s': %v", name, err)
		return err
	}

	entry := &metadata.TextureEntry{
		Slot:         len(ts.registered),
		Tag:          tag,
		Handle:       handle,
		Width:        data.Width,
		Height:       data.Height,
		ChannelCount: data.ChannelCount,
	}
	ts.registered = append(ts.registered, entry)

	core.LogInfo("loaded texture '%s' as '%s' in slot %d (%dx%d, %d channels)",
		name, tag, entry.Slot, entry.Width, entry.Height, entry.ChannelCount)

	return nil
}

// BindAll binds every registered texture to the texture unit matching its
// slot. Called once after all loads; the bindings persist across frames.
func (ts *TextureSystem) BindAll() {
	for _, entry := range ts.registered {
		ts.backend.TextureBind(entry.Slot, entry.Handle)
	}
}

// FindSlot returns the texture unit for the first entry matching tag.
// Not finding the tag is an expected outcome, not an error.
func (ts *TextureSystem) FindSlot(tag string) (int, bool) {
	for _, entry := range ts.registered {
		if entry.Tag == tag {
			return entry.Slot, true
		}
	}
	return -1, false
}

// FindHandle returns the GPU handle for the first entry matching tag.
func (ts *TextureSystem) FindHandle(tag string) (metadata.TextureHandle, bool) {
	for _, entry := range ts.registered {
		if entry.Tag == tag {
			return entry.Handle, true
		}
	}
	return metadata.InvalidTextureHandle, false
}

// Count returns the number of registered textures.
func (ts *TextureSystem) Count() int {
	return len(ts.registered)
}

// Shutdown releases every GPU texture owned by the registry and clears it.
// All slots are invalidated together; afterwards no handle from this
// registry may be used again.
func (ts *TextureSystem) Shutdown() error {
	for _, entry := range ts.registered {
		ts.backend.TextureDestroy(entry.Handle)
		entry.Handle = metadata.InvalidTextureHandle
	}
	ts.registered = ts.registered[:0]
	return nil
}
