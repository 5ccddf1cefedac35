package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
	"github.com/spaghettifunk/atelier/engine/renderer/renderertest"
	"github.com/spaghettifunk/atelier/engine/systems"
)

func newTextureSystem(t *testing.T, maxCount int) (*systems.TextureSystem, *renderertest.Backend, string) {
	t.Helper()

	am, root := newAssetTree(t)
	backend := renderertest.New()
	ts, err := systems.NewTextureSystem(&systems.TextureSystemConfig{MaxTextureCount: maxCount}, am, backend)
	require.NoError(t, err)
	return ts, backend, root
}

func TestNewTextureSystemRejectsBadCapacity(t *testing.T) {
	am, _ := newAssetTree(t)

	for _, maxCount := range []int{0, -1, metadata.MaxTextureSlots + 1} {
		_, err := systems.NewTextureSystem(&systems.TextureSystemConfig{MaxTextureCount: maxCount}, am, renderertest.New())
		assert.Error(t, err)
	}
}

func TestTextureLoadAssignsDenseSlotsInLoadOrder(t *testing.T) {
	ts, backend, root := newTextureSystem(t, metadata.MaxTextureSlots)

	names := []string{"wood", "fabric", "metal"}
	for _, n := range names {
		writeTexturePNG(t, root, n+".png", 4, 4)
		require.NoError(t, ts.Load(n+".png", n))
	}

	assert.Equal(t, 3, ts.Count())
	assert.Len(t, backend.Textures, 3)
	for i, n := range names {
		slot, found := ts.FindSlot(n)
		require.True(t, found)
		assert.Equal(t, i, slot)
	}
}

func TestTextureLoadFailureConsumesNoSlot(t *testing.T) {
	ts, _, root := newTextureSystem(t, metadata.MaxTextureSlots)

	err := ts.Load("missing.png", "missing")
	assert.ErrorIs(t, err, core.ErrImageLoad)
	assert.Equal(t, 0, ts.Count())

	writeGrayPNG(t, root, "gray.png")
	err = ts.Load("gray.png", "gray")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
	assert.Equal(t, 0, ts.Count())

	// the next successful load still takes slot 0
	writeTexturePNG(t, root, "wood.png", 4, 4)
	require.NoError(t, ts.Load("wood.png", "wood"))
	slot, found := ts.FindSlot("wood")
	require.True(t, found)
	assert.Equal(t, 0, slot)
}

func TestTextureLoadCapacityExceeded(t *testing.T) {
	ts, _, root := newTextureSystem(t, 2)

	writeTexturePNG(t, root, "a.png", 2, 2)
	require.NoError(t, ts.Load("a.png", "a"))
	require.NoError(t, ts.Load("a.png", "b"))

	err := ts.Load("a.png", "c")
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, 2, ts.Count())
}

func TestTextureDuplicateTagFirstMatchWins(t *testing.T) {
	ts, _, root := newTextureSystem(t, metadata.MaxTextureSlots)

	writeTexturePNG(t, root, "a.png", 2, 2)
	writeTexturePNG(t, root, "b.png", 2, 2)
	require.NoError(t, ts.Load("a.png", "wood"))
	require.NoError(t, ts.Load("b.png", "wood"))

	// both entries consume slots, lookups always resolve to the first
	assert.Equal(t, 2, ts.Count())
	slot, found := ts.FindSlot("wood")
	require.True(t, found)
	assert.Equal(t, 0, slot)
}

func TestTextureFindUnknownTag(t *testing.T) {
	ts, _, _ := newTextureSystem(t, metadata.MaxTextureSlots)

	slot, found := ts.FindSlot("nope")
	assert.False(t, found)
	assert.Equal(t, -1, slot)

	handle, found := ts.FindHandle("nope")
	assert.False(t, found)
	assert.Equal(t, metadata.InvalidTextureHandle, handle)
}

func TestTextureBindAllMatchesSlots(t *testing.T) {
	ts, backend, root := newTextureSystem(t, metadata.MaxTextureSlots)

	writeTexturePNG(t, root, "a.png", 2, 2)
	require.NoError(t, ts.Load("a.png", "a"))
	require.NoError(t, ts.Load("a.png", "b"))

	ts.BindAll()

	require.Len(t, backend.Bound, 2)
	for tag, slot := range map[string]int{"a": 0, "b": 1} {
		handle, found := ts.FindHandle(tag)
		require.True(t, found)
		assert.Equal(t, handle, backend.Bound[slot])
	}
}

func TestTextureShutdownDestroysEverything(t *testing.T) {
	ts, backend, root := newTextureSystem(t, metadata.MaxTextureSlots)

	writeTexturePNG(t, root, "a.png", 2, 2)
	require.NoError(t, ts.Load("a.png", "a"))
	require.NoError(t, ts.Load("a.png", "b"))

	require.NoError(t, ts.Shutdown())

	assert.Equal(t, 0, ts.Count())
	assert.Empty(t, backend.Textures)
	assert.Len(t, backend.DestroyedTextures, 2)
}
