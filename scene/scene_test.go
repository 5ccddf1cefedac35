package scene_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/config"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
	"github.com/spaghettifunk/atelier/engine/renderer/renderertest"
	"github.com/spaghettifunk/atelier/engine/systems"
	"github.com/spaghettifunk/atelier/scene"
)

var sceneTextureFiles = []string{
	"leaf.jpg", "vase.jpg", "floor.jpg", "wall.jpg", "ottoman.jpg",
	"pillow.jpg", "bookshelf.jpg", "picture.jpg", "rug.jpg",
	"lamp_bot.jpg", "lamp_top.jpg", "books.jpg", "book2.jpg",
	"snowglobe_bot.jpg",
}

func newSceneFixture(t *testing.T, withTextures bool) (*scene.Scene, *systems.SystemManager, *renderertest.Backend) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "textures"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shaders"), 0o755))

	if withTextures {
		for _, name := range sceneTextureFiles {
			writeJPEG(t, filepath.Join(root, "textures", name))
		}
	}

	cfg := config.Default()
	cfg.Assets.RootDir = root

	backend := renderertest.New()
	sm, err := systems.NewSystemManager(cfg, backend)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sm.Shutdown() })

	return scene.New(sm), sm, backend
}

func writeJPEG(t *testing.T, path string) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 120, G: 90, B: 60, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func TestScenePrepareRegistersAllResources(t *testing.T) {
	s, sm, backend := newSceneFixture(t, true)

	require.NoError(t, s.Prepare())

	assert.Equal(t, len(sceneTextureFiles), sm.TextureSystem.Count())
	assert.Equal(t, 8, sm.MaterialSystem.Count())
	assert.Equal(t, metadata.MaxPointLights, sm.LightSystem.PointLightCount())

	// every texture got bound to its slot
	assert.Len(t, backend.Bound, len(sceneTextureFiles))

	// only the distinct shapes get buffers, not one per object
	assert.Len(t, backend.Geometries, 6)
}

func TestSceneRenderDrawsEveryObject(t *testing.T) {
	s, _, backend := newSceneFixture(t, true)
	require.NoError(t, s.Prepare())

	s.Render()

	assert.Len(t, backend.Draws, len(s.Objects()))
}

func TestSceneRenderPushesStateBeforeEachDraw(t *testing.T) {
	s, sm, backend := newSceneFixture(t, true)
	require.NoError(t, s.Prepare())

	s.Render()

	// after the full pass the live snapshot belongs to the last object
	last := s.Objects()[len(s.Objects())-1]
	pushed, ok := backend.Uniforms[sm.UniformNames.Model].(math.Mat4)
	require.True(t, ok)
	expected := math.ComposeTransform(last.Scale, last.Rotation, last.Position)
	assert.True(t, pushed.Compare(expected, 1e-6))

	material, found := sm.MaterialSystem.Find(last.MaterialTag)
	require.True(t, found)
	assert.Equal(t, material.Shininess, backend.Uniforms[sm.UniformNames.Material.Shininess])
}

func TestSceneRenderFallsBackToColorWithoutTextures(t *testing.T) {
	s, sm, backend := newSceneFixture(t, false)
	require.NoError(t, s.Prepare())

	s.Render()

	// nothing loaded, so every object must have dropped to flat colour
	assert.Equal(t, 0, sm.TextureSystem.Count())
	assert.Len(t, backend.Draws, len(s.Objects()))
	assert.Equal(t, false, backend.Uniforms[sm.UniformNames.UseTexture])
}

func TestSceneObjectsHaveDistinctIDsAndValidTags(t *testing.T) {
	s, sm, _ := newSceneFixture(t, true)
	require.NoError(t, s.Prepare())

	seen := make(map[string]bool)
	for _, obj := range s.Objects() {
		assert.False(t, seen[obj.ID.String()], "duplicate object id on '%s'", obj.Name)
		seen[obj.ID.String()] = true

		_, found := sm.MaterialSystem.Find(obj.MaterialTag)
		assert.True(t, found, "object '%s' references unknown material '%s'", obj.Name, obj.MaterialTag)
		if obj.TextureTag != "" {
			_, found := sm.TextureSystem.FindSlot(obj.TextureTag)
			assert.True(t, found, "object '%s' references unknown texture '%s'", obj.Name, obj.TextureTag)
		}
	}
}
