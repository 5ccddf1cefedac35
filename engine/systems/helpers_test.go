package systems_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/assets"
	"github.com/spaghettifunk/atelier/engine/config"
)

// newAssetTree builds a throwaway asset directory with textures/ and
// shaders/ subdirectories and returns a running asset manager over it.
func newAssetTree(t *testing.T) (*assets.AssetManager, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "textures"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shaders"), 0o755))

	am, err := assets.NewAssetManager(config.AssetsConfig{
		RootDir:    root,
		TextureDir: "textures",
		ShaderDir:  "shaders",
	})
	require.NoError(t, err)
	require.NoError(t, am.Initialize())
	t.Cleanup(func() { _ = am.Shutdown() })

	return am, root
}

// writeTexturePNG writes a small RGBA test image. Each row gets a distinct
// red value so vertical orientation is observable after decoding.
func writeTexturePNG(t *testing.T, root, name string, width, height int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y * 10), G: uint8(x * 10), B: 200, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(root, "textures", name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// writeGrayPNG writes a single-channel image, which the loader must reject.
func writeGrayPNG(t *testing.T, root, name string) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 4, 4))
	f, err := os.Create(filepath.Join(root, "textures", name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeShader(t *testing.T, root, name, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "shaders", name), []byte(source), 0o644))
}
