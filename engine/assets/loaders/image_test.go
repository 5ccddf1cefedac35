package loaders_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/assets/loaders"
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

func loadImage(t *testing.T, path string, flipY bool) (*metadata.ImageResourceData, error) {
	t.Helper()

	loader := &loaders.ImageLoader{}
	resource, err := loader.Load(path, metadata.ResourceTypeImage, &metadata.ImageResourceParams{FlipY: flipY})
	if err != nil {
		return nil, err
	}
	data, ok := resource.Data.(*metadata.ImageResourceData)
	require.True(t, ok)
	return data, nil
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestImageLoadRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 128})
		}
	}

	data, err := loadImage(t, writePNG(t, img), false)
	require.NoError(t, err)

	assert.Equal(t, 4, data.ChannelCount)
	assert.Equal(t, 3, data.Width)
	assert.Equal(t, 2, data.Height)
	assert.Len(t, data.Pixels, 3*2*4)

	// first packed pixel is the top-left source pixel
	assert.Equal(t, uint8(0), data.Pixels[0])
	assert.Equal(t, uint8(0), data.Pixels[1])
	assert.Equal(t, uint8(7), data.Pixels[2])
	assert.Equal(t, uint8(128), data.Pixels[3])
}

func TestImageLoadFlipY(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetNRGBA(0, y, color.NRGBA{R: uint8(y * 10), A: 255})
	}

	data, err := loadImage(t, writePNG(t, img), true)
	require.NoError(t, err)

	// bottom source row comes out first
	assert.Equal(t, uint8(20), data.Pixels[0])
	assert.Equal(t, uint8(10), data.Pixels[4])
	assert.Equal(t, uint8(0), data.Pixels[8])
}

func TestImageLoadJPEGPacksToRGB(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 100}))
	require.NoError(t, f.Close())

	data, err := loadImage(t, path, false)
	require.NoError(t, err)

	// JPEG decodes as YCbCr, which carries no alpha
	assert.Equal(t, 3, data.ChannelCount)
	assert.Len(t, data.Pixels, 4*4*3)
}

func TestImageLoadRejectsGrayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))

	_, err := loadImage(t, writePNG(t, img), false)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}

func TestImageLoadMissingFile(t *testing.T) {
	_, err := loadImage(t, filepath.Join(t.TempDir(), "absent.png"), false)
	assert.ErrorIs(t, err, core.ErrImageLoad)
}

func TestImageLoadGarbageData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := loadImage(t, path, false)
	assert.ErrorIs(t, err, core.ErrImageLoad)
}

func TestImageLoadRequiresTypedParams(t *testing.T) {
	loader := &loaders.ImageLoader{}
	_, err := loader.Load("whatever.png", metadata.ResourceTypeImage, nil)
	assert.Error(t, err)
}
