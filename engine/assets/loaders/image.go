package loaders

import (
	"fmt"
	"image"
	"os"

	// register the decoders the loader supports
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	xdraw "golang.org/x/image/draw"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

type ImageLoader struct{}

func (il *ImageLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	typedParams, ok := params.(*metadata.ImageResourceParams)
	if !ok {
		return nil, fmt.Errorf("image loader requires *ImageResourceParams, got %T", params)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &core.ImageLoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &core.ImageLoadError{Path: path, Err: err}
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, &core.UnsupportedFormatError{Path: path, ChannelCount: channels}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// normalize to NRGBA, then pack down to the source channel count
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)

	pixels := packPixels(nrgba, channels, typedParams.FlipY)

	core.LogDebug("loaded image '%s' (%s), width:%d, height:%d, channels:%d", path, format, width, height, channels)

	return &metadata.Resource{
		Name:     format,
		FullPath: path,
		DataSize: uint64(len(pixels)),
		Data: &metadata.ImageResourceData{
			ChannelCount: channels,
			Width:        width,
			Height:       height,
			Pixels:       pixels,
		},
	}, nil
}

func (il *ImageLoader) Unload(*metadata.Resource) error {
	return nil
}

// channelCount reports how many colour channels the decoded image natively
// carries, before any conversion done for the GPU upload.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.CMYK:
		// no alpha; packs down to RGB like YCbCr does
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return 4
	case *image.Paletted:
		return 4
	default:
		return 0
	}
}

// packPixels flattens the NRGBA image into tightly packed RGB or RGBA rows.
// With flipY the bottom image row comes first, matching a texture coordinate
// convention where V=0 is the bottom of the image.
func packPixels(img *image.NRGBA, channels int, flipY bool) []uint8 {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	out := make([]uint8, 0, width*height*channels)
	for row := 0; row < height; row++ {
		y := row
		if flipY {
			y = height - 1 - row
		}
		rowStart := y * img.Stride
		for x := 0; x < width; x++ {
			p := rowStart + x*4
			out = append(out, img.Pix[p], img.Pix[p+1], img.Pix[p+2])
			if channels == 4 {
				out = append(out, img.Pix[p+3])
			}
		}
	}
	return out
}
