package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

// TextureExtensions are the image formats the texture loader can decode.
var TextureExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp"}

type TextureLoader struct{}

func (tl *TextureLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	data, err := tl.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeImage,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(len(data.Pixels)),
		Data:     data,
	}, nil
}

func (tl *TextureLoader) Unload(*metadata.Resource) error {
	return nil
}

// LoadTexture decodes the image at path into RGBA8 pixels with the first row
// at the bottom.
func (tl *TextureLoader) LoadTexture(path string) (*metadata.TextureData, error) {
	if path == "" {
		return nil, core.ErrNoFileSpecified
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", core.ErrDecodeTexture, path, err)
	}
	core.LogDebug("decoded %s texture %s", format, path)
	return textureFromImage(img), nil
}

func textureFromImage(img image.Image) *metadata.TextureData {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()
	rowSize := width * 4
	pixels := make([]uint8, rowSize*height)
	for y := 0; y < height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowSize]
		copy(pixels[(height-1-y)*rowSize:], src)
	}

	transparent := false
	for i := 3; i < len(pixels); i += 4 {
		if pixels[i] != 0xff {
			transparent = true
			break
		}
	}

	return &metadata.TextureData{
		Width:           uint32(width),
		Height:          uint32(height),
		Pixels:          pixels,
		HasTransparency: transparent,
	}
}
