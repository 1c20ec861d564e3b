// Package photo loads structure photos and exposes their natural dimensions.
package photo

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/tiff"
)

// Photo is a decoded photograph plus its natural pixel dimensions. All
// annotation coordinates are expressed in this pixel grid.
type Photo struct {
	Path   string
	Image  image.Image
	Width  int
	Height int
}

// Load reads and decodes a photo from disk. Phone photos carry EXIF
// orientation, so decoding goes through imaging with auto-orientation;
// WebP files get an explicit fallback since imaging does not register it.
func Load(path string) (*Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		if strings.EqualFold(filepath.Ext(path), ".webp") {
			if _, serr := f.Seek(0, 0); serr == nil {
				if wimg, werr := webp.Decode(f); werr == nil {
					return fromImage(path, wimg), nil
				}
			}
		}
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return fromImage(path, img), nil
}

func fromImage(path string, img image.Image) *Photo {
	b := img.Bounds()
	return &Photo{
		Path:   path,
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// Thumbnail returns the photo scaled to fit within the given box, for the
// side panel preview.
func (p *Photo) Thumbnail(maxWidth, maxHeight int) image.Image {
	return imaging.Fit(p.Image, maxWidth, maxHeight, imaging.Linear)
}
