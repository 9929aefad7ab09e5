package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	// Register image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/gift"
	"github.com/h2non/filetype"
	"github.com/rwcarlsen/goexif/exif"
)

// ErrNotAnImage is returned when decoding a texture from non image data
var ErrNotAnImage = errors.New("not an image")

// Orientation is the EXIF orientation of an image, 1 being upright
type Orientation int

// Filters returns the transformations turning an image with this
// orientation upright
func (o Orientation) Filters() []gift.Filter {
	switch o {
	case 2:
		return []gift.Filter{gift.FlipHorizontal()}
	case 3:
		return []gift.Filter{gift.Rotate180()}
	case 4:
		return []gift.Filter{gift.FlipVertical()}
	case 5:
		return []gift.Filter{gift.Transpose()}
	case 6:
		return []gift.Filter{gift.Rotate270()}
	case 7:
		return []gift.Filter{gift.Transverse()}
	case 8:
		return []gift.Filter{gift.Rotate90()}
	default:
		return nil
	}
}

// DecodeTexture decodes an image and returns it upright and flipped
// vertically, as GL expects the first row at the bottom
func DecodeTexture(r io.ReadSeeker) (*image.RGBA, error) {
	header := make([]byte, 261)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("reading texture header: %w", err)
	}
	kind, err := filetype.Match(header[:n])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, err)
	}
	if kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%w: type '%s'", ErrNotAnImage, kind.MIME.Value)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s texture: %w", kind.Extension, err)
	}
	orientation := Orientation(1)
	if kind.Extension == "jpg" || kind.Extension == "tif" {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		orientation = readOrientation(r)
	}
	filter := gift.New(append(orientation.Filters(), gift.FlipVertical())...)
	dst := image.NewRGBA(filter.Bounds(img.Bounds()))
	filter.Draw(dst, img)
	return dst, nil
}

func readOrientation(r io.Reader) Orientation {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return Orientation(v)
}

// Placeholder returns the single opaque blue pixel shown until a texture
// is loaded
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{0, 0, 255, 255})
	return img
}

func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
