package scene

import (
	"bufio"
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureImage is tightly packed 8 bit pixel data, bottom row first.
type TextureImage struct {
	Width    int
	Height   int
	Channels int // 3 - rgb, 4 - rgba
	Pix      []byte
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// signature, IHDR length and type, width, height, bit depth, color type
const pngHeaderLen = 8 + 8 + 4 + 4 + 1 + 1

// pngChannels reads the color type of a png header. Go decodes gray+alpha
// into NRGBA, so the source channel count has to come from the file.
// ok is false for non png data and for color types resolved after decoding.
func pngChannels(header []byte) (channels int, ok bool) {
	if len(header) < pngHeaderLen || !bytes.Equal(header[:8], pngSignature) || string(header[12:16]) != "IHDR" {
		return 0, false
	}
	switch header[25] {
	case 0:
		return 1, true
	case 2:
		return 3, true
	case 4:
		return 2, true
	case 6:
		return 4, true
	}
	return 0, false
}

// DecodeTexture reads an image file and converts it for upload.
func DecodeTexture(path string) (*TextureImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if header, err := r.Peek(pngHeaderLen); err == nil {
		if channels, ok := pngChannels(header); ok && channels != 3 && channels != 4 {
			return nil, errors.Wrapf(ErrUnsupportedFormat, "%q: png image with %d channels", path, channels)
		}
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%q: %v", path, err)
	}

	channels := ImageChannels(img)
	if channels != 3 && channels != 4 {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q: %s image with %d channels", path, format, channels)
	}
	return packTexture(img, channels), nil
}

// ImageChannels reports the channel count of the source data behind a decoded image.
func ImageChannels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NYCbCrA, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		if m.Opaque() {
			return 3
		}
		return 4
	}
	// png decodes rgb without alpha into *image.RGBA / *image.RGBA64
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

func packTexture(img image.Image, channels int) *TextureImage {
	if channels == 4 {
		return packRGBA(img)
	}

	// opaque, so the premultiplied output of FlipV is exact
	flipped := transform.FlipV(img)
	w, h := flipped.Bounds().Dx(), flipped.Bounds().Dy()

	t := &TextureImage{
		Width:    w,
		Height:   h,
		Channels: 3,
		Pix:      make([]byte, 0, w*h*3),
	}
	for y := 0; y < h; y++ {
		row := flipped.Pix[y*flipped.Stride : y*flipped.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			t.Pix = append(t.Pix, row[x], row[x+1], row[x+2])
		}
	}
	return t
}

// packRGBA keeps straight alpha bytes as stored in the file, bottom row first.
func packRGBA(img image.Image) *TextureImage {
	b := img.Bounds()
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = image.NewNRGBA(b)
		draw.Draw(src, b, img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	t := &TextureImage{
		Width:    w,
		Height:   h,
		Channels: 4,
		Pix:      make([]byte, 0, w*h*4),
	}
	for y := h - 1; y >= 0; y-- {
		offset := src.PixOffset(b.Min.X, b.Min.Y+y)
		t.Pix = append(t.Pix, src.Pix[offset:offset+w*4]...)
	}
	return t
}
