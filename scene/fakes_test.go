package scene

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/r3d"
	"github.com/cs330/deskscene/shapes"
)

type fakeTextures struct {
	next     uint32
	uploaded []*TextureImage
	bound    map[int]uint32
	deleted  []uint32
	fail     bool
}

func newFakeTextures() *fakeTextures {
	return &fakeTextures{next: 1, bound: make(map[int]uint32)}
}

func (f *fakeTextures) Upload(img *TextureImage) (uint32, error) {
	if f.fail {
		return 0, errors.New("out of memory")
	}
	f.uploaded = append(f.uploaded, img)
	h := f.next
	f.next++
	return h, nil
}

func (f *fakeTextures) Bind(unit int, handle uint32) { f.bound[unit] = handle }
func (f *fakeTextures) Delete(handle uint32)         { f.deleted = append(f.deleted, handle) }

type drawCall struct {
	kind     shapes.Kind
	uniforms map[string]any
}

// fakeMeshes snapshots the uniforms at every draw call
type fakeMeshes struct {
	rec       *r3d.UniformRecorder
	loaded    []shapes.Kind
	draws     []drawCall
	destroyed int
	failOn    map[shapes.Kind]bool
}

func (f *fakeMeshes) Load(kind shapes.Kind) error {
	if f.failOn[kind] {
		return errors.Errorf("no vao for %v", kind)
	}
	f.loaded = append(f.loaded, kind)
	return nil
}

func (f *fakeMeshes) Draw(kind shapes.Kind) {
	var snap map[string]any
	if f.rec != nil {
		snap = f.rec.Snapshot()
	}
	f.draws = append(f.draws, drawCall{kind: kind, uniforms: snap})
}

func (f *fakeMeshes) Destroy() { f.destroyed++ }

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// rgbaImage is w x h, top row red with alpha a, everything below opaque blue.
func rgbaImage(w, h int, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 0xff, A: a})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{B: 0xff, A: 0xff})
			}
		}
	}
	return img
}

// writeGrayAlphaPNG writes a w x h 8 bit gray+alpha png (color type 4),
// which image/png can decode but not encode.
func writeGrayAlphaPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	var out bytes.Buffer
	chunk := func(typ string, data []byte) {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(data)))
		out.Write(length[:])
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		out.WriteString(typ)
		out.Write(data)
		var sum [4]byte
		binary.BigEndian.PutUint32(sum[:], crc.Sum32())
		out.Write(sum[:])
	}

	out.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 4 // gray + alpha
	chunk("IHDR", ihdr)

	var raw bytes.Buffer
	for y := 0; y < h; y++ {
		raw.WriteByte(0) // no filter
		for x := 0; x < w; x++ {
			raw.Write([]byte{0x80, 0xc0})
		}
	}
	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	_, err := zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0644))
	return path
}
