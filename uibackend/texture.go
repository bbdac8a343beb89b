package uibackend

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"

	"github.com/cs330/deskscene/scene"
)

// Textures uploads scene textures to the gpu, implements scene.TextureBackend.
type Textures struct{}

func (Textures) Upload(img *scene.TextureImage) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch img.Channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, errors.Wrapf(scene.ErrUnsupportedFormat, "%d channels", img.Channels)
	}
	if len(img.Pix) == 0 {
		return 0, errors.New("empty image")
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, errors.New("glGenTextures returned no texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// rgb rows are not 4 byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(img.Width), int32(img.Height),
		0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

func (Textures) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (Textures) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
