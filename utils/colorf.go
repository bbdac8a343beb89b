package utils

import "github.com/go-gl/mathgl/mgl32"

// ColorFloat is a straight (not premultiplied) rgba color in 0..1 range.
type ColorFloat [4]float32

func (c ColorFloat) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c[0], c[1], c[2], c[3]}
}
