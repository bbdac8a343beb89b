package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func IsFiniteV3(v mgl32.Vec3) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

// Mat3ApproxEqual compares two matrices component-wise within epsilon.
func Mat3ApproxEqual(a, b mgl32.Mat3, epsilon float32) bool {
	for i := range a {
		if !mgl32.FloatEqualThreshold(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func Mat4ApproxEqual(a, b mgl32.Mat4, epsilon float32) bool {
	for i := range a {
		if !mgl32.FloatEqualThreshold(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}
