package r3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix(aspect float32) mgl32.Mat4
	Position() mgl32.Vec3
}

// OrbitController looks at Target from Distance away; Pitch and Yaw are in degrees.
type OrbitController struct {
	Target   mgl32.Vec3
	Distance float32
	Pitch    float32 // x rotation
	Yaw      float32 // y rotation

	Fov       float32 // vertical, degrees
	Near, Far float32
}

func NewOrbitController(target mgl32.Vec3, dist, pitch, yaw float32) *OrbitController {
	return &OrbitController{
		Target:   target,
		Distance: dist,
		Pitch:    pitch,
		Yaw:      yaw,
		Fov:      45,
		Near:     0.1,
		Far:      100,
	}
}

func (c *OrbitController) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitController) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

func (c *OrbitController) Position() mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(c.Pitch))
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{
		c.Distance * float32(math.Cos(pitch)*math.Sin(yaw)),
		c.Distance * float32(math.Sin(pitch)),
		c.Distance * float32(math.Cos(pitch)*math.Cos(yaw)),
	}.Add(c.Target)
}

// ApplyCamera writes view, projection and viewPosition uniforms.
func ApplyCamera(u Uniforms, c Camera, aspect float32) {
	u.SetMat4(UView, c.GetViewMatrix())
	u.SetMat4(UProjection, c.GetProjectionMatrix(aspect))
	u.SetVec3(UViewPosition, c.Position())
}
