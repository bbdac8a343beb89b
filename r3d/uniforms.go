package r3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared with shaders/scene.vert and shaders/scene.frag.
const (
	UModel        = "model"
	UNormal       = "normal"
	UView         = "view"
	UProjection   = "projection"
	UViewPosition = "viewPosition"

	UColor       = "objectColor"
	UTexture     = "objectTexture"
	UUseTexture  = "bUseTexture"
	UUseLighting = "bUseLighting"
	UUVScale     = "UVscale"

	UMaterialDiffuse   = "material.diffuseColor"
	UMaterialSpecular  = "material.specularColor"
	UMaterialShininess = "material.shininess"

	UDirectionalLight = "directionalLight"
	UPointLights      = "pointLights"
)

// PointLightBlock names the i-th element of the point light array.
func PointLightBlock(i int) string {
	return fmt.Sprintf("%s[%d]", UPointLights, i)
}

// LightField names a field of a light block, e.g. "pointLights[1].position".
func LightField(block, field string) string {
	return block + "." + field
}

// Uniforms is the shader binding context: named uniform writes into the active program.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetMat3(name string, m mgl32.Mat3)
	SetVec4(name string, v mgl32.Vec4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec2(name string, v mgl32.Vec2)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
}

// UniformRecorder keeps the last value written to every uniform.
type UniformRecorder struct {
	Values map[string]any
	Writes int
}

func NewUniformRecorder() *UniformRecorder {
	return &UniformRecorder{Values: make(map[string]any)}
}

func (r *UniformRecorder) set(name string, v any) {
	r.Values[name] = v
	r.Writes++
}

func (r *UniformRecorder) SetMat4(name string, m mgl32.Mat4) { r.set(name, m) }
func (r *UniformRecorder) SetMat3(name string, m mgl32.Mat3) { r.set(name, m) }
func (r *UniformRecorder) SetVec4(name string, v mgl32.Vec4) { r.set(name, v) }
func (r *UniformRecorder) SetVec3(name string, v mgl32.Vec3) { r.set(name, v) }
func (r *UniformRecorder) SetVec2(name string, v mgl32.Vec2) { r.set(name, v) }
func (r *UniformRecorder) SetFloat(name string, f float32)   { r.set(name, f) }
func (r *UniformRecorder) SetInt(name string, i int32)       { r.set(name, i) }
func (r *UniformRecorder) SetBool(name string, b bool)       { r.set(name, b) }

// Snapshot returns a copy of the recorded values.
func (r *UniformRecorder) Snapshot() map[string]any {
	out := make(map[string]any, len(r.Values))
	for k, v := range r.Values {
		out[k] = v
	}
	return out
}

type tee [2]Uniforms

// Tee duplicates every write into both a and b.
func Tee(a, b Uniforms) Uniforms { return tee{a, b} }

func (t tee) SetMat4(name string, m mgl32.Mat4) { t[0].SetMat4(name, m); t[1].SetMat4(name, m) }
func (t tee) SetMat3(name string, m mgl32.Mat3) { t[0].SetMat3(name, m); t[1].SetMat3(name, m) }
func (t tee) SetVec4(name string, v mgl32.Vec4) { t[0].SetVec4(name, v); t[1].SetVec4(name, v) }
func (t tee) SetVec3(name string, v mgl32.Vec3) { t[0].SetVec3(name, v); t[1].SetVec3(name, v) }
func (t tee) SetVec2(name string, v mgl32.Vec2) { t[0].SetVec2(name, v); t[1].SetVec2(name, v) }
func (t tee) SetFloat(name string, f float32)   { t[0].SetFloat(name, f); t[1].SetFloat(name, f) }
func (t tee) SetInt(name string, i int32)       { t[0].SetInt(name, i); t[1].SetInt(name, i) }
func (t tee) SetBool(name string, b bool)       { t[0].SetBool(name, b); t[1].SetBool(name, b) }
