package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/r3d"
)

type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// DefaultMaterial is used for draws without a material or with an unknown one.
var DefaultMaterial = Material{
	DiffuseColor:  mgl32.Vec3{0.5, 0.5, 0.5},
	SpecularColor: mgl32.Vec3{0.1, 0.1, 0.1},
	Shininess:     8,
}

func (m Material) Apply(u r3d.Uniforms) {
	u.SetVec3(r3d.UMaterialDiffuse, m.DiffuseColor)
	u.SetVec3(r3d.UMaterialSpecular, m.SpecularColor)
	u.SetFloat(r3d.UMaterialShininess, m.Shininess)
}

type MaterialRegistry struct {
	materials []Material
}

// DefineDefaults registers the presets of the scene description.
func (r *MaterialRegistry) DefineDefaults(presets []config.Material) {
	for _, p := range presets {
		r.Define(Material{
			Tag:           p.Tag,
			DiffuseColor:  p.Diffuse,
			SpecularColor: p.Specular,
			Shininess:     p.Shininess,
		})
	}
}

func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material tagged tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int { return len(r.materials) }
