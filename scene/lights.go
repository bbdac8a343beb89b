package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/r3d"
)

type LightKind int

const (
	DirectionalLight LightKind = iota
	PointLight
)

type Light struct {
	Kind LightKind
	// Vector is the direction of a directional light or the position of a point light.
	Vector mgl32.Vec3

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	// point light attenuation
	Constant  float32
	Linear    float32
	Quadratic float32

	Active bool
}

// LightsFromConfig returns the directional light followed by config.MaxPointLights point lights.
// Missing lights are returned inactive.
func LightsFromConfig(cfg config.Lights) ([]Light, error) {
	if len(cfg.Points) > config.MaxPointLights {
		return nil, errors.Errorf("%d point lights, at most %d supported", len(cfg.Points), config.MaxPointLights)
	}

	lights := make([]Light, 0, 1+config.MaxPointLights)

	dir := Light{Kind: DirectionalLight}
	if d := cfg.Directional; d != nil {
		dir.Vector = d.Direction
		if dir.Vector.Len() != 0 {
			dir.Vector = dir.Vector.Normalize()
		}
		dir.Ambient, dir.Diffuse, dir.Specular = d.Ambient, d.Diffuse, d.Specular
		dir.Active = !d.Disabled
	}
	lights = append(lights, dir)

	for i := 0; i < config.MaxPointLights; i++ {
		l := Light{Kind: PointLight}
		if i < len(cfg.Points) {
			p := cfg.Points[i]
			l.Vector = p.Position
			l.Ambient, l.Diffuse, l.Specular = p.Ambient, p.Diffuse, p.Specular
			l.Constant, l.Linear, l.Quadratic = p.Constant, p.Linear, p.Quadratic
			l.Active = !p.Disabled
		}
		lights = append(lights, l)
	}
	return lights, nil
}

// uploadLight writes every field of one light block.
func uploadLight(u r3d.Uniforms, block string, l Light) {
	field := func(name string) string { return r3d.LightField(block, name) }

	if l.Kind == DirectionalLight {
		u.SetVec3(field("direction"), l.Vector)
	} else {
		u.SetVec3(field("position"), l.Vector)
	}
	u.SetVec3(field("ambient"), l.Ambient)
	u.SetVec3(field("diffuse"), l.Diffuse)
	u.SetVec3(field("specular"), l.Specular)
	if l.Kind == PointLight {
		u.SetFloat(field("constant"), l.Constant)
		u.SetFloat(field("linear"), l.Linear)
		u.SetFloat(field("quadratic"), l.Quadratic)
	}
	u.SetBool(field("bActive"), l.Active)
}

// ConfigureLights enables scene lighting and writes all light blocks.
// Every block is written on each call, so repeating it leaves the same state.
func ConfigureLights(u r3d.Uniforms, cfg config.Lights) error {
	lights, err := LightsFromConfig(cfg)
	if err != nil {
		return err
	}

	u.SetBool(r3d.UUseLighting, true)

	point := 0
	for _, l := range lights {
		if l.Kind == DirectionalLight {
			uploadLight(u, r3d.UDirectionalLight, l)
		} else {
			uploadLight(u, r3d.PointLightBlock(point), l)
			point++
		}
	}
	return nil
}
