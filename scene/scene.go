package scene

import (
	"log"

	"github.com/pkg/errors"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/r3d"
	"github.com/cs330/deskscene/shapes"
)

// MeshProvider owns GPU geometry of the primitive mesh kinds.
type MeshProvider interface {
	Load(kind shapes.Kind) error
	Draw(kind shapes.Kind)
	Destroy()
}

// Scene owns the texture and material registries and draws the instruction list
// through a borrowed shader program.
type Scene struct {
	desc     *config.Scene
	u        r3d.Uniforms
	meshes   MeshProvider
	Textures *TextureRegistry
	Mats     MaterialRegistry

	instructions []DrawInstruction
	meshKinds    []shapes.Kind
	prepared     bool

	// texture tags already reported as missing
	missing map[string]bool
}

type Stats struct {
	Textures  int
	Materials int
	Meshes    int
	Draws     int
}

func New(desc *config.Scene, u r3d.Uniforms, tex TextureBackend, meshes MeshProvider) (*Scene, error) {
	instructions, err := InstructionsFromConfig(desc.Draws)
	if err != nil {
		return nil, err
	}
	return &Scene{
		desc:         desc,
		u:            u,
		meshes:       meshes,
		Textures:     NewTextureRegistry(tex, desc.MaxTextures),
		instructions: instructions,
		missing:      make(map[string]bool),
	}, nil
}

// Prepare fills the registries, configures lights and uploads meshes.
// Texture failures are logged and skipped, mesh failures are returned.
func (s *Scene) Prepare() error {
	if s.prepared {
		return errors.New("scene already prepared")
	}

	if err := ConfigureLights(s.u, s.desc.Lights); err != nil {
		return errors.Wrap(err, "lights")
	}
	s.prepared = true

	s.Mats.DefineDefaults(s.desc.Materials)

	loaded := s.Textures.LoadAll(s.desc)
	if loaded != len(s.desc.Textures) {
		log.Printf("WARNING: loaded %d of %d textures", loaded, len(s.desc.Textures))
	}
	s.Textures.BindAll()

	seen := make(map[shapes.Kind]bool)
	for _, inst := range s.instructions {
		if seen[inst.Mesh] {
			continue
		}
		seen[inst.Mesh] = true
		if err := s.meshes.Load(inst.Mesh); err != nil {
			return errors.Wrapf(err, "mesh %v", inst.Mesh)
		}
		s.meshKinds = append(s.meshKinds, inst.Mesh)
	}
	return nil
}

// Render issues every draw instruction in order.
func (s *Scene) Render() {
	for i := range s.instructions {
		s.draw(&s.instructions[i])
	}
}

func (s *Scene) draw(inst *DrawInstruction) {
	r3d.SetTransform(s.u, inst.Scale, inst.Rotation, inst.Position)
	s.u.SetVec2(r3d.UUVScale, inst.UVScale)
	s.u.SetVec4(r3d.UColor, inst.Color.Vec4())

	s.setTexture(inst.Texture)

	mat := DefaultMaterial
	if inst.Material != "" {
		if m, ok := s.Mats.Find(inst.Material); ok {
			mat = m
		}
	}
	mat.Apply(s.u)

	s.meshes.Draw(inst.Mesh)
}

func (s *Scene) setTexture(tag string) {
	if tag != "" {
		slot, err := s.Textures.Lookup(tag)
		if err == nil {
			s.u.SetBool(r3d.UUseTexture, true)
			s.u.SetInt(r3d.UTexture, int32(slot))
			return
		}
		if !s.missing[tag] {
			s.missing[tag] = true
			log.Printf("WARNING: %v, drawing flat color", err)
		}
	}
	s.u.SetBool(r3d.UUseTexture, false)
}

// Destroy releases textures and meshes.
func (s *Scene) Destroy() {
	s.Textures.Destroy()
	s.meshes.Destroy()
	s.meshKinds = nil
}

func (s *Scene) Instructions() []DrawInstruction {
	return append([]DrawInstruction(nil), s.instructions...)
}

// Stats counts meshes by uploaded geometry, sphere and half sphere share one.
func (s *Scene) Stats() Stats {
	geometries := make(map[shapes.Kind]bool, len(s.meshKinds))
	for _, k := range s.meshKinds {
		geometries[k.Geometry()] = true
	}
	return Stats{
		Textures:  s.Textures.Len(),
		Materials: s.Mats.Len(),
		Meshes:    len(geometries),
		Draws:     len(s.instructions),
	}
}
