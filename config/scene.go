package config

import (
	_ "embed"
	"log"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cs330/deskscene/shapes"
	"github.com/cs330/deskscene/utils"
)

//go:embed default_scene.yaml
var defaultSceneYAML []byte

const (
	DefaultMaxTextures = 16
	MaxPointLights     = 3
)

type Scene struct {
	Window      Window     `yaml:"window"`
	Camera      Camera     `yaml:"camera"`
	TextureDir  string     `yaml:"texture_dir"`
	MaxTextures int        `yaml:"max_textures"`
	Textures    []Texture  `yaml:"textures"`
	Materials   []Material `yaml:"materials"`
	Lights      Lights     `yaml:"lights"`
	Draws       []Draw     `yaml:"draws"`
}

type Window struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background mgl32.Vec3 `yaml:"background"`
}

type Camera struct {
	Target   mgl32.Vec3 `yaml:"target"`
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

type Texture struct {
	Tag  string `yaml:"tag"`
	File string `yaml:"file"`
}

type Material struct {
	Tag       string     `yaml:"tag"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

type DirectionalLight struct {
	Direction mgl32.Vec3 `yaml:"direction"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Disabled  bool       `yaml:"disabled"`
}

type PointLight struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Constant  float32    `yaml:"constant"`
	Linear    float32    `yaml:"linear"`
	Quadratic float32    `yaml:"quadratic"`
	Disabled  bool       `yaml:"disabled"`
}

type Lights struct {
	Directional *DirectionalLight `yaml:"directional"`
	Points      []PointLight      `yaml:"points"`
}

// Draw is one mesh instance of the scene.
type Draw struct {
	Name     string     `yaml:"name"`
	Mesh     string     `yaml:"mesh"`
	Scale    mgl32.Vec3 `yaml:"scale"`
	Rotation mgl32.Vec3 `yaml:"rotation"` // degrees about x, y, z
	Position mgl32.Vec3 `yaml:"position"`
	Color    mgl32.Vec4 `yaml:"color"`
	Texture  string     `yaml:"texture"`
	Material string     `yaml:"material"`
	UVScale  mgl32.Vec2 `yaml:"uv_scale"`
}

func (d *Draw) UnmarshalYAML(value *yaml.Node) error {
	type rawDraw Draw
	raw := rawDraw{
		Scale:   mgl32.Vec3{1, 1, 1},
		Color:   mgl32.Vec4{1, 1, 1, 1},
		UVScale: mgl32.Vec2{1, 1},
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*d = Draw(raw)
	return nil
}

func newScene() *Scene {
	return &Scene{
		Window: Window{
			Title:      "deskscene",
			Width:      1000,
			Height:     800,
			Background: mgl32.Vec3{0, 0, 0},
		},
		Camera: Camera{
			Distance: 30,
			Pitch:    30,
			Fov:      45,
			Near:     0.1,
			Far:      100,
		},
		TextureDir:  "textures",
		MaxTextures: DefaultMaxTextures,
	}
}

// Parse decodes a scene description, filling unset fields with defaults, and validates it.
func Parse(data []byte) (*Scene, error) {
	s := newScene()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the scene file at path. Relative texture_dir is resolved against the file location.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %q", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %q", path)
	}
	if !filepath.IsAbs(s.TextureDir) {
		s.TextureDir = filepath.Join(filepath.Dir(path), s.TextureDir)
	}
	return s, nil
}

// Default returns the built-in desk scene.
func Default() *Scene {
	s, err := Parse(defaultSceneYAML)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.MaxTextures <= 0 {
		return errors.Errorf("max_textures must be positive, got %d", s.MaxTextures)
	}
	if len(s.Lights.Points) > MaxPointLights {
		return errors.Errorf("%d point lights, at most %d supported", len(s.Lights.Points), MaxPointLights)
	}
	if l := s.Lights.Directional; l != nil && l.Direction.Len() == 0 {
		return errors.New("directional light direction is zero")
	}

	textureTags := make(map[string]struct{}, len(s.Textures))
	for i, t := range s.Textures {
		if t.Tag == "" || t.File == "" {
			return errors.Errorf("texture #%d: tag and file are required", i)
		}
		if _, dup := textureTags[t.Tag]; dup {
			log.Printf("WARNING: texture tag %q used more than once, first one wins", t.Tag)
		}
		textureTags[t.Tag] = struct{}{}
	}

	for i, m := range s.Materials {
		if m.Tag == "" {
			return errors.Errorf("material #%d: tag is required", i)
		}
	}

	for i, d := range s.Draws {
		if _, err := shapes.ParseKind(d.Mesh); err != nil {
			return errors.Wrapf(err, "draw #%d %q", i, d.Name)
		}
		for _, v := range []mgl32.Vec3{d.Scale, d.Rotation, d.Position} {
			if !utils.IsFiniteV3(v) {
				return errors.Errorf("draw #%d %q: non finite transform", i, d.Name)
			}
		}
	}
	return nil
}

// TexturePath resolves t.File against TextureDir.
func (s *Scene) TexturePath(t Texture) string {
	if filepath.IsAbs(t.File) || s.TextureDir == "" {
		return t.File
	}
	return filepath.Join(s.TextureDir, t.File)
}

// MeshKinds returns the distinct mesh kinds referenced by the draw list, in first use order.
func (s *Scene) MeshKinds() []shapes.Kind {
	seen := make(map[shapes.Kind]bool)
	kinds := make([]shapes.Kind, 0, len(shapes.Kinds))
	for _, d := range s.Draws {
		k, err := shapes.ParseKind(d.Mesh)
		if err != nil || seen[k] {
			continue
		}
		seen[k] = true
		kinds = append(kinds, k)
	}
	return kinds
}
