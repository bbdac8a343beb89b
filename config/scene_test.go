package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/shapes"
)

func TestDefaultScene(t *testing.T) {
	s := Default()

	assert.Len(t, s.Textures, 12)
	assert.Len(t, s.Materials, 7)
	require.NotNil(t, s.Lights.Directional)
	assert.Len(t, s.Lights.Points, 2)
	assert.Len(t, s.Draws, 21)
	assert.Equal(t, DefaultMaxTextures, s.MaxTextures)

	assert.Equal(t, "desk", s.Textures[0].Tag)
	assert.Equal(t, "wood", s.Textures[2].Tag)
	assert.Equal(t, "marble", s.Materials[0].Tag)
	assert.Equal(t, float32(0.3), s.Materials[6].Shininess)
}

func TestDrawDefaults(t *testing.T) {
	s := Default()
	desk := s.Draws[0]

	assert.Equal(t, "desk", desk.Name)
	assert.Equal(t, mgl32.Vec3{20, 1, 10}, desk.Scale)
	assert.Equal(t, mgl32.Vec3{}, desk.Rotation)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, desk.Color)
	assert.Equal(t, mgl32.Vec2{1, 1}, desk.UVScale)

	keyboard := s.Draws[1]
	assert.Equal(t, mgl32.Vec4{0.8, 0.8, 0.78, 1}, keyboard.Color)
	assert.Empty(t, keyboard.Texture)
}

func TestMeshKindsInFirstUseOrder(t *testing.T) {
	s := Default()
	assert.Equal(t, []shapes.Kind{
		shapes.Plane, shapes.Box, shapes.Cylinder, shapes.Prism, shapes.HalfSphere,
	}, s.MeshKinds())
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("draws:\n  - {mesh: box}\n"))
	require.NoError(t, err)

	assert.Equal(t, 1000, s.Window.Width)
	assert.Equal(t, "textures", s.TextureDir)
	assert.Equal(t, DefaultMaxTextures, s.MaxTextures)
	assert.Nil(t, s.Lights.Directional)
	require.Len(t, s.Draws, 1)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, s.Draws[0].Scale)
}

func TestValidateErrors(t *testing.T) {
	var tests = []struct {
		name string
		yaml string
	}{
		{"unknown mesh", "draws:\n  - {mesh: torus}\n"},
		{"zero capacity", "max_textures: -1\n"},
		{"window", "window: {width: 0}\n"},
		{"too many point lights", "lights:\n  points: [{}, {}, {}, {}]\n"},
		{"zero direction", "lights:\n  directional: {direction: [0, 0, 0]}\n"},
		{"texture without file", "textures:\n  - {tag: desk}\n"},
		{"material without tag", "materials:\n  - {shininess: 2}\n"},
		{"short vector", "draws:\n  - {mesh: box, scale: [1, 2]}\n"},
		{"not yaml", "draws: [\n"},
	}

	for _, test := range tests {
		_, err := Parse([]byte(test.yaml))
		assert.Error(t, err, test.name)
	}
}

func TestDuplicateTextureTagIsAccepted(t *testing.T) {
	s, err := Parse([]byte("textures:\n  - {tag: a, file: a.png}\n  - {tag: a, file: b.png}\n"))
	require.NoError(t, err)
	assert.Len(t, s.Textures, 2)
}

func TestLoadResolvesTextureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("texture_dir: img\ntextures:\n  - {tag: a, file: a.png}\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "img"), s.TextureDir)
	assert.Equal(t, filepath.Join(dir, "img", "a.png"), s.TexturePath(s.Textures[0]))
	assert.Equal(t, "/abs/b.png", s.TexturePath(Texture{File: "/abs/b.png"}))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
