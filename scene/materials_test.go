package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/r3d"
)

func TestMaterialFind(t *testing.T) {
	var r MaterialRegistry

	_, ok := r.Find("wood")
	assert.False(t, ok, "empty registry")

	r.DefineDefaults(config.Default().Materials)
	assert.Equal(t, 7, r.Len())

	m, ok := r.Find("marble")
	assert.True(t, ok)
	assert.Equal(t, "marble", m.Tag)

	for _, tag := range []string{"", "glass", "Marble"} {
		_, ok := r.Find(tag)
		assert.False(t, ok, "tag %q", tag)
	}

	r.Define(Material{Tag: "marble", Shininess: 1})
	m, _ = r.Find("marble")
	assert.NotEqual(t, float32(1), m.Shininess, "first definition wins")
}

func TestMaterialApply(t *testing.T) {
	rec := r3d.NewUniformRecorder()
	DefaultMaterial.Apply(rec)

	assert.Equal(t, map[string]any{
		"material.diffuseColor":  mgl32.Vec3{0.5, 0.5, 0.5},
		"material.specularColor": mgl32.Vec3{0.1, 0.1, 0.1},
		"material.shininess":     float32(8),
	}, rec.Values)
}
